package appointments

import (
	"context"
	"time"

	"clinica-service/internal/app/config"
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// reminderLeaderLockKey ensures a single instance sends the day's reminders.
const reminderLeaderLockKey = "reminder:leader"

// ReminderWorker mails every patient with an appointment tomorrow.
type ReminderWorker struct {
	log          *zap.Logger
	cfg          *config.InternalConfig
	driverCfg    *config.DriverConfig
	locker       contracts.LockerService
	appointments contracts.AppointmentRepository
	doctors      contracts.DoctorRepository
	patients     contracts.PatientRepository
	mailer       contracts.MailerService
	cron         *cron.Cron
	runCtx       context.Context
	cancel       context.CancelFunc
}

func NewReminderWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	driverCfg *config.DriverConfig,
	lockerSvc contracts.LockerService,
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	mailerService contracts.MailerService,
) *ReminderWorker {
	return &ReminderWorker{
		log:          log,
		cfg:          cfg,
		driverCfg:    driverCfg,
		locker:       lockerSvc,
		appointments: appointmentRepository,
		doctors:      doctorRepository,
		patients:     patientRepository,
		mailer:       mailerService,
	}
}

// Start schedules the daily run with the configured cron spec.
func (w *ReminderWorker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.App.ReminderCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("reminder.worker: failed to schedule with provided cron spec; falling back to @daily", zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for the cron to drain.
func (w *ReminderWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *ReminderWorker) runOnce(ctx context.Context) {
	ttl := 2 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, reminderLeaderLockKey, ttl)
	if err != nil {
		w.log.Warn("reminder.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("reminder.worker: leader lock not acquired; another instance is running")
		return
	}
	defer w.locker.Unlock(ctx, reminderLeaderLockKey, token)

	tomorrow := time.Now().AddDate(0, 0, 1).Format(constvars.AppointmentDateLayout)
	appointments, err := w.appointments.FindByDate(ctx, tomorrow)
	if err != nil {
		w.log.Warn("reminder.worker: could not load appointments", zap.Error(err))
		return
	}

	for i := range appointments {
		appointment := &appointments[i]

		patient, err := w.patients.FindByID(ctx, appointment.PatientID)
		if err != nil || patient == nil || patient.Email == "" {
			continue
		}
		doctor, err := w.doctors.FindByID(ctx, appointment.DoctorID)
		if err != nil || doctor == nil {
			continue
		}

		payload := utils.BuildAppointmentReminderEmailPayload(
			w.driverCfg.SMTP.EmailSender, patient.Email, patient.FullName(), doctor.FullName(), appointment.Date, appointment.StartTime,
		)
		if err := w.mailer.SendEmail(ctx, payload); err != nil {
			w.log.Warn("reminder.worker: could not enqueue reminder",
				zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
				zap.Error(err),
			)
		}
	}

	w.log.Info("reminder.worker: run complete",
		zap.String(constvars.LoggingDateKey, tomorrow),
		zap.Int("appointments", len(appointments)),
	)
}
