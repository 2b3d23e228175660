package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinica-service/internal/app/config"
	"clinica-service/internal/app/delivery/http/controllers"
	"clinica-service/internal/app/delivery/http/middlewares"
	"clinica-service/internal/app/delivery/http/routers"
	"clinica-service/internal/app/drivers/database"
	"clinica-service/internal/app/drivers/logger"
	"clinica-service/internal/app/drivers/mailer"
	"clinica-service/internal/app/drivers/messaging"
	"clinica-service/internal/app/drivers/storage"
	"clinica-service/internal/app/services/core/appointments"
	"clinica-service/internal/app/services/core/auth"
	"clinica-service/internal/app/services/core/doctors"
	"clinica-service/internal/app/services/core/medications"
	"clinica-service/internal/app/services/core/patients"
	"clinica-service/internal/app/services/core/prescriptions"
	"clinica-service/internal/app/services/core/scheduling"
	"clinica-service/internal/app/services/core/session"
	"clinica-service/internal/app/services/core/specialties"
	"clinica-service/internal/app/services/core/users"
	"clinica-service/internal/app/services/shared/locker"
	mailerservice "clinica-service/internal/app/services/shared/mailer"
	redisrepo "clinica-service/internal/app/services/shared/redis"
	miniostorage "clinica-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	smtpClient := mailer.NewSMTPClient(driverConfig)

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(&bootstrap, mongoDB, minioClient, smtpClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, mongoDB *mongo.Client, minioClient *minio.Client, smtpClient *mailer.SMTPClient) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	storageService := miniostorage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)

	mailerService, err := mailerservice.NewMailerService(
		smtpClient,
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.RabbitMQMailerQueue,
		bootstrap.Logger,
	)
	if err != nil {
		log.Fatalf("Error creating mailer service: %v", err)
	}

	sessionTTL := time.Duration(bootstrap.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour
	sessionService := session.NewSessionService(redisRepository, sessionTTL)

	// Repositories
	userRepository := users.NewUserMongoRepository(mongoDB, dbName)
	specialtyRepository := specialties.NewSpecialtyMongoRepository(mongoDB, dbName)
	doctorRepository := doctors.NewDoctorMongoRepository(mongoDB, dbName)
	patientRepository := patients.NewPatientMongoRepository(mongoDB, dbName)
	medicationRepository := medications.NewMedicationMongoRepository(mongoDB, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(mongoDB, dbName)
	prescriptionRepository := prescriptions.NewPrescriptionMongoRepository(mongoDB, dbName)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelIndex()
	if repo, ok := appointmentRepository.(*appointments.AppointmentMongoRepository); ok {
		if err := repo.EnsureIndexes(indexCtx); err != nil {
			log.Fatalf("Error ensuring appointment indexes: %v", err)
		}
	}

	schedulingEngine := scheduling.NewEngine()

	// Usecases
	authUsecase := auth.NewAuthUsecase(
		userRepository,
		doctorRepository,
		patientRepository,
		sessionService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	specialtyUsecase := specialties.NewSpecialtyUsecase(specialtyRepository, bootstrap.Logger)
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, specialtyRepository, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(patientRepository, bootstrap.Logger)
	medicationUsecase := medications.NewMedicationUsecase(medicationRepository, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		doctorRepository,
		patientRepository,
		specialtyRepository,
		lockerService,
		mailerService,
		schedulingEngine,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig,
		bootstrap.Logger,
	)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(
		prescriptionRepository,
		appointmentRepository,
		medicationRepository,
		storageService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)
	specialtyController := controllers.NewSpecialtyController(bootstrap.Logger, specialtyUsecase)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase)
	medicationController := controllers.NewMedicationController(bootstrap.Logger, medicationUsecase)
	prescriptionController := controllers.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase, bootstrap.InternalConfig)

	// Background workers
	workerCtx, cancelWorkers := context.WithCancel(context.Background())

	go func() {
		if err := mailerService.StartConsumer(workerCtx); err != nil {
			bootstrap.Logger.Sugar().Errorf("mailer consumer stopped: %v", err)
		}
	}()

	reminderWorker := appointments.NewReminderWorker(
		bootstrap.Logger,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig,
		lockerService,
		appointmentRepository,
		doctorRepository,
		patientRepository,
		mailerService,
	)
	reminderWorker.Start(workerCtx)

	bootstrap.WorkerStop = func() {
		reminderWorker.Stop()
		cancelWorkers()
	}

	m := middlewares.New(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		m,
		authController,
		appointmentController,
		specialtyController,
		doctorController,
		patientController,
		medicationController,
		prescriptionController,
	)
}
