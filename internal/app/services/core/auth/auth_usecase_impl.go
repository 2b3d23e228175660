package auth

import (
	"context"
	"fmt"
	"sync"

	"clinica-service/internal/app/config"
	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/dto/responses"
	"clinica-service/internal/pkg/exceptions"
	"clinica-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository    contracts.UserRepository
	DoctorRepository  contracts.DoctorRepository
	PatientRepository contracts.PatientRepository
	SessionService    contracts.SessionService
	InternalConfig    *config.InternalConfig
	LoginLimiter      *loginLimiter
	Log               *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		instance := &authUsecase{
			UserRepository:    userRepository,
			DoctorRepository:  doctorRepository,
			PatientRepository: patientRepository,
			SessionService:    sessionService,
			InternalConfig:    internalConfig,
			LoginLimiter:      newLoginLimiter(internalConfig.App.MaxLoginAttemptsPerMinute),
			Log:               logger,
		}
		authUsecaseInstance = instance
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		uc.Log.Error("authUsecase.Register error finding user by username",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(fmt.Errorf("username %s already taken", request.Username))
	}

	if request.Role == constvars.RoleMedico {
		if request.DoctorID == "" {
			return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("role %s requires doctorId", request.Role))
		}
		doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, exceptions.ErrDoctorNotFound(fmt.Errorf("doctor %s not found", request.DoctorID))
		}
	}

	if request.Role == constvars.RolePaciente {
		if request.PatientID == "" {
			return nil, exceptions.ErrNotMatchRoleType(fmt.Errorf("role %s requires patientId", request.Role))
		}
		patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
		if err != nil {
			return nil, err
		}
		if patient == nil {
			return nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient %s not found", request.PatientID))
		}
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Username:  request.Username,
		Password:  hashedPassword,
		Email:     request.Email,
		Role:      request.Role,
		PatientID: request.PatientID,
		DoctorID:  request.DoctorID,
	}
	user.SetCreatedNow()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.Register error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.Register{
		UserID:   userID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !uc.LoginLimiter.Allow(request.Username) {
		return nil, exceptions.ErrTooManyLoginAttempts(fmt.Errorf("too many login attempts for username"))
	}

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		uc.Log.Error("authUsecase.Login error finding user by username",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("user not found"))
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("password mismatch"))
	}

	if models.ModuleFor(user.Role) != request.Module {
		return nil, exceptions.ErrLoginModuleMismatch(fmt.Errorf("role %s cannot log into the %s module", user.Role, request.Module))
	}

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		PatientID: user.PatientID,
		DoctorID:  user.DoctorID,
	}
	err = uc.SessionService.CreateSession(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.Login{
		Token:    token,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.SessionService.DeleteSession(ctx, sessionID)
}
