package config

import (
	"clinica-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "clinica"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", "customRedisPass"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "recetas"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "smtp_host"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                utils.GetEnvString("APP_ENV", "development"),
			Port:                               utils.GetEnvString("APP_PORT", ":8080"),
			Version:                            utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                            utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                           utils.GetEnvString("APP_TIMEZONE", "America/Mexico_City"),
			EndpointPrefix:                     utils.GetEnvString("APP_ENDPOINT_PREFIX", "/v1"),
			RabbitMQMailerQueue:                utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "clinica_mailer"),
			MaxRequests:                        utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:                    utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:          utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 10),
			RequestBodyLimitInMegabyte:         utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			MaxLoginAttemptsPerMinute:          utils.GetEnvInt("APP_MAX_LOGIN_ATTEMPTS_PER_MINUTE", 5),
			SessionExpiredTimeInHours:          utils.GetEnvInt("APP_SESSION_EXPIRED_TIME_IN_HOURS", 8),
			ReminderCronSpec:                   utils.GetEnvString("APP_REMINDER_CRON_SPEC", "0 7 * * *"),
			MinioPreSignedUrlExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRESIGNED_URL_EXPIRY_TIME_IN_HOURS", 1),
			MinioAttachmentMaxUploadSizeInMB:   utils.GetEnvInt64("APP_MINIO_ATTACHMENT_UPLOAD_MAX_SIZE_IN_MB", 2),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 8),
		},
	}
}
