package config

type InternalConfig struct {
	App App
	JWT JWT
}

type App struct {
	Env                                string
	Port                               string
	Version                            string
	Address                            string
	Timezone                           string
	EndpointPrefix                     string
	RabbitMQMailerQueue                string
	ReminderCronSpec                   string
	MaxRequests                        int
	ShutdownTimeout                    int
	MaxTimeRequestsPerSeconds          int
	RequestBodyLimitInMegabyte         int
	MaxLoginAttemptsPerMinute          int
	SessionExpiredTimeInHours          int
	MinioPreSignedUrlExpiryTimeInHours int
	MinioAttachmentMaxUploadSizeInMB   int64
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
