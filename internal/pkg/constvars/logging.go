package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingOperationKey          = "operation"
	LoggingErrorCodeKey          = "error_code"
	LoggingErrorMessageKey       = "error_message"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingDoctorIDKey           = "doctor_id"
	LoggingPatientIDKey          = "patient_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingSpecialtyIDKey        = "specialty_id"
	LoggingDateKey               = "date"
	LoggingQueueKey              = "queue"
)
