package constvars

// Client-facing messages. Kept generic; details stay in dev messages.
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientUsernameAlreadyExists         = "username already registered"
	ErrClientServerLongRespond             = "server took too long to respond, please try again"
	ErrClientTooManyLoginAttempts          = "too many login attempts, please wait before retrying"

	ErrClientSlotAlreadyTaken       = "the selected time slot is no longer available"
	ErrClientSlotBeingBooked        = "another booking for this agenda is in progress, please retry"
	ErrClientDateInPast             = "the selected date has already passed"
	ErrClientDateOnWeekend          = "appointments cannot be scheduled on weekends"
	ErrClientDateYearOutOfRange     = "the selected year is outside the allowed range"
	ErrClientTimeOutOfBounds        = "the selected time is outside clinic working hours"
	ErrClientInvalidTimeRange       = "the end time must be after the start time"
	ErrClientDateInFuture           = "the consultation date cannot be in the future"
	ErrClientInvalidScheduleText    = "the working days expression could not be understood"
	ErrClientInvalidSpecialtyWindow = "the specialty time window is invalid"
	ErrClientDoctorNotFound         = "doctor not found"
	ErrClientPatientNotFound        = "patient not found"
	ErrClientSpecialtyNotFound      = "specialty not found"
	ErrClientAppointmentNotFound    = "appointment not found"
	ErrClientMedicationNotFound     = "medication not found"
	ErrClientPrescriptionNotFound   = "prescription not found"
	ErrClientNotAppointmentOwner    = "only the attending doctor can prescribe for this consultation"
	ErrClientFileTooLarge           = "the uploaded file exceeds the allowed size"
	ErrClientNoAttachment           = "this prescription has no attachment"
	ErrClientInvalidEmailAddress    = "the email address is not valid"
)

// Dev messages, never rendered to clients outside development.
const (
	ErrDevValidationFailed           = "request payload validation failed"
	ErrDevCannotParseJSON            = "failed to parse JSON body"
	ErrDevCannotParseDate            = "failed to parse date value"
	ErrDevCannotParseTime            = "failed to parse time value"
	ErrDevCannotMarshalJSON          = "failed to marshal value to JSON"
	ErrDevCannotParseMultipartForm   = "failed to parse multipart form"
	ErrDevURLParamIDValidationFailed = "invalid URL parameter: %s"
	ErrDevServerProcess              = "internal process failed"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded while processing request"

	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevInvalidCredentials        = "credentials do not match any user"
	ErrDevUsernameAlreadyExists     = "username already exists in users collection"
	ErrDevAuthTokenMissing          = "authorization token missing from request"
	ErrDevAuthTokenInvalid          = "authorization token invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate auth token"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevAuthInvalidSession        = "session not found or expired"
	ErrDevRoleTypeDoesntMatch       = "user role does not match required role"
	ErrDevLoginModuleMismatch       = "user role does not belong to the requested login module"
	ErrDevTooManyLoginAttempts      = "login attempt limiter rejected request"

	ErrDevDBFailedToFindDocument     = "mongodb failed to find document"
	ErrDevDBFailedToInsertDocument   = "mongodb failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "mongodb failed to update document"
	ErrDevDBFailedToDeleteDocument   = "mongodb failed to delete document"
	ErrDevDBFailedToIterateDocuments = "mongodb failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string is not a valid mongodb ObjectID"
	ErrDevDBDuplicateKey             = "mongodb unique index rejected duplicate document"

	ErrDevRedisGetNoData      = "redis get returned no data for key: %s"
	ErrDevRedisGetData        = "redis failed to get data"
	ErrDevRedisSetData        = "redis failed to set data"
	ErrDevRedisDeleteData     = "redis failed to delete data"
	ErrDevRedisIncrementValue = "redis failed to increment value"
	ErrDevRedisUnlock         = "redis failed to release lock"

	ErrDevRabbitMQPublish  = "rabbitmq failed to publish message to queue: %s"
	ErrDevRabbitMQConsume  = "rabbitmq failed to start consumer on queue: %s"
	ErrDevSMTPSendEmail    = "smtp failed to send email via host: %s"
	ErrDevInvalidEmail     = "recipient email address failed validation"
	ErrDevMinioCreate      = "minio failed to create object in bucket: %s"
	ErrDevMinioPresign     = "minio failed to build presigned url in bucket: %s"
	ErrDevMinioDelete      = "minio failed to delete object in bucket: %s"

	ErrDevFileTooLarge        = "upload exceeds max size of %d MB"
	ErrDevNoAttachment        = "prescription has no stored attachment object"
	ErrDevScheduleParse       = "working days expression failed to parse"
	ErrDevSpecialtyWindow     = "specialty window start must be before window end"
	ErrDevBookingRuleViolated = "booking violated one or more temporal rules"
)
