package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

// Role names mirror the values stored on each user document.
const (
	RoleSuperAdmin    = "SuperAdmin"
	RoleAdministrador = "Administrador"
	RoleMedico        = "Medico"
	RolePaciente      = "Paciente"
)

// Login modules. A credential only opens the module its role belongs to.
const (
	LoginModuleStaff    = "staff"
	LoginModulePatients = "patients"
)

const (
	MongoCollectionUsers         = "users"
	MongoCollectionPatients      = "patients"
	MongoCollectionDoctors       = "doctors"
	MongoCollectionSpecialties   = "specialties"
	MongoCollectionAppointments  = "appointments"
	MongoCollectionPrescriptions = "prescriptions"
	MongoCollectionMedications   = "medications"
)

const (
	RedisSessionKeyFormat = "session:%s"
	RedisDayLockKeyFormat = "lock:agenda:%s:%s" // doctorID, date (2006-01-02)
)

const (
	AppointmentDateLayout = "2006-01-02"
	AppointmentTimeLayout = "15:04"
)

const AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
