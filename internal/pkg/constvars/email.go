package constvars

const (
	RegexEmail = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n"

	EmailAppointmentConfirmedSubject = "Your appointment is confirmed"
	EmailAppointmentReminderSubject  = "Appointment reminder for tomorrow"
	EmailAppointmentCancelledSubject = "Your appointment was cancelled"

	EmailAppointmentConfirmedBodyFormat = "Hello %s,\r\n\r\nYour appointment with Dr. %s on %s at %s has been confirmed.\r\n"
	EmailAppointmentReminderBodyFormat  = "Hello %s,\r\n\r\nThis is a reminder of your appointment with Dr. %s tomorrow (%s) at %s.\r\n"
	EmailAppointmentCancelledBodyFormat = "Hello %s,\r\n\r\nYour appointment with Dr. %s on %s at %s has been cancelled.\r\n"
)
