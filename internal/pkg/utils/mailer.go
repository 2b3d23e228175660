package utils

import (
	"fmt"

	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
)

func BuildAppointmentConfirmedEmailPayload(fromEmail, toEmail, patientName, doctorName, date, startTime string) *requests.EmailPayload {
	return &requests.EmailPayload{
		Subject: constvars.EmailAppointmentConfirmedSubject,
		From:    fromEmail,
		To:      []string{toEmail},
		Cc:      []string{},
		Bcc:     []string{},
		Body:    fmt.Sprintf(constvars.EmailAppointmentConfirmedBodyFormat, patientName, doctorName, date, startTime),
	}
}

func BuildAppointmentReminderEmailPayload(fromEmail, toEmail, patientName, doctorName, date, startTime string) *requests.EmailPayload {
	return &requests.EmailPayload{
		Subject: constvars.EmailAppointmentReminderSubject,
		From:    fromEmail,
		To:      []string{toEmail},
		Cc:      []string{},
		Bcc:     []string{},
		Body:    fmt.Sprintf(constvars.EmailAppointmentReminderBodyFormat, patientName, doctorName, date, startTime),
	}
}

func BuildAppointmentCancelledEmailPayload(fromEmail, toEmail, patientName, doctorName, date, startTime string) *requests.EmailPayload {
	return &requests.EmailPayload{
		Subject: constvars.EmailAppointmentCancelledSubject,
		From:    fromEmail,
		To:      []string{toEmail},
		Cc:      []string{},
		Bcc:     []string{},
		Body:    fmt.Sprintf(constvars.EmailAppointmentCancelledBodyFormat, patientName, doctorName, date, startTime),
	}
}
