package mailer

import (
	"context"
	"testing"

	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSendEmailRejectsInvalidRecipient(t *testing.T) {
	// Validation runs before anything is published, so the service needs
	// no live channel here.
	service := &mailerService{Queue: "emails", Log: zap.NewNop()}

	err := service.SendEmail(context.Background(), &requests.EmailPayload{
		Subject: "Recordatorio de cita",
		From:    "clinica@example.com",
		To:      []string{"not-an-address"},
		Body:    "test",
	})

	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientInvalidEmailAddress, customErr.ClientMessage)
}
