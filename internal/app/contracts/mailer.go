package contracts

import (
	"context"

	"clinica-service/internal/pkg/dto/requests"
)

type MailerService interface {
	// SendEmail validates the recipients and enqueues the payload; a
	// consumer delivers it via SMTP.
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
	// StartConsumer drains the queue and delivers payloads until ctx is cancelled.
	StartConsumer(ctx context.Context) error
}
