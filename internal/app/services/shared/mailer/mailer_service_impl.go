package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"regexp"

	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/drivers/mailer"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/dto/requests"
	"clinica-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type mailerService struct {
	Channel *amqp091.Channel
	Client  *mailer.SMTPClient
	Queue   string
	Log     *zap.Logger
}

func NewMailerService(client *mailer.SMTPClient, rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &mailerService{
		Channel: channel,
		Client:  client,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	for _, to := range request.To {
		if !emailPattern.MatchString(to) {
			return exceptions.ErrEmailAddressInvalid(fmt.Errorf("recipient %q", to))
		}
	}

	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	return nil
}

var emailPattern = regexp.MustCompile(constvars.RegexEmail)

// StartConsumer drains the mailer queue and delivers payloads over SMTP until
// ctx is cancelled. Delivery failures are logged and the message is dropped.
func (s *mailerService) StartConsumer(ctx context.Context) error {
	deliveries, err := s.Channel.Consume(s.Queue, "", true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQConsume(err, s.Queue)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				var payload requests.EmailPayload
				if err := json.Unmarshal(delivery.Body, &payload); err != nil {
					s.Log.Error("mailerService.StartConsumer cannot unmarshal payload",
						zap.String(constvars.LoggingQueueKey, s.Queue),
						zap.Error(err),
					)
					continue
				}
				if err := s.deliver(&payload); err != nil {
					s.Log.Error("mailerService.StartConsumer cannot deliver email",
						zap.String(constvars.LoggingQueueKey, s.Queue),
						zap.Error(err),
					)
				}
			}
		}
	}()
	return nil
}

func (s *mailerService) deliver(payload *requests.EmailPayload) error {
	from := payload.From
	if from == "" {
		from = s.Client.EmailSender
	}

	addr := fmt.Sprintf("%s:%d", s.Client.Host, s.Client.Port)
	for _, to := range payload.To {
		var msg []byte
		if payload.HTMLCode != "" {
			msg = []byte(fmt.Sprintf(constvars.EmailSendHTMLSubjectFormat, to, payload.Subject, payload.HTMLCode))
		} else {
			msg = []byte(fmt.Sprintf(constvars.EmailSendBasicEmailSubjectFormat, to, payload.Subject, payload.Body))
		}
		if err := smtp.SendMail(addr, s.Client.Auth, from, []string{to}, msg); err != nil {
			return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
		}
	}
	return nil
}
