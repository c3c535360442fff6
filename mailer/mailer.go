package mailer

import (
	"context"
	"fmt"
	"os"
	"sync"

	"saapaadu-api/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Mailer sends one plain-text message. Implementations must treat each call
// as independent: no queue, no retry.
type Mailer interface {
	Send(ctx context.Context, to, subject, text string) error
}

// SESMailer sends through AWS SES, from the verified SES_EMAIL address.
type SESMailer struct {
	once   sync.Once
	client *ses.Client
	err    error
}

func NewSES() *SESMailer {
	return &SESMailer{}
}

// init is deferred to first send so the process can boot without AWS
// credentials when mail is never used (local dev, tests).
func (m *SESMailer) init(ctx context.Context) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		m.err = fmt.Errorf("aws config load failed: %w", err)
		return
	}
	m.client = ses.NewFromConfig(cfg)
}

func (m *SESMailer) Send(ctx context.Context, to, subject, text string) error {
	m.once.Do(func() { m.init(ctx) })
	if m.err != nil {
		return m.err
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(text),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		logger.L.Error().Err(err).Str("to", to).Msg("ses send failed")
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}
