// internal/email/sender.go
package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/beigestudio/linkedin-lead-lab-report/internal/audit"
	cerrors "github.com/beigestudio/linkedin-lead-lab-report/internal/common/errors"
	"github.com/beigestudio/linkedin-lead-lab-report/internal/common/logger"
)

const charsetUTF8 = "UTF-8"

// SESAPI is the slice of the SES client the sender needs.
type SESAPI interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// Sender delivers rendered audit reports over SES. It implements
// audit.Mailer.
type Sender struct {
	ses    SESAPI
	from   string
	logger logger.Logger
}

func NewSender(client SESAPI, from string, log logger.Logger) *Sender {
	return &Sender{
		ses:    client,
		from:   from,
		logger: log.WithFields(map[string]interface{}{
			"component": "email-sender",
		}),
	}
}

// SendReport renders and sends the report email. Delivery is skipped
// silently when either address is missing, matching the questionnaire's
// optional-email behavior.
func (s *Sender) SendReport(ctx context.Context, profile audit.ProfileInput, report audit.Report) error {
	if s.from == "" || profile.Email == "" {
		s.logger.Debug("email delivery skipped, sender or recipient missing", nil)
		return nil
	}

	subject := fmt.Sprintf("Your LinkedIn Audit Results - %d/100 Score", report.OverallScore)
	html := RenderHTML(profile, report)

	_, err := s.ses.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{profile.Email},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String(charsetUTF8),
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    aws.String(html),
					Charset: aws.String(charsetUTF8),
				},
			},
		},
	})
	if err != nil {
		return cerrors.NewEmailSendFailedError(err)
	}

	return nil
}
