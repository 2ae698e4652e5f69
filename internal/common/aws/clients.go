// internal/common/aws/clients.go
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// SESAPI is the subset of the SES client used here.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SNSAPI is the subset of the SNS client used here.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Messenger delivers notification emails through SES and text messages
// through SNS.
type Messenger struct {
	ses         SESAPI
	sns         SNSAPI
	fromEmail   string
	smsSenderID string
}

// NewMessenger loads the default AWS credential chain for region.
func NewMessenger(ctx context.Context, region, fromEmail, smsSenderID string) (*Messenger, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return NewMessengerWithClients(ses.NewFromConfig(cfg), sns.NewFromConfig(cfg), fromEmail, smsSenderID), nil
}

func NewMessengerWithClients(sesClient SESAPI, snsClient SNSAPI, fromEmail, smsSenderID string) *Messenger {
	return &Messenger{
		ses:         sesClient,
		sns:         snsClient,
		fromEmail:   fromEmail,
		smsSenderID: smsSenderID,
	}
}

// SendEmail sends a UTF-8 email with text and HTML bodies and returns the SES message id.
func (m *Messenger) SendEmail(ctx context.Context, to, subject, textBody, htmlBody string) (string, error) {
	out, err := m.ses.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(textBody), Charset: aws.String("UTF-8")},
				Html: &types.Content{Data: aws.String(htmlBody), Charset: aws.String("UTF-8")},
			},
		},
		Source: aws.String(m.fromEmail),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.MessageId), nil
}

// SendSMS publishes a transactional text message to phone.
func (m *Messenger) SendSMS(ctx context.Context, phone, message string) (string, error) {
	input := &sns.PublishInput{
		PhoneNumber: aws.String(phone),
		Message:     aws.String(message),
		MessageAttributes: map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {
				DataType:    aws.String("String"),
				StringValue: aws.String("Transactional"),
			},
		},
	}
	if m.smsSenderID != "" {
		input.MessageAttributes["AWS.SNS.SMS.SenderID"] = snstypes.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(m.smsSenderID),
		}
	}

	out, err := m.sns.Publish(ctx, input)
	if err != nil {
		return "", err
	}
	return aws.ToString(out.MessageId), nil
}
