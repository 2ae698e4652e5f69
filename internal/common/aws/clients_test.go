// internal/common/aws/clients_test.go
package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockSESService struct {
	SendEmailFunc func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

func (m *MockSESService) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	return m.SendEmailFunc(ctx, params, optFns...)
}

type MockSNSService struct {
	PublishFunc func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

func (m *MockSNSService) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	return m.PublishFunc(ctx, params, optFns...)
}

func TestMessenger_SendEmail(t *testing.T) {
	mockSES := &MockSESService{
		SendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			assert.Equal(t, []string{"user@example.com"}, params.Destination.ToAddresses)
			assert.Equal(t, "alerts@example.com", aws.ToString(params.Source))
			assert.Equal(t, "새 지원사업 2건", aws.ToString(params.Message.Subject.Data))
			assert.Equal(t, "UTF-8", aws.ToString(params.Message.Body.Html.Charset))
			return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
		},
	}

	m := NewMessengerWithClients(mockSES, nil, "alerts@example.com", "")
	id, err := m.SendEmail(context.Background(), "user@example.com", "새 지원사업 2건", "text", "<p>html</p>")
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
}

func TestMessenger_SendEmail_Error(t *testing.T) {
	mockSES := &MockSESService{
		SendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			return nil, errors.New("MessageRejected")
		},
	}

	m := NewMessengerWithClients(mockSES, nil, "alerts@example.com", "")
	_, err := m.SendEmail(context.Background(), "user@example.com", "s", "t", "h")
	assert.EqualError(t, err, "MessageRejected")
}

func TestMessenger_SendSMS(t *testing.T) {
	tests := []struct {
		name       string
		senderID   string
		wantSender bool
	}{
		{"with sender id", "SUPPORT", true},
		{"without sender id", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSNS := &MockSNSService{
				PublishFunc: func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
					assert.Equal(t, "+821012345678", aws.ToString(params.PhoneNumber))
					assert.Equal(t, "Transactional", aws.ToString(params.MessageAttributes["AWS.SNS.SMS.SMSType"].StringValue))
					_, hasSender := params.MessageAttributes["AWS.SNS.SMS.SenderID"]
					assert.Equal(t, tt.wantSender, hasSender)
					return &sns.PublishOutput{MessageId: aws.String("sms-1")}, nil
				},
			}

			m := NewMessengerWithClients(nil, mockSNS, "", tt.senderID)
			id, err := m.SendSMS(context.Background(), "+821012345678", "hello")
			require.NoError(t, err)
			assert.Equal(t, "sms-1", id)
		})
	}
}
