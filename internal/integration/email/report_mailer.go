// Package email dispatches finished report artifacts via Resend.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/hotel-ops/backend/internal/application/adapter"
)

// ResendReportMailer implements the adapter.ReportMailer interface using Resend.
type ResendReportMailer struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendReportMailer creates a new Resend-backed report mailer.
func NewResendReportMailer(apiKey, fromName, fromEmail string) *ResendReportMailer {
	return &ResendReportMailer{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send emails the artifact as an attachment.
func (m *ResendReportMailer) Send(ctx context.Context, input adapter.SendReportInput) error {
	from := fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.BodyHTML,
		Attachments: []*resend.Attachment{
			{
				Filename:    input.Filename,
				Content:     input.Attachment,
				ContentType: input.ContentType,
			},
		},
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}

	return nil
}
