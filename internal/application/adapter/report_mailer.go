package adapter

import "context"

// SendReportInput carries a finished report artifact to be emailed.
type SendReportInput struct {
	To          string
	Subject     string
	BodyHTML    string
	Filename    string
	ContentType string
	Attachment  []byte
}

// ReportMailer dispatches finished report artifacts by email.
type ReportMailer interface {
	Send(ctx context.Context, input SendReportInput) error
}
