// Package export contains the report export pipeline use cases.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hotel-ops/backend/internal/application/adapter"
	"github.com/hotel-ops/backend/internal/domain/entity"
	domainerror "github.com/hotel-ops/backend/internal/domain/error"
	"github.com/hotel-ops/backend/internal/domain/valueobject"
)

// ExportReportInput represents the input for exporting a rendered report.
type ExportReportInput struct {
	Document *entity.ReportDocument
	Format   valueobject.ReportFormat
	EmailTo  string // Optional; dispatches the artifact when set
}

// ExportReportOutput represents the produced artifact. For FormatData the
// Document field carries the structured report; Bytes is only populated
// when a JSON attachment was built for dispatch.
type ExportReportOutput struct {
	Document    *entity.ReportDocument
	Bytes       []byte
	ContentType string
	Filename    string
}

// ExportReportUseCase serializes a rendered document into the requested
// artifact and names it deterministically from the report's date range.
type ExportReportUseCase struct {
	renderers map[valueobject.ReportFormat]adapter.DocumentRenderer
	mailer    adapter.ReportMailer
	baseName  string
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(
	renderers map[valueobject.ReportFormat]adapter.DocumentRenderer,
	mailer adapter.ReportMailer,
	baseName string,
) *ExportReportUseCase {
	return &ExportReportUseCase{
		renderers: renderers,
		mailer:    mailer,
		baseName:  baseName,
	}
}

// Execute produces the output artifact. An unsupported format or a failed
// encoding is reported as an explicit error, never a silently empty artifact.
func (uc *ExportReportUseCase) Execute(
	ctx context.Context,
	input ExportReportInput,
) (*ExportReportOutput, error) {
	if input.Format == valueobject.FormatData {
		output := &ExportReportOutput{
			Document:    input.Document,
			ContentType: "application/json",
			Filename:    uc.Filename(input.Document, "json"),
		}
		// A data report still honors the dispatch request: the structured
		// document goes out as a JSON attachment.
		if input.EmailTo != "" {
			payload, err := json.MarshalIndent(input.Document, "", "  ")
			if err != nil {
				return nil, domainerror.NewReportError(
					domainerror.ErrCodeRenderFailed,
					"failed to encode report data",
					err,
				)
			}
			output.Bytes = payload
			if err := uc.dispatch(ctx, input.EmailTo, output); err != nil {
				return nil, err
			}
		}
		return output, nil
	}

	renderer, ok := uc.renderers[input.Format]
	if !ok {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnsupportedFormat,
			"unsupported report format: "+string(input.Format),
			domainerror.ErrUnsupportedFormat,
		)
	}

	artifact, err := renderer.Render(ctx, input.Document)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeRenderFailed,
			"failed to render report document",
			err,
		)
	}
	if len(artifact.Bytes) == 0 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeRenderFailed,
			"renderer produced an empty artifact",
			domainerror.ErrRenderFailed,
		)
	}

	output := &ExportReportOutput{
		Document:    input.Document,
		Bytes:       artifact.Bytes,
		ContentType: artifact.ContentType,
		Filename:    uc.Filename(input.Document, artifact.Extension),
	}

	if input.EmailTo != "" {
		if err := uc.dispatch(ctx, input.EmailTo, output); err != nil {
			return nil, err
		}
	}

	return output, nil
}

// Filename derives the deterministic artifact name:
//
//	{report-name}_{from:YYYY-MM-DD}_{to:YYYY-MM-DD}[_shifts-{n-n-n}]_{generation-timestamp}.{ext}
func (uc *ExportReportUseCase) Filename(document *entity.ReportDocument, extension string) string {
	parts := []string{
		uc.baseName,
		document.DateFrom.Format("2006-01-02"),
		document.DateTo.Format("2006-01-02"),
	}

	if len(document.Shifts) > 0 {
		numbers := make([]string, len(document.Shifts))
		for i, shift := range document.Shifts {
			numbers[i] = strconv.Itoa(shift)
		}
		parts = append(parts, "shifts-"+strings.Join(numbers, "-"))
	}

	parts = append(parts, document.GeneratedAt.Format("20060102-150405"))

	return strings.Join(parts, "_") + "." + extension
}

// dispatch emails the finished artifact. The artifact was already produced;
// a dispatch failure surfaces as a coded error on top of it.
func (uc *ExportReportUseCase) dispatch(ctx context.Context, to string, output *ExportReportOutput) error {
	if uc.mailer == nil {
		return domainerror.NewReportError(
			domainerror.ErrCodeDispatchFailed,
			"report mailing is not configured",
			domainerror.ErrDispatchFailed,
		)
	}

	subject := fmt.Sprintf("%s %s a %s",
		output.Document.Title,
		output.Document.DateFrom.Format("2006-01-02"),
		output.Document.DateTo.Format("2006-01-02"),
	)

	err := uc.mailer.Send(ctx, adapter.SendReportInput{
		To:          to,
		Subject:     subject,
		BodyHTML:    fmt.Sprintf("<p>Reporte generado por %s.</p>", output.Document.GeneratedBy),
		Filename:    output.Filename,
		ContentType: output.ContentType,
		Attachment:  output.Bytes,
	})
	if err != nil {
		return domainerror.NewReportError(
			domainerror.ErrCodeDispatchFailed,
			"failed to dispatch report to "+to,
			err,
		)
	}

	return nil
}
