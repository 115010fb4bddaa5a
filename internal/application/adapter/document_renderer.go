package adapter

import (
	"context"

	"github.com/hotel-ops/backend/internal/domain/entity"
)

// RenderedArtifact is the output of a document renderer.
type RenderedArtifact struct {
	Bytes       []byte
	ContentType string
	Extension   string
}

// DocumentRenderer turns a report document into an output artifact. One
// implementation exists per output format; all share the same document so
// aggregation and rounding behavior cannot diverge between formats.
type DocumentRenderer interface {
	Render(ctx context.Context, document *entity.ReportDocument) (*RenderedArtifact, error)
}
