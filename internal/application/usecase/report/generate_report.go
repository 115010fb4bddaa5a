package report

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotel-ops/backend/internal/application/adapter"
	"github.com/hotel-ops/backend/internal/domain/entity"
	domainerror "github.com/hotel-ops/backend/internal/domain/error"
	"github.com/hotel-ops/backend/internal/domain/valueobject"
)

// GenerateShiftReportInput represents the input for generating a shift report.
type GenerateShiftReportInput struct {
	Config      *valueobject.ReportConfig
	GeneratedBy string
}

// GenerateShiftReportUseCase assembles the shift reconciliation report:
// fetch → decompose → aggregate → summarize → document. The use case holds
// no state across invocations; concurrent reports need no coordination.
type GenerateShiftReportUseCase struct {
	movementRepo  adapter.MovementRepository
	shiftRepo     adapter.ShiftRepository
	reportRunRepo adapter.ReportRunRepository
	taxRate       decimal.Decimal
	feeRate       decimal.Decimal
	hotelName     string
}

// NewGenerateShiftReportUseCase creates a new GenerateShiftReportUseCase instance.
func NewGenerateShiftReportUseCase(
	movementRepo adapter.MovementRepository,
	shiftRepo adapter.ShiftRepository,
	reportRunRepo adapter.ReportRunRepository,
	taxRate, feeRate decimal.Decimal,
	hotelName string,
) *GenerateShiftReportUseCase {
	return &GenerateShiftReportUseCase{
		movementRepo:  movementRepo,
		shiftRepo:     shiftRepo,
		reportRunRepo: reportRunRepo,
		taxRate:       taxRate,
		feeRate:       feeRate,
		hotelName:     hotelName,
	}
}

// Execute generates the report document for the validated config.
func (uc *GenerateShiftReportUseCase) Execute(
	ctx context.Context,
	input GenerateShiftReportInput,
) (*entity.ReportDocument, error) {
	cfg := input.Config
	started := time.Now().UTC()

	shifts, err := uc.shiftRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeShiftLookupFailed,
			"failed to load shift metadata",
			err,
		)
	}
	shiftNames := make(map[int]string, len(shifts))
	for number, shift := range shifts {
		shiftNames[number] = shift.Name
	}

	movements, err := uc.movementRepo.FindByRange(ctx, adapter.MovementFilter{
		DateFrom:      cfg.DateFrom(),
		DateTo:        cfg.DateTo(),
		Shifts:        cfg.Shifts(),
		Currencies:    cfg.Currencies(),
		PaymentTypes:  cfg.PaymentTypes(),
		MovementTypes: cfg.MovementTypes(),
	})
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMovementFetchFailed,
			"failed to fetch movements",
			err,
		)
	}

	aggregator := NewAggregator(uc.taxRate, uc.feeRate, shiftNames)
	agg := aggregator.Aggregate(movements, cfg)
	summaries, grand := BuildSummaries(agg, cfg.Shifts(), shiftNames)

	var detail []entity.DecomposedMovement
	recordCount := 0
	for _, number := range sortedBucketNumbers(agg) {
		bucket := agg.Buckets[number]
		recordCount += len(bucket.Movements)
		if cfg.IncludeDetails() {
			detail = append(detail, bucket.Movements...)
		}
	}

	document := &entity.ReportDocument{
		Title:         "Reporte de turnos",
		HotelName:     uc.hotelName,
		DateFrom:      cfg.DateFrom(),
		DateTo:        cfg.DateTo(),
		Shifts:        cfg.Shifts(),
		IncludeDetail: cfg.IncludeDetails(),
		ShowTotals:    cfg.ShowTotals(),
		GroupBy:       string(cfg.GroupBy()),
		Summaries:     summaries,
		GrandTotals:   grand,
		Movements:     detail,
		GeneratedAt:   started,
		GeneratedBy:   input.GeneratedBy,
		RecordCount:   recordCount,
	}

	uc.recordRun(ctx, input, document, time.Since(started))

	return document, nil
}

// recordRun writes the audit row for this generation. Audit failures are
// logged and never fail the report.
func (uc *GenerateShiftReportUseCase) recordRun(
	ctx context.Context,
	input GenerateShiftReportInput,
	document *entity.ReportDocument,
	duration time.Duration,
) {
	if uc.reportRunRepo == nil {
		return
	}

	run := &adapter.ReportRun{
		ID:          uuid.New(),
		GeneratedBy: input.GeneratedBy,
		DateFrom:    document.DateFrom,
		DateTo:      document.DateTo,
		Shifts:      document.Shifts,
		Format:      string(input.Config.Format()),
		RecordCount: document.RecordCount,
		Duration:    duration,
		GeneratedAt: document.GeneratedAt,
	}
	if err := uc.reportRunRepo.Record(ctx, run); err != nil {
		slog.Warn("failed to record report run", "error", err)
	}
}

func sortedBucketNumbers(agg *Aggregation) []int {
	numbers := make([]int, 0, len(agg.Buckets))
	for number := range agg.Buckets {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)
	return numbers
}
