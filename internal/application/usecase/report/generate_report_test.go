package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hotel-ops/backend/internal/application/adapter"
	"github.com/hotel-ops/backend/internal/domain/entity"
	domainerror "github.com/hotel-ops/backend/internal/domain/error"
	"github.com/hotel-ops/backend/internal/domain/valueobject"
)

type stubMovementRepository struct {
	movements []entity.Movement
	err       error
	filter    adapter.MovementFilter
}

func (s *stubMovementRepository) FindByRange(_ context.Context, filter adapter.MovementFilter) ([]entity.Movement, error) {
	s.filter = filter
	return s.movements, s.err
}

type stubShiftRepository struct {
	shifts map[int]entity.Shift
	err    error
}

func (s *stubShiftRepository) FindAll(_ context.Context) (map[int]entity.Shift, error) {
	return s.shifts, s.err
}

type stubReportRunRepository struct {
	recorded []*adapter.ReportRun
	err      error
}

func (s *stubReportRunRepository) Record(_ context.Context, run *adapter.ReportRun) error {
	s.recorded = append(s.recorded, run)
	return s.err
}

func TestGenerateShiftReportUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	shifts := map[int]entity.Shift{
		1: {Number: 1, Name: "Matutino"},
		2: {Number: 2, Name: "Vespertino"},
	}

	newUseCase := func(movementRepo *stubMovementRepository, runRepo *stubReportRunRepository) *GenerateShiftReportUseCase {
		var runRepoIface adapter.ReportRunRepository
		if runRepo != nil {
			runRepoIface = runRepo
		}
		return NewGenerateShiftReportUseCase(
			movementRepo,
			&stubShiftRepository{shifts: shifts},
			runRepoIface,
			DefaultTaxRate,
			DefaultServiceFeeRate,
			"Hotel Operaciones",
		)
	}

	t.Run("assembles the document with summaries and grand totals", func(t *testing.T) {
		movementRepo := &stubMovementRepository{movements: []entity.Movement{
			testMovement(entity.MovementTypePayment, entity.CurrencyMXN, "1160", intPtr(1)),
			testMovement(entity.MovementTypeRefund, entity.CurrencyMXN, "232", intPtr(2)),
		}}
		runRepo := &stubReportRunRepository{}
		useCase := newUseCase(movementRepo, runRepo)

		document, err := useCase.Execute(ctx, GenerateShiftReportInput{
			Config:      unrestrictedConfig(t),
			GeneratedBy: "recepcion1",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if document.Title != "Reporte de turnos" {
			t.Errorf("unexpected title %q", document.Title)
		}
		if document.HotelName != "Hotel Operaciones" {
			t.Errorf("unexpected hotel name %q", document.HotelName)
		}
		if document.GeneratedBy != "recepcion1" {
			t.Errorf("unexpected generated-by %q", document.GeneratedBy)
		}
		if len(document.Summaries) != 2 {
			t.Fatalf("expected 2 summaries, got %d", len(document.Summaries))
		}
		if document.Summaries[0].Name != "Matutino" {
			t.Errorf("expected registered shift name, got %q", document.Summaries[0].Name)
		}
		if document.RecordCount != 2 {
			t.Errorf("expected record count 2, got %d", document.RecordCount)
		}
		if got := document.GrandNet(entity.CurrencyMXN).StringFixed(2); got != "928.00" {
			t.Errorf("expected grand MXN net 928.00, got %s", got)
		}
	})

	t.Run("omits the itemized rows unless details are requested", func(t *testing.T) {
		movementRepo := &stubMovementRepository{movements: []entity.Movement{
			testMovement(entity.MovementTypePayment, entity.CurrencyMXN, "100", intPtr(1)),
		}}
		useCase := newUseCase(movementRepo, nil)

		document, err := useCase.Execute(ctx, GenerateShiftReportInput{Config: unrestrictedConfig(t)})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(document.Movements) != 0 {
			t.Errorf("expected no detail rows, got %d", len(document.Movements))
		}
		if document.RecordCount != 1 {
			t.Errorf("expected record count 1 even without details, got %d", document.RecordCount)
		}

		cfg, err := valueobject.NewReportConfig(valueobject.RawReportConfig{
			DateFrom:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			DateTo:         time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
			IncludeDetails: true,
		})
		if err != nil {
			t.Fatalf("expected valid config, got %v", err)
		}

		document, err = useCase.Execute(ctx, GenerateShiftReportInput{Config: cfg})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(document.Movements) != 1 {
			t.Errorf("expected 1 detail row, got %d", len(document.Movements))
		}
	})

	t.Run("forwards the config filters to the movement repository", func(t *testing.T) {
		movementRepo := &stubMovementRepository{}
		useCase := newUseCase(movementRepo, nil)

		cfg, err := valueobject.NewReportConfig(valueobject.RawReportConfig{
			DateFrom:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			DateTo:     time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			Shifts:     []int{1, 2},
			Currencies: []entity.Currency{entity.CurrencyUSD},
		})
		if err != nil {
			t.Fatalf("expected valid config, got %v", err)
		}

		if _, err := useCase.Execute(ctx, GenerateShiftReportInput{Config: cfg}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(movementRepo.filter.Shifts) != 2 {
			t.Errorf("expected 2 shifts in filter, got %v", movementRepo.filter.Shifts)
		}
		if len(movementRepo.filter.Currencies) != 1 || movementRepo.filter.Currencies[0] != entity.CurrencyUSD {
			t.Errorf("expected USD currency filter, got %v", movementRepo.filter.Currencies)
		}
		if !movementRepo.filter.DateTo.Equal(cfg.DateTo()) {
			t.Errorf("expected dateTo %s, got %s", cfg.DateTo(), movementRepo.filter.DateTo)
		}
	})

	t.Run("wraps movement fetch failures as source errors", func(t *testing.T) {
		movementRepo := &stubMovementRepository{err: errors.New("connection reset")}
		useCase := newUseCase(movementRepo, nil)

		_, err := useCase.Execute(ctx, GenerateShiftReportInput{Config: unrestrictedConfig(t)})
		if err == nil {
			t.Fatal("expected an error")
		}

		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) {
			t.Fatal("expected a *ReportError")
		}
		if reportErr.Code != domainerror.ErrCodeMovementFetchFailed {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMovementFetchFailed, reportErr.Code)
		}
		if reportErr.IsValidation() {
			t.Error("source errors must not classify as validation errors")
		}
	})

	t.Run("wraps shift lookup failures as source errors", func(t *testing.T) {
		useCase := NewGenerateShiftReportUseCase(
			&stubMovementRepository{},
			&stubShiftRepository{err: errors.New("relation does not exist")},
			nil,
			DefaultTaxRate,
			DefaultServiceFeeRate,
			"Hotel Operaciones",
		)

		_, err := useCase.Execute(ctx, GenerateShiftReportInput{Config: unrestrictedConfig(t)})
		if err == nil {
			t.Fatal("expected an error")
		}

		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) {
			t.Fatal("expected a *ReportError")
		}
		if reportErr.Code != domainerror.ErrCodeShiftLookupFailed {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeShiftLookupFailed, reportErr.Code)
		}
	})

	t.Run("records an audit run and survives audit failures", func(t *testing.T) {
		movementRepo := &stubMovementRepository{movements: []entity.Movement{
			testMovement(entity.MovementTypePayment, entity.CurrencyMXN, "100", intPtr(1)),
		}}
		runRepo := &stubReportRunRepository{err: errors.New("insert failed")}
		useCase := newUseCase(movementRepo, runRepo)

		document, err := useCase.Execute(ctx, GenerateShiftReportInput{
			Config:      unrestrictedConfig(t),
			GeneratedBy: "auditor",
		})
		if err != nil {
			t.Fatalf("audit failure must not fail the report, got %v", err)
		}
		if document == nil {
			t.Fatal("expected a document")
		}

		if len(runRepo.recorded) != 1 {
			t.Fatalf("expected 1 recorded run, got %d", len(runRepo.recorded))
		}
		run := runRepo.recorded[0]
		if run.GeneratedBy != "auditor" {
			t.Errorf("expected generated-by auditor, got %q", run.GeneratedBy)
		}
		if run.RecordCount != 1 {
			t.Errorf("expected record count 1, got %d", run.RecordCount)
		}
	})
}
