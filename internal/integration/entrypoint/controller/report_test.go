// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotel-ops/backend/internal/application/adapter"
	"github.com/hotel-ops/backend/internal/application/usecase/export"
	"github.com/hotel-ops/backend/internal/application/usecase/report"
	"github.com/hotel-ops/backend/internal/domain/entity"
	"github.com/hotel-ops/backend/internal/domain/valueobject"
	"github.com/hotel-ops/backend/internal/integration/document"
	"github.com/hotel-ops/backend/internal/integration/entrypoint/dto"
)

type fakeMovementRepository struct {
	movements []entity.Movement
	err       error
}

func (f *fakeMovementRepository) FindByRange(context.Context, adapter.MovementFilter) ([]entity.Movement, error) {
	return f.movements, f.err
}

type fakeShiftRepository struct{}

func (fakeShiftRepository) FindAll(context.Context) (map[int]entity.Shift, error) {
	return map[int]entity.Shift{
		1: {Number: 1, Name: "Matutino"},
		2: {Number: 2, Name: "Vespertino"},
	}, nil
}

func reportRouter(t *testing.T, movementRepo adapter.MovementRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	generateUseCase := report.NewGenerateShiftReportUseCase(
		movementRepo,
		fakeShiftRepository{},
		nil,
		report.DefaultTaxRate,
		report.DefaultServiceFeeRate,
		"Hotel Operaciones",
	)

	htmlRenderer, err := document.NewHTMLRenderer()
	require.NoError(t, err)
	renderers := map[valueobject.ReportFormat]adapter.DocumentRenderer{
		valueobject.FormatDocument: document.NewPDFRenderer(),
		valueobject.FormatPrint:    htmlRenderer,
	}
	exportUseCase := export.NewExportReportUseCase(renderers, nil, "reporte-turnos")

	controller := NewReportController(generateUseCase, exportUseCase)

	router := gin.New()
	router.POST("/api/v1/reports/shifts", controller.GenerateShiftReport)
	return router
}

func shiftMovements() []entity.Movement {
	shift1, shift2 := 1, 2
	return []entity.Movement{
		{
			ID:          uuid.New(),
			Type:        entity.MovementTypePayment,
			Currency:    entity.CurrencyMXN,
			PaymentType: entity.PaymentTypeCash,
			Amount:      decimal.RequireFromString("2500"),
			OccurredAt:  time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
			Shift:       &shift1,
			UserName:    "ana",
			Concept:     "Hospedaje",
		},
		{
			ID:          uuid.New(),
			Type:        entity.MovementTypeRefund,
			Currency:    entity.CurrencyMXN,
			PaymentType: entity.PaymentTypeCash,
			Amount:      decimal.RequireFromString("500"),
			OccurredAt:  time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC),
			Shift:       &shift2,
			UserName:    "luis",
			Concept:     "Devolución",
		},
	}
}

func postReport(router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/shifts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReportController_GenerateShiftReport(t *testing.T) {
	t.Run("data format returns the structured report", func(t *testing.T) {
		router := reportRouter(t, &fakeMovementRepository{movements: shiftMovements()})

		w := postReport(router, map[string]interface{}{
			"dateFrom": "2026-03-10",
			"dateTo":   "2026-03-15",
			"format":   "data",
		})

		require.Equal(t, http.StatusOK, w.Code)

		var response dto.ShiftReportResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Reporte de turnos", response.Title)
		require.Len(t, response.Summaries, 2)
		assert.Equal(t, "Matutino", response.Summaries[0].Name)
		assert.InDelta(t, 2000.00, response.GrandTotals["MXN"].Net, 0.001)
		assert.Equal(t, 2, response.RecordCount)
	})

	t.Run("document format returns a PDF attachment", func(t *testing.T) {
		router := reportRouter(t, &fakeMovementRepository{movements: shiftMovements()})

		w := postReport(router, map[string]interface{}{
			"dateFrom":       "2026-03-10",
			"dateTo":         "2026-03-15",
			"includeDetails": true,
			"showTotals":     true,
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		assert.Contains(t, w.Header().Get("Content-Disposition"), ".pdf")
		assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
	})

	t.Run("print format returns HTML", func(t *testing.T) {
		router := reportRouter(t, &fakeMovementRepository{movements: shiftMovements()})

		w := postReport(router, map[string]interface{}{
			"dateFrom":   "2026-03-10",
			"dateTo":     "2026-03-15",
			"format":     "print",
			"showTotals": true,
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "Matutino")
	})

	t.Run("missing dates are rejected with 400", func(t *testing.T) {
		router := reportRouter(t, &fakeMovementRepository{})

		w := postReport(router, map[string]interface{}{"dateFrom": "2026-03-10"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed JSON bodies get the request-body code", func(t *testing.T) {
		router := reportRouter(t, &fakeMovementRepository{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/shifts",
			strings.NewReader(`{"dateFrom": "2026-03-10",`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "RPT-010011", response.Code)
	})

	t.Run("type mismatches in the body get the request-body code", func(t *testing.T) {
		router := reportRouter(t, &fakeMovementRepository{})

		w := postReport(router, map[string]interface{}{
			"dateFrom": "2026-03-10",
			"dateTo":   "2026-03-15",
			"turnos":   "all",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "RPT-010011", response.Code)
	})

	t.Run("inverted date range is rejected with the range code", func(t *testing.T) {
		router := reportRouter(t, &fakeMovementRepository{})

		w := postReport(router, map[string]interface{}{
			"dateFrom": "2026-03-15",
			"dateTo":   "2026-03-10",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "RPT-010001", response.Code)
	})

	t.Run("malformed dates are rejected with the format code", func(t *testing.T) {
		router := reportRouter(t, &fakeMovementRepository{})

		w := postReport(router, map[string]interface{}{
			"dateFrom": "15-03-2026",
			"dateTo":   "2026-03-16",
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "RPT-010003", response.Code)
	})

	t.Run("unknown filter values are rejected before fetching", func(t *testing.T) {
		router := reportRouter(t, &fakeMovementRepository{err: errors.New("must not be called")})

		w := postReport(router, map[string]interface{}{
			"dateFrom":   "2026-03-10",
			"dateTo":     "2026-03-15",
			"currencies": []string{"GBP"},
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "RPT-010005", response.Code)
	})

	t.Run("source failures map to 500 with the fetch code", func(t *testing.T) {
		router := reportRouter(t, &fakeMovementRepository{err: errors.New("connection refused")})

		w := postReport(router, map[string]interface{}{
			"dateFrom": "2026-03-10",
			"dateTo":   "2026-03-15",
		})

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var response dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "RPT-020001", response.Code)
	})
}
