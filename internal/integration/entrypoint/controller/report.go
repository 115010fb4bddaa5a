// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotel-ops/backend/internal/application/usecase/export"
	"github.com/hotel-ops/backend/internal/application/usecase/report"
	domainerror "github.com/hotel-ops/backend/internal/domain/error"
	"github.com/hotel-ops/backend/internal/domain/valueobject"
	"github.com/hotel-ops/backend/internal/integration/entrypoint/dto"
	"github.com/hotel-ops/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles the shift report endpoints.
type ReportController struct {
	generateUseCase *report.GenerateShiftReportUseCase
	exportUseCase   *export.ExportReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	generateUseCase *report.GenerateShiftReportUseCase,
	exportUseCase *export.ExportReportUseCase,
) *ReportController {
	return &ReportController{
		generateUseCase: generateUseCase,
		exportUseCase:   exportUseCase,
	}
}

// GenerateShiftReport handles POST /reports/shifts requests.
func (c *ReportController) GenerateShiftReport(ctx *gin.Context) {
	var request dto.ShiftReportRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidRequestBody),
		})
		return
	}

	raw, err := request.ToRawConfig()
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	cfg, err := valueobject.NewReportConfig(raw)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	operator := middleware.GetOperatorFromContext(ctx)

	document, err := c.generateUseCase.Execute(ctx.Request.Context(), report.GenerateShiftReportInput{
		Config:      cfg,
		GeneratedBy: operator,
	})
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), export.ExportReportInput{
		Document: document,
		Format:   cfg.Format(),
		EmailTo:  request.EmailTo,
	})
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	if cfg.Format() == valueobject.FormatData {
		ctx.JSON(http.StatusOK, dto.ToShiftReportResponse(output.Document, output.Filename))
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, output.ContentType, output.Bytes)
}

// respondError maps report error categories to HTTP statuses.
func (c *ReportController) respondError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate report",
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case reportErr.IsValidation():
		status = http.StatusBadRequest
	case reportErr.Code == domainerror.ErrCodeUnsupportedFormat:
		status = http.StatusBadRequest
	case reportErr.Code == domainerror.ErrCodeDispatchFailed:
		status = http.StatusBadGateway
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: reportErr.Message,
		Code:  string(reportErr.Code),
	})
}
