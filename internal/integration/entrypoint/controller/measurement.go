// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/body-recomp/backend/internal/application/usecase/measurement"
	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
	"github.com/body-recomp/backend/internal/integration/entrypoint/dto"
	"github.com/body-recomp/backend/internal/integration/entrypoint/middleware"
)

// MeasurementController handles measurement endpoints.
type MeasurementController struct {
	createUseCase *measurement.CreateMeasurementUseCase
	getUseCase    *measurement.GetMeasurementUseCase
	listUseCase   *measurement.ListMeasurementsUseCase
}

// NewMeasurementController creates a new measurement controller instance.
func NewMeasurementController(
	createUseCase *measurement.CreateMeasurementUseCase,
	getUseCase *measurement.GetMeasurementUseCase,
	listUseCase *measurement.ListMeasurementsUseCase,
) *MeasurementController {
	return &MeasurementController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /measurements requests.
func (c *MeasurementController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.CreateMeasurementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingInput),
		})
		return
	}

	input := measurement.CreateMeasurementInput{
		UserID:     userID,
		WeightKg:   req.WeightKg,
		Method:     entity.CalculationMethod(req.Method),
		Raw:        req.RawInputs(),
		Notes:      req.Notes,
		MeasuredAt: req.MeasuredAt,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMeasurementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMeasurementResponse(output.Measurement))
}

// Get handles GET /measurements/:id requests.
func (c *MeasurementController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	measurementID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid measurement ID",
			Code:  string(domainerror.ErrCodeMeasurementNotFound),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), measurement.GetMeasurementInput{
		UserID:        userID,
		MeasurementID: measurementID,
	})
	if err != nil {
		c.handleMeasurementError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMeasurementResponse(output.Measurement))
}

// List handles GET /measurements requests.
func (c *MeasurementController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), measurement.ListMeasurementsInput{
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		c.handleMeasurementError(ctx, err)
		return
	}

	measurements := make([]dto.MeasurementResponse, len(output.Measurements))
	for i, m := range output.Measurements {
		measurements[i] = dto.ToMeasurementResponse(m)
	}
	ctx.JSON(http.StatusOK, dto.MeasurementListResponse{
		Measurements: measurements,
		Total:        output.Total,
	})
}

// handleMeasurementError handles measurement errors and returns appropriate HTTP responses.
func (c *MeasurementController) handleMeasurementError(ctx *gin.Context, err error) {
	var measurementErr *domainerror.MeasurementError
	if errors.As(err, &measurementErr) {
		ctx.JSON(c.getStatusCodeForMeasurementError(measurementErr.Code), dto.ErrorResponse{
			Error: measurementErr.Message,
			Code:  string(measurementErr.Code),
		})
		return
	}
	if errors.Is(err, domainerror.ErrMeasurementNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Measurement not found",
			Code:  string(domainerror.ErrCodeMeasurementNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForMeasurementError maps measurement error codes to HTTP status codes.
func (c *MeasurementController) getStatusCodeForMeasurementError(code domainerror.MeasurementErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingInput,
		domainerror.ErrCodeInputOutOfRange,
		domainerror.ErrCodeUnknownMethod:
		return http.StatusBadRequest
	case domainerror.ErrCodeMeasurementNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMeasurementOwnership:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// unauthenticated writes the standard missing-authentication response.
func unauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
