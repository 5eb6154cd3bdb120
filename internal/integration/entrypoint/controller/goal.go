// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/body-recomp/backend/internal/application/usecase/goal"
	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
	"github.com/body-recomp/backend/internal/integration/entrypoint/dto"
	"github.com/body-recomp/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles goal lifecycle endpoints.
type GoalController struct {
	createUseCase *goal.CreateGoalUseCase
	getUseCase    *goal.GetGoalUseCase
	listUseCase   *goal.ListGoalsUseCase
	cancelUseCase *goal.CancelGoalUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	listUseCase *goal.ListGoalsUseCase,
	cancelUseCase *goal.CancelGoalUseCase,
) *GoalController {
	return &GoalController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		cancelUseCase: cancelUseCase,
	}
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidGoalType),
		})
		return
	}

	measurementID, err := uuid.Parse(req.InitialMeasurementID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid initial measurement ID",
			Code:  string(domainerror.ErrCodeMeasurementNotFound),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:               userID,
		GoalType:             entity.GoalType(req.GoalType),
		InitialMeasurementID: measurementID,
		TargetBodyFat:        req.TargetBodyFat,
		CeilingBodyFat:       req.CeilingBodyFat,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateGoalResponse{
		Goal: dto.ToGoalResponse(output.Goal),
		BMR:  output.BMR,
		TDEE: output.TDEE,
	})
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		invalidGoalID(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// List handles GET /goals requests, with an optional status filter.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	input := goal.ListGoalsInput{UserID: userID}
	if statusParam := ctx.Query("status"); statusParam != "" {
		status := entity.GoalStatus(statusParam)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	goals := make([]dto.GoalResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = dto.ToGoalResponse(g)
	}
	ctx.JSON(http.StatusOK, dto.GoalListResponse{Goals: goals})
}

// Cancel handles POST /goals/:id/cancel requests.
func (c *GoalController) Cancel(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		unauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		invalidGoalID(ctx)
		return
	}

	output, err := c.cancelUseCase.Execute(ctx.Request.Context(), goal.CancelGoalInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		ctx.JSON(c.getStatusCodeForGoalError(goalErr.Code), dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	var measurementErr *domainerror.MeasurementError
	if errors.As(err, &measurementErr) {
		statusCode := http.StatusBadRequest
		switch measurementErr.Code {
		case domainerror.ErrCodeMeasurementNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeMeasurementOwnership:
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: measurementErr.Message,
			Code:  string(measurementErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrGoalNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Goal not found",
			Code:  string(domainerror.ErrCodeGoalNotFound),
		})
	case errors.Is(err, domainerror.ErrMeasurementNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Measurement not found",
			Code:  string(domainerror.ErrCodeMeasurementNotFound),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeActiveGoalExists,
		domainerror.ErrCodeGoalNotActive:
		return http.StatusConflict
	case domainerror.ErrCodeUnsafeTarget,
		domainerror.ErrCodeInvalidOrdering,
		domainerror.ErrCodeMissingBoundary,
		domainerror.ErrCodeInvalidGoalType:
		return http.StatusBadRequest
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalOwnership:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// invalidGoalID writes the standard malformed-goal-id response.
func invalidGoalID(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid goal ID",
		Code:  string(domainerror.ErrCodeGoalNotFound),
	})
}
