// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/body-recomp/backend/internal/application/usecase/progress"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
	"github.com/body-recomp/backend/internal/integration/entrypoint/dto"
	"github.com/body-recomp/backend/internal/integration/entrypoint/middleware"
)

// ProgressController handles progress ledger and trend analysis endpoints.
type ProgressController struct {
	logUseCase    *progress.LogProgressUseCase
	listUseCase   *progress.ListProgressUseCase
	trendsUseCase *progress.GetTrendsUseCase
}

// NewProgressController creates a new progress controller instance.
func NewProgressController(
	logUseCase *progress.LogProgressUseCase,
	listUseCase *progress.ListProgressUseCase,
	trendsUseCase *progress.GetTrendsUseCase,
) *ProgressController {
	return &ProgressController{
		logUseCase:    logUseCase,
		listUseCase:   listUseCase,
		trendsUseCase: trendsUseCase,
	}
}

// Log handles POST /goals/:id/progress requests.
func (c *ProgressController) Log(ctx *gin.Context) {
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

	var req dto.LogProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMeasurementNotFound),
		})
		return
	}

	measurementID, err := uuid.Parse(req.MeasurementID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid measurement ID",
			Code:  string(domainerror.ErrCodeMeasurementNotFound),
		})
		return
	}

	output, err := c.logUseCase.Execute(ctx.Request.Context(), progress.LogProgressInput{
		UserID:        userID,
		GoalID:        goalID,
		MeasurementID: measurementID,
		Notes:         req.Notes,
	})
	if err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.LogProgressResponse{
		Entry:          dto.ToProgressEntryResponse(output.Entry),
		CeilingWarning: output.CeilingWarning,
		RateWarning:    output.RateWarning,
		GoalCompleted:  output.GoalCompleted,
	})
}

// List handles GET /goals/:id/progress requests.
func (c *ProgressController) List(ctx *gin.Context) {
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), progress.ListProgressInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	entries := make([]dto.ProgressEntryResponse, len(output.Entries))
	for i, e := range output.Entries {
		entries[i] = dto.ToProgressEntryResponse(e)
	}
	ctx.JSON(http.StatusOK, dto.ProgressListResponse{Entries: entries})
}

// Trends handles GET /goals/:id/trends requests.
func (c *ProgressController) Trends(ctx *gin.Context) {
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

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), progress.GetTrendsInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		c.handleProgressError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TrendsResponse{
		GoalID:                  output.GoalID.String(),
		ProgressPercentage:      output.ProgressPercentage,
		WeeksElapsed:            output.WeeksElapsed,
		IsOnTrack:               output.IsOnTrack,
		WeeklyBFChangeAvg:       output.WeeklyBFChangeAvg,
		WeeklyWeightChangeAvg:   output.WeeklyWeightChangeAvg,
		Trend:                   output.Trend,
		AdjustmentSuggestion:    output.AdjustmentSuggestion,
		EstimatedWeeksRemaining: output.EstimatedWeeksRemaining,
	})
}

// handleProgressError handles progress errors and returns appropriate HTTP responses.
func (c *ProgressController) handleProgressError(ctx *gin.Context, err error) {
	var progressErr *domainerror.ProgressError
	if errors.As(err, &progressErr) {
		statusCode := http.StatusBadRequest
		if progressErr.Code == domainerror.ErrCodeMeasurementAlreadyLogged {
			statusCode = http.StatusConflict
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: progressErr.Message,
			Code:  string(progressErr.Code),
		})
		return
	}

	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := http.StatusBadRequest
		switch goalErr.Code {
		case domainerror.ErrCodeGoalNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeGoalOwnership:
			statusCode = http.StatusForbidden
		case domainerror.ErrCodeGoalNotActive:
			statusCode = http.StatusConflict
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
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
