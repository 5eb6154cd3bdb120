// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/body-recomp/backend/internal/application/usecase/plan"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
	"github.com/body-recomp/backend/internal/integration/entrypoint/dto"
	"github.com/body-recomp/backend/internal/integration/entrypoint/middleware"
)

// PlanController handles training and diet plan endpoints.
type PlanController struct {
	trainingPlanUseCase *plan.GetTrainingPlanUseCase
	dietPlanUseCase     *plan.GetDietPlanUseCase
}

// NewPlanController creates a new plan controller instance.
func NewPlanController(
	trainingPlanUseCase *plan.GetTrainingPlanUseCase,
	dietPlanUseCase *plan.GetDietPlanUseCase,
) *PlanController {
	return &PlanController{
		trainingPlanUseCase: trainingPlanUseCase,
		dietPlanUseCase:     dietPlanUseCase,
	}
}

// TrainingPlan handles GET /goals/:id/training-plan requests.
func (c *PlanController) TrainingPlan(ctx *gin.Context) {
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

	output, err := c.trainingPlanUseCase.Execute(ctx.Request.Context(), plan.GetTrainingPlanInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TrainingPlanResponse{
		GoalID: output.GoalID.String(),
		Plan:   output.Plan,
	})
}

// DietPlan handles GET /goals/:id/diet-plan requests.
func (c *PlanController) DietPlan(ctx *gin.Context) {
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

	output, err := c.dietPlanUseCase.Execute(ctx.Request.Context(), plan.GetDietPlanInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		c.handlePlanError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DietPlanResponse{
		GoalID: output.GoalID.String(),
		Plan:   output.Plan,
	})
}

// handlePlanError handles plan errors and returns appropriate HTTP responses.
func (c *PlanController) handlePlanError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := http.StatusBadRequest
		switch goalErr.Code {
		case domainerror.ErrCodeGoalNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodeGoalOwnership:
			statusCode = http.StatusForbidden
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}
	if errors.Is(err, domainerror.ErrGoalNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Goal not found",
			Code:  string(domainerror.ErrCodeGoalNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
