package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
	domainerror "github.com/body-recomp/backend/internal/domain/error"
)

// Safe body-fat boundaries for goals. Cutting targets at the floor are
// allowed; bulking ceilings at the maximum are allowed.
var (
	SafeMinTargetMale   = decimal.NewFromFloat(8.0)
	SafeMinTargetFemale = decimal.NewFromFloat(15.0)
	SafeMaxCeiling      = decimal.NewFromFloat(30.0)
)

// ValidateGoalSafety checks the target or ceiling of a prospective goal
// against the safety rules. A goal carries exactly one boundary: cutting
// goals a target, bulking goals a ceiling. Cutting targets must sit at or
// above the sex-specific floor and strictly below the current body fat.
// Bulking ceilings must sit at or below the maximum and strictly above the
// current body fat.
func ValidateGoalSafety(
	goalType entity.GoalType,
	currentBF decimal.Decimal,
	targetBF, ceilingBF *decimal.Decimal,
	sex entity.Sex,
) error {
	switch goalType {
	case entity.GoalTypeCutting:
		if targetBF == nil {
			return domainerror.NewGoalError(
				domainerror.ErrCodeMissingBoundary,
				"target_body_fat_percentage required for cutting goals",
				domainerror.ErrMissingBoundary,
			)
		}
		if ceilingBF != nil {
			return domainerror.NewGoalError(
				domainerror.ErrCodeMissingBoundary,
				"ceiling_body_fat_percentage must not be set for cutting goals",
				domainerror.ErrMissingBoundary,
			)
		}
		safeMin := SafeMinTargetFemale
		if sex == entity.SexMale {
			safeMin = SafeMinTargetMale
		}
		if targetBF.LessThan(safeMin) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeUnsafeTarget,
				fmt.Sprintf("target body fat too low, minimum safe level is %s%% for %ss",
					safeMin.StringFixed(1), sex),
				domainerror.ErrUnsafeTarget,
			)
		}
		if targetBF.GreaterThanOrEqual(currentBF) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeInvalidOrdering,
				"target body fat must be lower than current body fat for cutting goals",
				domainerror.ErrInvalidOrdering,
			)
		}

	case entity.GoalTypeBulking:
		if ceilingBF == nil {
			return domainerror.NewGoalError(
				domainerror.ErrCodeMissingBoundary,
				"ceiling_body_fat_percentage required for bulking goals",
				domainerror.ErrMissingBoundary,
			)
		}
		if targetBF != nil {
			return domainerror.NewGoalError(
				domainerror.ErrCodeMissingBoundary,
				"target_body_fat_percentage must not be set for bulking goals",
				domainerror.ErrMissingBoundary,
			)
		}
		if ceilingBF.GreaterThan(SafeMaxCeiling) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeUnsafeTarget,
				"ceiling body fat too high, maximum safe level is 30%",
				domainerror.ErrUnsafeTarget,
			)
		}
		if ceilingBF.LessThanOrEqual(currentBF) {
			return domainerror.NewGoalError(
				domainerror.ErrCodeInvalidOrdering,
				"ceiling body fat must be higher than current body fat for bulking goals",
				domainerror.ErrInvalidOrdering,
			)
		}

	default:
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"invalid goal type: "+string(goalType),
			nil,
		)
	}
	return nil
}
