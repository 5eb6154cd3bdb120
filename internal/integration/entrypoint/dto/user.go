// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/shopspring/decimal"

// UpdateProfileRequest represents the request body for a partial profile
// update. Absent fields are left unchanged; sex and date of birth are not
// updatable.
type UpdateProfileRequest struct {
	FullName        *string          `json:"full_name"`
	HeightCm        *decimal.Decimal `json:"height_cm"`
	ActivityLevel   *string          `json:"activity_level"`
	PreferredMethod *string          `json:"preferred_method"`
}
