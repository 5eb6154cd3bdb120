// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/body-recomp/backend/internal/domain/entity"
)

// CreateMeasurementRequest represents the request body for recording a
// measurement. Method is optional and defaults to the user's preferred
// method; only the raw fields that method needs are required.
type CreateMeasurementRequest struct {
	WeightKg      decimal.Decimal  `json:"weight_kg" binding:"required"`
	Method        string           `json:"method"`
	WaistCm       *decimal.Decimal `json:"waist_cm"`
	NeckCm        *decimal.Decimal `json:"neck_cm"`
	HipCm         *decimal.Decimal `json:"hip_cm"`
	ChestMm       *decimal.Decimal `json:"chest_mm"`
	AbdomenMm     *decimal.Decimal `json:"abdomen_mm"`
	ThighMm       *decimal.Decimal `json:"thigh_mm"`
	TricepMm      *decimal.Decimal `json:"tricep_mm"`
	SuprailiacMm  *decimal.Decimal `json:"suprailiac_mm"`
	MidaxillaryMm *decimal.Decimal `json:"midaxillary_mm"`
	SubscapularMm *decimal.Decimal `json:"subscapular_mm"`
	Notes         *string          `json:"notes"`
	MeasuredAt    *time.Time       `json:"measured_at"`
}

// RawInputs converts the request's raw fields to the domain representation.
func (r *CreateMeasurementRequest) RawInputs() entity.RawInputs {
	return entity.RawInputs{
		WaistCm:       r.WaistCm,
		NeckCm:        r.NeckCm,
		HipCm:         r.HipCm,
		ChestMm:       r.ChestMm,
		AbdomenMm:     r.AbdomenMm,
		ThighMm:       r.ThighMm,
		TricepMm:      r.TricepMm,
		SuprailiacMm:  r.SuprailiacMm,
		MidaxillaryMm: r.MidaxillaryMm,
		SubscapularMm: r.SubscapularMm,
	}
}

// MeasurementResponse represents a measurement in API responses.
type MeasurementResponse struct {
	ID                string           `json:"id"`
	WeightKg          decimal.Decimal  `json:"weight_kg"`
	Method            string           `json:"method"`
	WaistCm           *decimal.Decimal `json:"waist_cm,omitempty"`
	NeckCm            *decimal.Decimal `json:"neck_cm,omitempty"`
	HipCm             *decimal.Decimal `json:"hip_cm,omitempty"`
	ChestMm           *decimal.Decimal `json:"chest_mm,omitempty"`
	AbdomenMm         *decimal.Decimal `json:"abdomen_mm,omitempty"`
	ThighMm           *decimal.Decimal `json:"thigh_mm,omitempty"`
	TricepMm          *decimal.Decimal `json:"tricep_mm,omitempty"`
	SuprailiacMm      *decimal.Decimal `json:"suprailiac_mm,omitempty"`
	MidaxillaryMm     *decimal.Decimal `json:"midaxillary_mm,omitempty"`
	SubscapularMm     *decimal.Decimal `json:"subscapular_mm,omitempty"`
	BodyFatPercentage decimal.Decimal  `json:"body_fat_percentage"`
	Notes             *string          `json:"notes,omitempty"`
	MeasuredAt        time.Time        `json:"measured_at"`
	CreatedAt         time.Time        `json:"created_at"`
}

// MeasurementListResponse represents a page of measurements.
type MeasurementListResponse struct {
	Measurements []MeasurementResponse `json:"measurements"`
	Total        int64                 `json:"total"`
}

// ToMeasurementResponse converts a domain Measurement entity to a
// MeasurementResponse DTO.
func ToMeasurementResponse(m *entity.Measurement) MeasurementResponse {
	return MeasurementResponse{
		ID:                m.ID.String(),
		WeightKg:          m.WeightKg,
		Method:            string(m.CalculationMethod),
		WaistCm:           m.Raw.WaistCm,
		NeckCm:            m.Raw.NeckCm,
		HipCm:             m.Raw.HipCm,
		ChestMm:           m.Raw.ChestMm,
		AbdomenMm:         m.Raw.AbdomenMm,
		ThighMm:           m.Raw.ThighMm,
		TricepMm:          m.Raw.TricepMm,
		SuprailiacMm:      m.Raw.SuprailiacMm,
		MidaxillaryMm:     m.Raw.MidaxillaryMm,
		SubscapularMm:     m.Raw.SubscapularMm,
		BodyFatPercentage: m.BodyFatPercentage,
		Notes:             m.Notes,
		MeasuredAt:        m.MeasuredAt,
		CreatedAt:         m.CreatedAt,
	}
}
