package dto

import (
	m "fermata_backend/internals/features/packages/model"
)

/* =============== REQUESTS =============== */

type CreatePackageRequest struct {
	Name         string `json:"name" validate:"required,min=3"`
	Description  string `json:"description" validate:"omitempty"`
	Duration     int    `json:"duration" validate:"required"`
	Price        int64  `json:"price" validate:"required,gt=0"`
	SessionCount int    `json:"sessionCount" validate:"omitempty,gte=0"`
	Instrument   string `json:"instrument" validate:"required"`
}

func (r CreatePackageRequest) ToModel() *m.PackageModel {
	return &m.PackageModel{
		Name:         r.Name,
		Description:  r.Description,
		Duration:     r.Duration,
		Price:        r.Price,
		SessionCount: r.SessionCount,
		Instrument:   r.Instrument,
		IsActive:     true,
	}
}

// Update (partial)
type UpdatePackageRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=3"`
	Description  *string `json:"description" validate:"omitempty"`
	Duration     *int    `json:"duration" validate:"omitempty"`
	Price        *int64  `json:"price" validate:"omitempty,gt=0"`
	SessionCount *int    `json:"sessionCount" validate:"omitempty,gte=0"`
	Instrument   *string `json:"instrument" validate:"omitempty"`
}

// Terapkan perubahan ke model existing
func (r UpdatePackageRequest) ApplyTo(mo *m.PackageModel) {
	if r.Name != nil {
		mo.Name = *r.Name
	}
	if r.Description != nil {
		mo.Description = *r.Description
	}
	if r.Duration != nil {
		mo.Duration = *r.Duration
	}
	if r.Price != nil {
		mo.Price = *r.Price
	}
	if r.SessionCount != nil {
		mo.SessionCount = *r.SessionCount
	}
	if r.Instrument != nil {
		mo.Instrument = *r.Instrument
	}
}
