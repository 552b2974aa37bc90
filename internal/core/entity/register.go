// Package entity provides core domain entities.
package entity

import (
	"time"

	"pharmacy/internal/core/id"
)

// MovementBase contains common fields for all register movements.
// Movements are immutable once recorded.
type MovementBase struct {
	// LineID is unique identifier for this movement line (UUIDv7)
	LineID id.ID `json:"lineId"`

	// RecorderID is the document that created this movement
	RecorderID id.ID `json:"recorderId"`

	// RecorderType is the document type (e.g., "Sale")
	RecorderType string `json:"recorderType"`

	// Period is the business date for the movement
	Period time.Time `json:"period"`

	// CreatedAt is when the movement was recorded
	CreatedAt time.Time `json:"createdAt"`
}

// NewMovementBase creates a new movement base with generated LineID.
func NewMovementBase(recorderID id.ID, recorderType string, period time.Time) MovementBase {
	return MovementBase{
		LineID:       id.New(),
		RecorderID:   recorderID,
		RecorderType: recorderType,
		Period:       period,
		CreatedAt:    time.Now().UTC(),
	}
}
