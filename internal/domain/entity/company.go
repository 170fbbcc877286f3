package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company represents a supplier company in the catalog
type Company struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
