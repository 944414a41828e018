package db_models

import "github.com/google/uuid"

// Trip is a saved set of planning parameters, one row per generated plan the
// user chose to keep.
type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Destination string
	Budget      float64
	Days        int
	StartDate   string
	EndDate     string
	Transport   string
	Requirement string
	Child       bool
}
