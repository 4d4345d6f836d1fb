package models

import (
	"time"

	"gorm.io/datatypes"
)

// Classwork represents a material record whose files are public URLs produced
// by uploading PDF blobs, in the order they were selected for upload.
type Classwork struct {
	ID        uint                        `gorm:"primaryKey" json:"id"`
	Title     string                      `gorm:"size:255;not null" json:"title"`
	Details   string                      `gorm:"type:text" json:"details"`
	Files     datatypes.JSONSlice[string] `json:"files"`
	CreatedAt time.Time                   `gorm:"index" json:"created_at"`
}
