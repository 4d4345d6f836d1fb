package models

import (
	"fmt"
	"math"
	"time"

	"gorm.io/datatypes"
)

const dayMillis = 86_400_000

// Assignment represents a task record with reference links supplied by the admin.
// Records are immutable once created; listings order them newest-first.
type Assignment struct {
	ID        uint                        `gorm:"primaryKey" json:"id"`
	Title     string                      `gorm:"size:255;not null" json:"title"`
	Details   string                      `gorm:"type:text" json:"details"`
	Deadline  *time.Time                  `json:"deadline"`
	Files     datatypes.JSONSlice[string] `json:"files"`
	CreatedAt time.Time                   `gorm:"index" json:"created_at"`
}

// DeadlineBadge returns the countdown label for the assignment deadline,
// computed as ceil of the remaining time in whole days at millisecond
// precision. An assignment without a deadline has no badge.
func (a Assignment) DeadlineBadge(reference time.Time) string {
	if a.Deadline == nil {
		return ""
	}

	diff := a.Deadline.Sub(reference)
	if diff < 0 {
		return "Past due"
	}

	daysLeft := int(math.Ceil(float64(diff.Milliseconds()) / float64(dayMillis)))
	switch daysLeft {
	case 0:
		return "Due today!"
	case 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", daysLeft)
	}
}
