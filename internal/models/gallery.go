package models

import "time"

// GalleryItem captures a session photo published in the public gallery.
type GalleryItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Caption   string    `gorm:"type:text" json:"caption"`
	ImageURL  string    `gorm:"size:512;not null" json:"image_url"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
