package models

import "time"

// Infographic is one image mirrored from a Drive folder. FileID is the
// external Drive id; reconciliation upserts by it and removes rows whose
// id disappeared from the remote listing.
type Infographic struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	DisasterID   int64     `json:"disaster_id" gorm:"not null;uniqueIndex:idx_infographics_disaster_file"`
	FileID       string    `json:"file_id" gorm:"not null;uniqueIndex:idx_infographics_disaster_file"`
	Name         string    `json:"name" gorm:"not null"`
	ViewURL      string    `json:"view_url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	SizeBytes    int64     `json:"size_bytes"`
	MimeType     string    `json:"mime_type"`
	Position     int       `json:"position" gorm:"index"` // natural-sort rank within the folder
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Infographic) TableName() string {
	return "infographics"
}
