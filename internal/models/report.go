package models

import "time"

type Report struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	DisasterID int64     `json:"disaster_id" gorm:"not null;index"`
	Title      string    `json:"title" gorm:"not null"`
	FilePath   string    `json:"file_path" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Disaster *Disaster `json:"disaster,omitempty" gorm:"foreignKey:DisasterID;constraint:OnDelete:CASCADE"`
}

func (Report) TableName() string {
	return "reports"
}

// Notulensi is an uploaded meeting-notes document.
type Notulensi struct {
	ID         int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	DisasterID int64      `json:"disaster_id" gorm:"not null;index"`
	Title      string     `json:"title" gorm:"not null"`
	FilePath   string     `json:"file_path" gorm:"not null"`
	Tanggal    *time.Time `json:"tanggal,omitempty"` // meeting date
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Disaster *Disaster `json:"disaster,omitempty" gorm:"foreignKey:DisasterID;constraint:OnDelete:CASCADE"`
}

func (Notulensi) TableName() string {
	return "notulensi"
}
