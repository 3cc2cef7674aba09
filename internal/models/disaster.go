package models

import "time"

type Disaster struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string     `json:"name" gorm:"not null"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	Description *string    `json:"description,omitempty"`
	IsActive    bool       `json:"is_active" gorm:"default:false;index"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Disaster) TableName() string {
	return "disasters"
}
