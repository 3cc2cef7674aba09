package models

import "time"

type Notification struct {
	ID             int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Type           string     `json:"type" gorm:"not null"` // e.g. "dmt_registration"
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	IsRead         bool       `json:"is_read" gorm:"default:false;index"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	RegistrationID *int64     `json:"registration_id,omitempty"`
	DisasterID     *int64     `json:"disaster_id,omitempty" gorm:"index"` // nil = visible in every scope
	CreatedAt      time.Time  `json:"created_at"`

	// Associations
	Registration *Registration `json:"registration,omitempty" gorm:"foreignKey:RegistrationID"`
	Disaster     *Disaster     `json:"disaster,omitempty" gorm:"foreignKey:DisasterID"`
}

func (Notification) TableName() string {
	return "notifications"
}
