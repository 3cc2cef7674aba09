package models

import "time"

// SourceLink kinds.
const (
	SourceKindDmtSheet          = "dmt_sheet"
	SourceKindInfographicFolder = "infographic_folder"
	SourceKindReportFolder      = "report_folder"
)

// SourceLink is a configured external spreadsheet or folder. Saving a
// link always succeeds; when the follow-up scan fails the error text is
// kept in LastScanError instead of failing the save.
type SourceLink struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	DisasterID    int64      `json:"disaster_id" gorm:"not null;index"`
	Kind          string     `json:"kind" gorm:"not null"`
	Title         string     `json:"title"`
	URL           string     `json:"url" gorm:"not null"`
	ExternalID    string     `json:"external_id" gorm:"not null"` // sheet or folder id extracted from URL
	LastScannedAt *time.Time `json:"last_scanned_at,omitempty"`
	LastScanError *string    `json:"last_scan_error,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Disaster *Disaster `json:"disaster,omitempty" gorm:"foreignKey:DisasterID;constraint:OnDelete:CASCADE"`
}

func (SourceLink) TableName() string {
	return "source_links"
}
