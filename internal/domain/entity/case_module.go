package entity

import (
	"time"

	"github.com/google/uuid"
)

// CaseModuleBase carries the one-to-one patient link shared by every case
// module. The unique index on patient_id is the authoritative invariant:
// at most one row per patient per module table.
type CaseModuleBase struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"patient_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
