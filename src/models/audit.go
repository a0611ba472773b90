package models

import (
	"vrms/src/types"

	"github.com/google/uuid"
)

// RentalAudit records every rental lifecycle change. Rows are written inside
// the same transaction as the change they describe.
type RentalAudit struct {
	ID        uuid.UUID `gorm:"primarykey;type:uuid;default:gen_random_uuid()" json:"id"`
	RentalID  uint      `gorm:"index" json:"rental_id,omitempty"`
	Action    string    `json:"action,omitempty"`
	OldStatus string    `json:"old_status,omitempty"`
	NewStatus string    `json:"new_status,omitempty"`
	ChangedBy string    `json:"changed_by,omitempty"`

	types.Timestamps
}
