package models

import "vrms/src/types"

type Vehicle struct {
	ID             uint                     `gorm:"primarykey" json:"id"`
	VehicleType    string                   `json:"vehicle_type,omitempty"`
	Brand          string                   `json:"brand,omitempty"`
	Model          string                   `json:"model,omitempty"`
	RegistrationNo string                   `gorm:"uniqueIndex" json:"registration_no,omitempty"`
	DailyRate      float64                  `json:"daily_rate,omitempty"`
	Status         types.AvailabilityStatus `gorm:"column:availability_status;default:'Available'" json:"availability_status,omitempty"`
	BranchID       *uint                    `json:"branch_id,omitempty"`

	Branch  *Branch  `gorm:"foreignKey:branch_id" json:"branch,omitempty"`
	Rentals []Rental `gorm:"foreignKey:vehicle_id" json:"rentals,omitempty"`

	types.Timestamps
}
