package models

import (
	"time"

	"vrms/src/types"
)

type Maintenance struct {
	ID              uint       `gorm:"primarykey" json:"id"`
	VehicleID       uint       `json:"vehicle_id,omitempty"`
	MaintenanceDate time.Time  `json:"maintenance_date,omitempty"`
	Description     string     `gorm:"type:text" json:"description,omitempty"`
	Cost            float64    `json:"cost,omitempty"`
	NextServiceDate *time.Time `json:"next_service_date,omitempty"`

	Vehicle *Vehicle `gorm:"foreignKey:vehicle_id" json:"vehicle,omitempty"`

	types.Timestamps
}
