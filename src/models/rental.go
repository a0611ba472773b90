package models

import (
	"time"

	"vrms/src/types"
)

type Rental struct {
	ID          uint               `gorm:"primarykey" json:"id"`
	CustomerID  uint               `json:"customer_id,omitempty"`
	VehicleID   uint               `json:"vehicle_id,omitempty"`
	StaffID     uint               `json:"staff_id,omitempty"`
	RentalDate  time.Time          `json:"rental_date,omitempty"`
	ReturnDate  time.Time          `json:"return_date,omitempty"`
	TotalAmount float64            `json:"total_amount,omitempty"`
	Status      types.RentalStatus `gorm:"default:'Pending'" json:"status,omitempty"`

	Customer *Customer `gorm:"foreignKey:customer_id" json:"customer,omitempty"`
	Vehicle  *Vehicle  `gorm:"foreignKey:vehicle_id" json:"vehicle,omitempty"`
	Staff    *Staff    `gorm:"foreignKey:staff_id" json:"staff,omitempty"`
	Payment  *Payment  `gorm:"foreignKey:rental_id" json:"payment,omitempty"`

	types.Timestamps
}
