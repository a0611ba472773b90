package models

import (
	"time"

	"vrms/src/types"
)

type Payment struct {
	ID             uint                `gorm:"primarykey" json:"id"`
	RentalID       uint                `gorm:"uniqueIndex" json:"rental_id,omitempty"`
	PaymentDate    time.Time           `json:"payment_date,omitempty"`
	Method         types.PaymentMethod `gorm:"column:payment_method" json:"payment_method,omitempty"`
	Amount         float64             `json:"amount,omitempty"`
	Status         types.PaymentStatus `gorm:"column:payment_status;default:'Pending'" json:"payment_status,omitempty"`
	TransactionRef *string             `json:"transaction_ref,omitempty"`
	SlipFileName   *string             `json:"slip_file_name,omitempty"`
	Notes          string              `json:"notes,omitempty"`

	Rental *Rental `gorm:"foreignKey:rental_id" json:"rental,omitempty"`

	types.Timestamps
}
