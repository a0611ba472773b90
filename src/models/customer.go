package models

import "vrms/src/types"

type Customer struct {
	ID            uint   `gorm:"primarykey" json:"id"`
	FullName      string `gorm:"not null" json:"full_name,omitempty"`
	NicPassportNo string `gorm:"uniqueIndex" json:"nic_passport_no,omitempty"`
	PhoneNo       string `json:"phone_no,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	LicenseNo     string `gorm:"uniqueIndex" json:"license_no,omitempty"`
	Username      string `gorm:"uniqueIndex" json:"username,omitempty"`

	Rentals []Rental `gorm:"foreignKey:customer_id" json:"rentals,omitempty"`

	types.Timestamps
}
