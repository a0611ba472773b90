package models

import "vrms/src/types"

type BankAccount struct {
	ID                uint   `gorm:"primarykey" json:"id"`
	BankName          string `json:"bank_name,omitempty"`
	Branch            string `json:"branch,omitempty"`
	AccountNumber     string `gorm:"uniqueIndex" json:"account_number,omitempty"`
	AccountHolderName string `json:"account_holder_name,omitempty"`
	AccountType       string `json:"account_type,omitempty"`
	IsActive          bool   `gorm:"default:true" json:"is_active"`

	types.Timestamps
}
