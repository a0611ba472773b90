package models

import "vrms/src/types"

type Staff struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	FullName string `gorm:"not null" json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
	PhoneNo  string `json:"phone_no,omitempty"`
	Email    string `json:"email,omitempty"`
	Username string `gorm:"uniqueIndex" json:"username,omitempty"`
	BranchID *uint  `json:"branch_id,omitempty"`

	Branch *Branch `gorm:"foreignKey:branch_id" json:"branch,omitempty"`

	types.Timestamps
}
