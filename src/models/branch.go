package models

import "vrms/src/types"

type Branch struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	BranchName string `gorm:"not null" json:"branch_name,omitempty"`
	Location   string `json:"location,omitempty"`
	ContactNo  string `json:"contact_no,omitempty"`
	ManagerID  *uint  `json:"manager_id,omitempty"`

	Manager  *Staff    `gorm:"foreignKey:manager_id" json:"manager,omitempty"`
	Vehicles []Vehicle `gorm:"foreignKey:branch_id" json:"vehicles,omitempty"`

	types.Timestamps
}
