package models

import "vrms/src/types"

type User struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Username string `gorm:"uniqueIndex" json:"username,omitempty"`
	Password string `json:"-"`
	Role     string `gorm:"default:'USER'" json:"role,omitempty"`

	types.Timestamps
}
