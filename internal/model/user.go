package model

import (
	"time"
)

type UserRole string

const (
	Nominee  UserRole = "nominee"
	Reviewer UserRole = "reviewer"
	Admin    UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100;unique;not null" json:"email"`
	Password   string    `gorm:"size:100;not null" json:"-"`
	Role       UserRole  `gorm:"type:enum('nominee','reviewer','admin');default:'nominee'" json:"role"`
	Department string    `gorm:"size:150" json:"department"`
	Position   string    `gorm:"size:150" json:"position"`
	EmployeeID string    `gorm:"size:50" json:"employeeId"`
	Language   string    `gorm:"size:10;default:'ar'" json:"language"`
	Disabled   bool      `gorm:"default:false" json:"disabled"`
	LastLogin  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen   time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
