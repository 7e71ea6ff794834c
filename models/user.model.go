package models

import "gorm.io/gorm"

// User roles
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	Name  string `json:"name" gorm:"default:''"`
	Email string `json:"email" gorm:"unique;not null"`
	Photo string `json:"photo" gorm:"default:''"`
	Role  string `json:"role" gorm:"default:'student'"` // student, instructor, admin
}
