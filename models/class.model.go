package models

import "gorm.io/gorm"

// Class moderation statuses
const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusDenied   = "denied"
)

type Class struct {
	gorm.Model
	Name            string  `json:"name"`
	Image           string  `json:"image"`
	InstructorName  string  `json:"instructorName"`
	InstructorEmail string  `json:"instructorEmail" gorm:"index;not null"`
	Price           float64 `json:"price"`
	AvailableSeats  int     `json:"availableSeats"`
	Enrolled        int     `json:"enrolled" gorm:"default:0"`
	Status          string  `json:"status" gorm:"default:'pending'"` // pending, approved, denied
	Feedback        string  `json:"feedback"`
}
