package models

import "gorm.io/gorm"

// Selection is a cart entry linking a student to a class before payment.
type Selection struct {
	gorm.Model
	ClassID uint   `json:"classId" gorm:"index;not null"`
	Email   string `json:"email" gorm:"index;not null"`
	Class   Class  `json:"class" gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE"`
}
