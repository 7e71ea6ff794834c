package models

import "gorm.io/gorm"

// Payment is an append-only record of a completed provider transaction.
type Payment struct {
	gorm.Model
	Email         string  `json:"email" gorm:"index;not null"`
	Amount        float64 `json:"amount" gorm:"not null"`
	Currency      string  `json:"currency" gorm:"default:'usd'"`
	TransactionID string  `json:"transactionId"`
}
