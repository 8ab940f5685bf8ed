package models

import "github.com/jinzhu/gorm"

// Table represents a physical table with its QR entry token.
// Customers reach the menu by scanning the QR code that encodes the token.
type Table struct {
	gorm.Model
	Number   int `gorm:"unique;not null"`
	Capacity int
	IsActive bool   `gorm:"default:true"`
	QRToken  string `gorm:"unique;not null"`
}
