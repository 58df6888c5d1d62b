package model

import "gorm.io/gorm"

type Notice struct {
	gorm.Model
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"size:1000;not null"`
}
