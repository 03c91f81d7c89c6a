package entity

import (
	"time"

	"gorm.io/gorm"
)

// Place describes an airport used to enrich digest lines with readable names.
type Place struct {
	ID          uint
	Code        string
	AirportName string
	CityName    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
}
