package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"farewatch-service/internal/domain/entity"
	"farewatch-service/internal/domain/repository"
)

// GormPlaceRepository implements the PlaceRepository interface
type GormPlaceRepository struct {
	db *gorm.DB
}

// NewGormPlaceRepository creates a new GORM place repository
func NewGormPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &GormPlaceRepository{
		db: db,
	}
}

// Airportlist GORM model for database mapping
type Airportlist struct {
	gorm.Model
	ID          uint           `gorm:"primaryKey"`
	AirportCode string         `gorm:"column:airportcode;unique"`
	AirportName string         `gorm:"column:airport_name"`
	CityName    string         `gorm:"column:cityname"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (Airportlist) TableName() string {
	return "m_airports"
}

// GetByCode finds an airport by IATA code
func (r *GormPlaceRepository) GetByCode(ctx context.Context, code string) (*entity.Place, error) {
	var airport Airportlist
	result := r.db.WithContext(ctx).Unscoped().Where("airportcode = ?", code).First(&airport)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaceNotFound
		}
		return nil, result.Error
	}

	// Convert GORM model to domain entity
	return &entity.Place{
		ID:          airport.ID,
		Code:        airport.AirportCode,
		AirportName: airport.AirportName,
		CityName:    airport.CityName,
		CreatedAt:   airport.CreatedAt,
		UpdatedAt:   airport.UpdatedAt,
		DeletedAt:   airport.DeletedAt,
	}, nil
}
