package repository

import (
	"context"
	"errors"

	"farewatch-service/internal/domain/entity"
)

// ErrPlaceNotFound is returned when a directory has no entry for a code.
var ErrPlaceNotFound = errors.New("place not found")

// PlaceRepository defines the airport directory lookup.
type PlaceRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Place, error)
}
