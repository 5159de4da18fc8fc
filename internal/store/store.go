// Package store abstracts the document collections behind narrow interfaces
// so handlers can run against MongoDB in production and an in-memory fake in
// tests.
package store

import (
	"context"
	"errors"

	"roadtrip/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint rejects an insert.
	ErrDuplicate = errors.New("duplicate")
	// ErrInvalidID is returned when an id string is not a valid document id.
	ErrInvalidID = errors.New("invalid id")
)

// UserStore owns the users collection, accounts plus embedded destinations.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	// Insert persists a new account and returns its assigned id.
	Insert(ctx context.Context, user *models.User) (string, error)
	All(ctx context.Context) ([]models.User, error)
	// PushDestination atomically appends a destination to the account's list.
	PushDestination(ctx context.Context, userID string, dest models.Destination) error
	// ReplaceDestination atomically replaces the destination with a matching
	// id; ErrNotFound when the account has no destination with that id.
	ReplaceDestination(ctx context.Context, userID string, dest models.Destination) error
}

// RegulationStore owns the regulations collection, keyed by country name.
type RegulationStore interface {
	Insert(ctx context.Context, regulation *models.RoadRegulation) error
	FindByCountry(ctx context.Context, countryName string) (*models.RoadRegulation, error)
	All(ctx context.Context) ([]models.RoadRegulation, error)
}

// RoutePlanStore owns the route_plans collection.
type RoutePlanStore interface {
	Insert(ctx context.Context, plan *models.RoutePlan) (string, error)
	FindByCreator(ctx context.Context, creatorID string) ([]models.RoutePlan, error)
}
