package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"roadtrip/internal/models"
)

// MemoryUserStore is an in-memory UserStore used by handler tests. It applies
// the same uniqueness and atomicity rules as the Mongo implementation.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*models.User)}
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(user), nil
}

func (s *MemoryUserStore) Insert(_ context.Context, user *models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return "", ErrDuplicate
		}
	}

	user.ID = primitive.NewObjectID()
	s.users[user.ID.Hex()] = copyUser(user)
	return user.ID.Hex(), nil
}

func (s *MemoryUserStore) All(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := []models.User{}
	for _, user := range s.users {
		users = append(users, *copyUser(user))
	}
	return users, nil
}

func (s *MemoryUserStore) PushDestination(_ context.Context, userID string, dest models.Destination) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	user.Destinations = append(user.Destinations, dest)
	return nil
}

func (s *MemoryUserStore) ReplaceDestination(_ context.Context, userID string, dest models.Destination) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	for i := range user.Destinations {
		if user.Destinations[i].ID == dest.ID {
			user.Destinations[i] = dest
			return nil
		}
	}
	return ErrNotFound
}

func copyUser(user *models.User) *models.User {
	clone := *user
	clone.Destinations = append([]models.Destination(nil), user.Destinations...)
	return &clone
}

// MemoryRegulationStore is an in-memory RegulationStore for tests.
type MemoryRegulationStore struct {
	mu          sync.Mutex
	regulations []models.RoadRegulation
}

func NewMemoryRegulationStore() *MemoryRegulationStore {
	return &MemoryRegulationStore{}
}

func (s *MemoryRegulationStore) Insert(_ context.Context, regulation *models.RoadRegulation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.regulations {
		if existing.CountryName == regulation.CountryName {
			return ErrDuplicate
		}
	}
	s.regulations = append(s.regulations, *regulation)
	return nil
}

func (s *MemoryRegulationStore) FindByCountry(_ context.Context, countryName string) (*models.RoadRegulation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.regulations {
		if s.regulations[i].CountryName == countryName {
			regulation := s.regulations[i]
			return &regulation, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryRegulationStore) All(_ context.Context) ([]models.RoadRegulation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.RoadRegulation{}, s.regulations...), nil
}

// MemoryRoutePlanStore is an in-memory RoutePlanStore for tests.
type MemoryRoutePlanStore struct {
	mu    sync.Mutex
	plans []models.RoutePlan
}

func NewMemoryRoutePlanStore() *MemoryRoutePlanStore {
	return &MemoryRoutePlanStore{}
}

func (s *MemoryRoutePlanStore) Insert(_ context.Context, plan *models.RoutePlan) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan.ID = primitive.NewObjectID()
	s.plans = append(s.plans, *plan)
	return plan.ID.Hex(), nil
}

func (s *MemoryRoutePlanStore) FindByCreator(_ context.Context, creatorID string) ([]models.RoutePlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans := []models.RoutePlan{}
	for _, plan := range s.plans {
		if plan.CreatorID == creatorID {
			plans = append(plans, plan)
		}
	}
	return plans, nil
}
