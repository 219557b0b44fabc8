package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/PEREIRAD01/backend-Pitstoppro/models"
)

// InMemoryVehicleStore is a map-backed VehicleStore for tests. It mirrors
// the database semantics: per-owner plate uniqueness and atomic
// owner-scoped mutations.
type InMemoryVehicleStore struct {
	mu       sync.RWMutex
	nextID   uint
	vehicles map[uint]models.Vehicle
}

func NewInMemoryVehicleStore() *InMemoryVehicleStore {
	return &InMemoryVehicleStore{
		nextID:   1,
		vehicles: make(map[uint]models.Vehicle),
	}
}

func (s *InMemoryVehicleStore) Create(vehicle *models.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.vehicles {
		if v.UserID == vehicle.UserID && v.Plate == vehicle.Plate {
			return ErrPlateExists
		}
	}
	vehicle.ID = s.nextID
	vehicle.CreatedAt = time.Now()
	s.nextID++
	s.vehicles[vehicle.ID] = *vehicle
	return nil
}

func (s *InMemoryVehicleStore) ListByOwner(ownerID uint, q ListQuery) ([]models.Vehicle, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make([]models.Vehicle, 0)
	for _, v := range s.vehicles {
		if v.UserID == ownerID {
			owned = append(owned, v)
		}
	}

	sort.Slice(owned, func(i, j int) bool {
		a, b := owned[i], owned[j]
		if q.SortDesc {
			a, b = b, a
		}
		switch q.SortColumn {
		case "plate":
			if a.Plate != b.Plate {
				return a.Plate < b.Plate
			}
		case "brand":
			if a.Brand != b.Brand {
				return a.Brand < b.Brand
			}
		case "model":
			if a.Model != b.Model {
				return a.Model < b.Model
			}
		case "created_at":
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	})

	total := int64(len(owned))
	start := q.Offset()
	if start > len(owned) {
		start = len(owned)
	}
	end := start + q.Limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[start:end], total, nil
}

func (s *InMemoryVehicleStore) UpdateOwned(ownerID, id uint, changes map[string]interface{}) (*models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vehicles[id]
	if !ok || v.UserID != ownerID {
		return nil, ErrNotFound
	}

	if plate, ok := changes["plate"].(string); ok {
		for _, other := range s.vehicles {
			if other.ID != id && other.UserID == ownerID && other.Plate == plate {
				return nil, ErrPlateExists
			}
		}
		v.Plate = plate
	}
	if brand, ok := changes["brand"].(string); ok {
		v.Brand = brand
	}
	if model, ok := changes["model"].(string); ok {
		v.Model = model
	}
	if photoURL, ok := changes["photo_url"].(string); ok {
		v.PhotoURL = photoURL
	}
	v.UpdatedAt = time.Now()

	s.vehicles[id] = v
	return &v, nil
}

func (s *InMemoryVehicleStore) DeleteOwned(ownerID, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vehicles[id]
	if !ok || v.UserID != ownerID {
		return ErrNotFound
	}
	delete(s.vehicles, id)
	return nil
}
