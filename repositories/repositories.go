// Package repositories defines the persistence contracts the pipelines
// depend on, plus in-memory implementations used as test doubles. The
// production GORM implementations live in the database package.
package repositories

import (
	"errors"

	"github.com/PEREIRAD01/backend-Pitstoppro/models"
)

var (
	// ErrNotFound is returned when no row matches. Ownership-gated
	// operations return it both for missing rows and rows owned by
	// someone else.
	ErrNotFound = errors.New("record not found")

	// ErrEmailExists signals the users.email unique constraint.
	ErrEmailExists = errors.New("email already exists")

	// ErrPlateExists signals the (user_id, plate) unique constraint.
	ErrPlateExists = errors.New("plate already exists for this user")
)

// ListQuery carries validated pagination and sorting. SortColumn is always
// one of the whitelisted column names; raw request input never reaches it.
type ListQuery struct {
	Page       int
	Limit      int
	SortColumn string
	SortDesc   bool
}

// Offset returns the number of rows to skip.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// UserStore persists user accounts.
type UserStore interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
}

// VehicleStore persists vehicles. Every read and write is scoped to an
// owner; mutations match id and owner in a single operation so a foreign
// row can never be touched or observed.
type VehicleStore interface {
	Create(vehicle *models.Vehicle) error
	ListByOwner(ownerID uint, q ListQuery) ([]models.Vehicle, int64, error)
	UpdateOwned(ownerID, id uint, changes map[string]interface{}) (*models.Vehicle, error)
	DeleteOwned(ownerID, id uint) error
}
