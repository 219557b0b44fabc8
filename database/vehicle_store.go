package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/PEREIRAD01/backend-Pitstoppro/models"
	"github.com/PEREIRAD01/backend-Pitstoppro/repositories"
)

// GormVehicleStore is the Postgres-backed VehicleStore. Ownership is
// enforced inside each query: mutations match id and user_id in one
// statement, so there is no separate existence check to race against.
type GormVehicleStore struct {
	db *gorm.DB
}

func NewGormVehicleStore(db *gorm.DB) *GormVehicleStore {
	return &GormVehicleStore{db: db}
}

func (s *GormVehicleStore) Create(vehicle *models.Vehicle) error {
	if err := s.db.Create(vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repositories.ErrPlateExists
		}
		return err
	}
	return nil
}

func (s *GormVehicleStore) ListByOwner(ownerID uint, q repositories.ListQuery) ([]models.Vehicle, int64, error) {
	var total int64
	if err := s.db.Model(&models.Vehicle{}).Where("user_id = ?", ownerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	scope := s.db.Where("user_id = ?", ownerID)
	for _, col := range listOrder(q) {
		scope = scope.Order(col)
	}

	var vehicles []models.Vehicle
	err := scope.
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&vehicles).Error
	if err != nil {
		return nil, 0, err
	}
	return vehicles, total, nil
}

// listOrder returns the ORDER BY terms for a listing. The requested column
// may have ties (brand, model, even created_at), which would leave the row
// order unspecified and let offset pagination repeat or skip rows across
// pages, so the strictly unique id always follows as a tiebreaker. It runs
// in the same direction as the primary term, matching creation order.
func listOrder(q repositories.ListQuery) []clause.OrderByColumn {
	cols := []clause.OrderByColumn{
		{Column: clause.Column{Name: q.SortColumn}, Desc: q.SortDesc},
	}
	if q.SortColumn != "id" {
		cols = append(cols, clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: q.SortDesc})
	}
	return cols
}

func (s *GormVehicleStore) UpdateOwned(ownerID, id uint, changes map[string]interface{}) (*models.Vehicle, error) {
	result := s.db.Model(&models.Vehicle{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(changes)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, repositories.ErrPlateExists
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, repositories.ErrNotFound
	}

	var vehicle models.Vehicle
	if err := s.db.Where("id = ? AND user_id = ?", id, ownerID).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

func (s *GormVehicleStore) DeleteOwned(ownerID, id uint) error {
	result := s.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Vehicle{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
