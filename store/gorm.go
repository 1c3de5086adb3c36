package store

import (
	"errors"

	"bladecrown-backend/models"

	"gorm.io/gorm"
)

// GormStore is the postgres-backed BookingStore, selected when DB_URL is
// configured. Insertion order is preserved through created_at ordering.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Insert(b *models.Booking) error {
	err := s.db.Create(b).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateID
	}
	return err
}

func (s *GormStore) All() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Order("created_at asc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormStore) FindByID(id string) (*models.Booking, error) {
	var b models.Booking
	if err := s.db.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (s *GormStore) UpdateByID(id string, mutate func(*models.Booking)) (*models.Booking, error) {
	var b models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		mutate(&b)
		return tx.Save(&b).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *GormStore) DeleteByID(id string) error {
	result := s.db.Delete(&models.Booking{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CountByDate(date string) (map[string]int, error) {
	type slotCount struct {
		Time  string
		Count int
	}
	var rows []slotCount
	err := s.db.Model(&models.Booking{}).
		Select("time, count(*) as count").
		Where("date = ?", date).
		Group("time").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Time] = r.Count
	}
	return counts, nil
}
