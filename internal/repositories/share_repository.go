package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"voyagemind/internal/models/db_models"
	mem "voyagemind/pkg/memcache"
	"voyagemind/pkg/utils"
)

// ShareRepository is the Postgres-backed ShareStore. Same lazy-expiry
// contract as the in-memory store: an expired row is deleted on read.
type ShareRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewShareRepository(db *gorm.DB) (*ShareRepository, error) {
	if err := db.AutoMigrate(&db_models.SharedItinerary{}); err != nil {
		return nil, err
	}
	return &ShareRepository{db: db, now: time.Now}, nil
}

func (r *ShareRepository) Put(id string, record mem.ShareRecord, ttl time.Duration) error {
	createdAt := r.now()
	row := db_models.SharedItinerary{
		ID:          id,
		Payload:     record.Itinerary,
		Destination: record.Destination,
		Dates:       record.Dates,
		Budget:      record.Budget,
		CreatedAt:   createdAt,
		ExpiresAt:   createdAt.Add(ttl),
	}

	if err := r.db.Create(&row).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *ShareRepository) Get(id string) (mem.ShareRecord, error) {
	var row db_models.SharedItinerary
	err := r.db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return mem.ShareRecord{}, utils.ErrShareNotFound
	}
	if err != nil {
		return mem.ShareRecord{}, utils.ErrDatabaseError
	}

	if r.now().After(row.ExpiresAt) {
		r.db.Delete(&db_models.SharedItinerary{}, "id = ?", id)
		return mem.ShareRecord{}, utils.ErrShareExpired
	}

	return mem.ShareRecord{
		Itinerary:   row.Payload,
		Destination: row.Destination,
		Dates:       row.Dates,
		Budget:      row.Budget,
		CreatedAt:   row.CreatedAt,
		ExpiresAt:   row.ExpiresAt,
	}, nil
}
