package db_models

import "time"

// SharedItinerary persists a share link when Postgres is configured.
type SharedItinerary struct {
	ID          string `gorm:"primaryKey;size:32"`
	Payload     []byte `gorm:"type:jsonb"`
	Destination string
	Dates       string
	Budget      []byte `gorm:"type:jsonb"`
	CreatedAt   time.Time
	ExpiresAt   time.Time `gorm:"index"`
}
