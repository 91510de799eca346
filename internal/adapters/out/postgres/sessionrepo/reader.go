package sessionrepo

import (
	"context"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormSessionReader implements ports.SessionReader on the main connection.
type GormSessionReader struct {
	db *gorm.DB
}

func NewGormSessionReader(db *gorm.DB) *GormSessionReader {
	return &GormSessionReader{db: db}
}

// GetSnapshot returns the stored state of one session.
func (r *GormSessionReader) GetSnapshot(ctx context.Context, id kernel.UUID) (checkout.Snapshot, error) {
	return getSnapshot(ctx, r.db, id)
}
