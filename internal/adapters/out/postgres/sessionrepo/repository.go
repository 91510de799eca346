package sessionrepo

import (
	"context"
	"errors"
	"slices"
	"time"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSessionRepository implements ports.SessionRepository using GORM.
type GormSessionRepository struct {
	db           *gorm.DB
	pickupPoints []string
}

// NewGormSessionRepository creates a repository on db, which may be a
// transaction. Sessions are restored with the given pickup-point catalog.
func NewGormSessionRepository(db *gorm.DB, pickupPoints []string) *GormSessionRepository {
	return &GormSessionRepository{
		db:           db,
		pickupPoints: slices.Clone(pickupPoints),
	}
}

// Add saves a new session.
func (r *GormSessionRepository) Add(ctx context.Context, session *checkout.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	dto := fromDomain(session.Snapshot())
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update overwrites the stored row when its version still matches the
// version the session was loaded with, and bumps the stored version.
func (r *GormSessionRepository) Update(ctx context.Context, session *checkout.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	dto := fromDomain(session.Snapshot())
	dto.Version = session.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&SessionDTO{}).
		Where("id = ? AND version = ?", dto.ID, session.Version()).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, session.ID())
	}

	return nil
}

// Get retrieves a session by ID.
func (r *GormSessionRepository) Get(ctx context.Context, id kernel.UUID) (*checkout.Session, error) {
	snapshot, err := getSnapshot(ctx, r.db, id)
	if err != nil {
		return nil, err
	}

	return checkout.RestoreSession(snapshot, r.pickupPoints)
}

// Delete removes a session if its version is unchanged. The deleted row
// stays locked until the surrounding transaction ends.
func (r *GormSessionRepository) Delete(ctx context.Context, session *checkout.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", session.ID().Bytes(), session.Version()).
		Delete(&SessionDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, session.ID())
	}

	return nil
}

// DeleteIdleSince removes sessions whose last update is older than cutoff.
func (r *GormSessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("updated_at < ?", cutoff).Delete(&SessionDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *GormSessionRepository) missingOrStale(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&SessionDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("checkoutID", id.String())
	}

	return errs.NewVersionIsInvalidError("checkoutID")
}

func getSnapshot(ctx context.Context, db *gorm.DB, id kernel.UUID) (checkout.Snapshot, error) {
	if err := id.Validate(); err != nil {
		return checkout.Snapshot{}, err
	}

	var dto SessionDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return checkout.Snapshot{}, errs.NewObjectNotFoundError("checkoutID", id.String())
		}
		return checkout.Snapshot{}, err
	}

	return toSnapshot(dto)
}
