// Package sessionrepo persists checkout sessions in PostgreSQL through GORM.
// It maps the Session aggregate to one row of the checkout_sessions table
// and back.
package sessionrepo

import (
	"time"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SessionDTO is one row of checkout_sessions. Field errors are stored as a
// JSON object holding only the invalid fields. Version is the optimistic
// concurrency token compared on every update.
type SessionDTO struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Draft              DraftDTO          `gorm:"embedded;embeddedPrefix:draft_"`
	Step               int               `gorm:"type:smallint;not null"`
	Errors             map[string]string `gorm:"type:jsonb;serializer:json"`
	PickupSelectorOpen bool              `gorm:"not null"`
	Version            int               `gorm:"not null"`
	CreatedAt          time.Time         `gorm:"autoCreateTime:false"`
	UpdatedAt          time.Time         `gorm:"autoUpdateTime:false;index"`
}

// TableName overrides GORM's default naming convention.
func (SessionDTO) TableName() string {
	return "checkout_sessions"
}

// DraftDTO holds the order draft columns embedded in the session row.
type DraftDTO struct {
	Name           string
	Email          string
	Address        string
	ShippingMethod string `gorm:"type:varchar(32)"`
	PickupPoint    string
	PaymentMethod  string `gorm:"type:varchar(32)"`
}

func fromDomain(snapshot checkout.Snapshot) SessionDTO {
	return SessionDTO{
		ID: snapshot.ID.Bytes(),
		Draft: DraftDTO{
			Name:           snapshot.Draft.Name,
			Email:          snapshot.Draft.Email,
			Address:        snapshot.Draft.Address,
			ShippingMethod: string(snapshot.Draft.ShippingMethod),
			PickupPoint:    snapshot.Draft.PickupPoint,
			PaymentMethod:  string(snapshot.Draft.PaymentMethod),
		},
		Step:               int(snapshot.Step),
		Errors:             snapshot.Errors.AsMap(),
		PickupSelectorOpen: snapshot.PickupSelectorOpen,
		Version:            snapshot.Version,
		CreatedAt:          snapshot.CreatedAt,
		UpdatedAt:          snapshot.UpdatedAt,
	}
}

// toSnapshot validates every stored enum so that corrupt rows surface as
// errors instead of impossible sessions.
func toSnapshot(dto SessionDTO) (checkout.Snapshot, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return checkout.Snapshot{}, err
	}

	step, err := checkout.StepFromInt(dto.Step)
	if err != nil {
		return checkout.Snapshot{}, err
	}

	shippingMethod, err := checkout.ParseShippingMethod(dto.Draft.ShippingMethod)
	if err != nil {
		return checkout.Snapshot{}, err
	}

	paymentMethod, err := checkout.ParsePaymentMethod(dto.Draft.PaymentMethod)
	if err != nil {
		return checkout.Snapshot{}, err
	}

	fieldErrors, err := checkout.FieldErrorsFromMap(dto.Errors)
	if err != nil {
		return checkout.Snapshot{}, err
	}

	return checkout.Snapshot{
		ID: id,
		Draft: checkout.OrderDraft{
			Name:           dto.Draft.Name,
			Email:          dto.Draft.Email,
			Address:        dto.Draft.Address,
			ShippingMethod: shippingMethod,
			PickupPoint:    dto.Draft.PickupPoint,
			PaymentMethod:  paymentMethod,
		},
		Step:               step,
		Errors:             fieldErrors,
		PickupSelectorOpen: dto.PickupSelectorOpen,
		Version:            dto.Version,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	}, nil
}
