package checkout_test

import (
	"testing"
	"time"

	"checkout/internal/core/domain/model/checkout"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startedAt = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newSession(t *testing.T) *checkout.Session {
	t.Helper()
	session, err := checkout.NewSession(kernel.NewUUID(), checkout.DefaultPickupPoints, startedAt)
	require.NoError(t, err)
	return session
}

func fill(t *testing.T, session *checkout.Session, draft checkout.OrderDraft) {
	t.Helper()
	for _, field := range checkout.Fields() {
		require.NoError(t, session.UpdateField(field, draft.Value(field)))
	}
}

func TestNewSession(t *testing.T) {
	t.Run("should start empty on billing", func(t *testing.T) {
		session := newSession(t)

		require.NoError(t, session.Validate())
		assert.Equal(t, checkout.Billing, session.Step())
		assert.Equal(t, checkout.OrderDraft{}, session.Draft())
		assert.True(t, session.Errors().IsEmpty())
		assert.False(t, session.PickupSelector().IsOpen())
		assert.Equal(t, 0, session.Version())
		assert.Equal(t, startedAt, session.CreatedAt())
		assert.Equal(t, startedAt, session.UpdatedAt())
		assert.False(t, session.IsFinalized())
	})

	t.Run("should reject a zero id", func(t *testing.T) {
		_, err := checkout.NewSession(kernel.UUID{}, checkout.DefaultPickupPoints, startedAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var session checkout.Session

		require.ErrorIs(t, session.Validate(), checkout.ErrSessionIsNotConstructed)
	})
}

func TestRestoreSession(t *testing.T) {
	t.Run("should round trip a snapshot", func(t *testing.T) {
		session := newSession(t)
		fill(t, session, validDraft())
		session.Advance()
		session.OpenPickupSelector()
		snapshot := session.Snapshot()
		snapshot.Version = 3

		restored, err := checkout.RestoreSession(snapshot, checkout.DefaultPickupPoints)

		require.NoError(t, err)
		assert.Equal(t, snapshot, restored.Snapshot())
		assert.True(t, restored.PickupSelector().IsOpen())
	})

	t.Run("should reject corrupt snapshots", func(t *testing.T) {
		_, err := checkout.RestoreSession(checkout.Snapshot{Step: 9, Version: -1}, checkout.DefaultPickupPoints)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSession_UpdateField(t *testing.T) {
	session := newSession(t)

	require.NoError(t, session.UpdateField(checkout.FieldName, "Kiss Anna"))
	require.NoError(t, session.UpdateField(checkout.FieldShippingMethod, "pickup"))

	assert.Equal(t, "Kiss Anna", session.Draft().Name)
	assert.Equal(t, checkout.Pickup, session.Draft().ShippingMethod)

	err := session.UpdateField(checkout.FieldShippingMethod, "teleport")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, checkout.Pickup, session.Draft().ShippingMethod, "failed edit must not change the draft")
}

func TestSession_AdvanceAndRetreat(t *testing.T) {
	t.Run("should store errors and stay", func(t *testing.T) {
		session := newSession(t)

		fieldErrors := session.Advance()

		assert.Equal(t, checkout.Billing, session.Step())
		assert.Equal(t, fieldErrors, session.Errors())
		assert.Equal(t, checkout.MessageRequired, session.Errors().Email)
	})

	t.Run("should walk to summary and clear errors", func(t *testing.T) {
		session := newSession(t)
		session.Advance()
		fill(t, session, validDraft())

		for range 5 {
			session.Advance()
		}

		assert.Equal(t, checkout.Summary, session.Step())
		assert.True(t, session.Errors().IsEmpty())
	})

	t.Run("retreat keeps errors and clamps", func(t *testing.T) {
		session := newSession(t)
		require.NoError(t, session.UpdateField(checkout.FieldName, "Anna"))
		session.Advance()
		stored := session.Errors()

		session.Retreat()
		session.Retreat()

		assert.Equal(t, checkout.Billing, session.Step())
		assert.Equal(t, stored, session.Errors())
	})
}

func TestSession_PickupSelector(t *testing.T) {
	t.Run("select writes the point and closes", func(t *testing.T) {
		session := newSession(t)
		session.OpenPickupSelector()

		require.NoError(t, session.SelectPickupPoint("Szeged - Árkád"))

		assert.Equal(t, "Szeged - Árkád", session.Draft().PickupPoint)
		assert.False(t, session.PickupSelector().IsOpen())
	})

	t.Run("close keeps the draft", func(t *testing.T) {
		session := newSession(t)
		session.OpenPickupSelector()
		before := session.Draft()

		session.ClosePickupSelector()

		assert.False(t, session.PickupSelector().IsOpen())
		assert.Equal(t, before, session.Draft())
	})

	t.Run("should reject labels outside the catalog", func(t *testing.T) {
		session := newSession(t)
		session.OpenPickupSelector()

		err := session.SelectPickupPoint("Miskolc")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorContains(t, err, checkout.ErrUnknownPickupPoint.Error())
		assert.True(t, session.PickupSelector().IsOpen())
		assert.Empty(t, session.Draft().PickupPoint)
	})

	t.Run("returned selector is a copy", func(t *testing.T) {
		session := newSession(t)

		selector := session.PickupSelector()
		selector.Open()

		assert.False(t, session.PickupSelector().IsOpen())
	})
}

func TestSession_Finalize(t *testing.T) {
	finalizedAt := startedAt.Add(10 * time.Minute)

	t.Run("should require the summary step", func(t *testing.T) {
		session := newSession(t)
		fill(t, session, validDraft())

		_, err := session.Finalize(finalizedAt)

		require.ErrorIs(t, err, checkout.ErrNotOnSummaryStep)
		assert.False(t, session.IsFinalized())
	})

	t.Run("should produce the order once", func(t *testing.T) {
		session := newSession(t)
		fill(t, session, validDraft())
		for range 3 {
			session.Advance()
		}

		order, err := session.Finalize(finalizedAt)

		require.NoError(t, err)
		assert.Equal(t, session.ID(), order.ID)
		assert.Equal(t, validDraft(), order.Draft)
		assert.Equal(t, finalizedAt, order.FinalizedAt)
		assert.Equal(t, checkout.Summary, session.Step())
		assert.True(t, session.IsFinalized())

		_, err = session.Finalize(finalizedAt)
		require.ErrorIs(t, err, checkout.ErrAlreadyFinalized)
		require.ErrorIs(t, session.UpdateField(checkout.FieldName, "x"), checkout.ErrAlreadyFinalized)
	})

	t.Run("should block on a draft edited after advancing", func(t *testing.T) {
		session := newSession(t)
		fill(t, session, validDraft())
		for range 3 {
			session.Advance()
		}
		require.NoError(t, session.UpdateField(checkout.FieldPaymentMethod, ""))

		_, err := session.Finalize(finalizedAt)

		var validationErr *checkout.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, checkout.Payment, validationErr.Step)
		assert.Equal(t, checkout.MessageRequired, session.Errors().PaymentMethod)
		assert.Equal(t, checkout.Summary, session.Step())
		assert.False(t, session.IsFinalized())
	})
}
