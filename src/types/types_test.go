package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRentalStatusTransitions(t *testing.T) {
	assert.True(t, RENTAL_PENDING.CanTransition(RENTAL_ONGOING))
	assert.True(t, RENTAL_PENDING.CanTransition(RENTAL_COMPLETED))
	assert.True(t, RENTAL_PENDING.CanTransition(RENTAL_CANCELLED))
	assert.True(t, RENTAL_ONGOING.CanTransition(RENTAL_COMPLETED))
	assert.True(t, RENTAL_ONGOING.CanTransition(RENTAL_CANCELLED))

	assert.False(t, RENTAL_COMPLETED.CanTransition(RENTAL_ONGOING))
	assert.False(t, RENTAL_COMPLETED.CanTransition(RENTAL_CANCELLED))
	assert.False(t, RENTAL_CANCELLED.CanTransition(RENTAL_ONGOING))
	assert.False(t, RENTAL_CANCELLED.CanTransition(RENTAL_COMPLETED))
	assert.False(t, RENTAL_ONGOING.CanTransition(RENTAL_PENDING))
}

func TestRentalStatusSelfTransition(t *testing.T) {
	for _, status := range []RentalStatus{RENTAL_PENDING, RENTAL_ONGOING, RENTAL_COMPLETED, RENTAL_CANCELLED} {
		assert.True(t, status.CanTransition(status))
	}
}

func TestRentalStatusUnknown(t *testing.T) {
	assert.False(t, RentalStatus("Archived").Valid())
	assert.False(t, RentalStatus("Archived").CanTransition(RENTAL_ONGOING))
	assert.False(t, RENTAL_PENDING.CanTransition(RentalStatus("Archived")))
}

func TestAvailabilityStatusValid(t *testing.T) {
	assert.True(t, VEHICLE_AVAILABLE.Valid())
	assert.True(t, VEHICLE_RENTED.Valid())
	assert.True(t, VEHICLE_MAINTENANCE.Valid())
	assert.False(t, AvailabilityStatus("Broken").Valid())
}

func TestPaymentEnumsValid(t *testing.T) {
	assert.True(t, PAYMENT_PAID.Valid())
	assert.True(t, PAYMENT_PENDING.Valid())
	assert.True(t, PAYMENT_FAILED.Valid())
	assert.False(t, PaymentStatus("Refunded").Valid())

	assert.True(t, PAYMENT_CASH.Valid())
	assert.True(t, PAYMENT_CARD.Valid())
	assert.True(t, PAYMENT_ONLINE.Valid())
	assert.False(t, PaymentMethod("Cheque").Valid())
}
