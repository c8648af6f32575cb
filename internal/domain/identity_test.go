package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/royalrinse/booking-service/pkg/ptr"
)

func TestActor_CanAccessBookingsOf(t *testing.T) {
	admin := Actor{IsAdmin: true, UserID: 1}
	customer := Actor{UserID: 42}

	assert.True(t, admin.CanAccessBookingsOf(ptr.Ptr(int64(7))))
	assert.True(t, admin.CanAccessBookingsOf(nil))

	assert.True(t, customer.CanAccessBookingsOf(ptr.Ptr(int64(42))))
	assert.False(t, customer.CanAccessBookingsOf(ptr.Ptr(int64(7))))
	assert.False(t, customer.CanAccessBookingsOf(nil))
}
