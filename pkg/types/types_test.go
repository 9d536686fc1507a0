package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestLeaseExpiry tests the expiry boundary
func TestLeaseExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	lease := Lease{AcquiredAt: now, ExpiresAt: now.Add(2 * time.Hour)}

	assert.False(t, lease.IsExpired(now))
	assert.True(t, lease.IsExpired(now.Add(2*time.Hour)))
	assert.Equal(t, 30*time.Minute, lease.Remaining(now.Add(90*time.Minute)))
	assert.Zero(t, lease.Remaining(now.Add(3*time.Hour)))
}

// TestAmountString tests two decimal rendering
func TestAmountString(t *testing.T) {
	assert.Equal(t, "250.00", Rupees(250).String())
	assert.Equal(t, "0.05", Amount(5).String())
	assert.Equal(t, "-1.50", Amount(-150).String())
}

// TestNewOrderFromCart tests order totals built from the cart
func TestNewOrderFromCart(t *testing.T) {
	a := MenuItem{ID: "a", Name: "Item-A", Price: Rupees(100)}
	b := MenuItem{ID: "b", Name: "Item-B", Price: Rupees(50)}

	order := NewOrderFromCart("r1", "7", []CartLine{{Item: a, Quantity: 2}, {Item: b, Quantity: 1}})

	assert.Equal(t, Rupees(250), order.TotalAmount)
	assert.Equal(t, "Order from Table 7", order.Notes)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, Rupees(200), order.Items[0].TotalPrice)
}

// TestEventState tests the lock state carried by events
func TestEventState(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	acquired := LockEvent{Type: EventLeaseAcquired, Holder: "Alice", ExpiresAt: exp}
	assert.Equal(t, LockState{Locked: true, Holder: "Alice", ExpiresAt: exp}, acquired.State())

	released := LockEvent{Type: EventLeaseReleased, Holder: "Alice"}
	assert.False(t, released.State().Locked)
	assert.Equal(t, "released", released.Type.String())
}

// TestOrderStatusValid tests status validation
func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderServed.Valid())
	assert.False(t, OrderStatus("eaten").Valid())
}
