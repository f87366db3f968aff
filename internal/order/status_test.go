package order

import (
	"testing"
	"time"

	"mosfood/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2025, 11, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    model.Status
	}{
		{"Fresh order", 15 * time.Minute, model.StatusPending},
		{"Just created", 0, model.StatusPending},
		{"45 minutes old", 45 * time.Minute, model.StatusProcessing},
		{"90 minutes old", 90 * time.Minute, model.StatusDelivering},
		{"Five hours old", 5 * time.Hour, model.StatusDelivered},
		{"Half hour boundary promotes", 30 * time.Minute, model.StatusProcessing},
		{"One hour boundary promotes", time.Hour, model.StatusDelivering},
		{"Two hour boundary promotes", 2 * time.Hour, model.StatusDelivered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(now.Add(-tt.elapsed), now)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A clock skew that puts created_at in the future must still yield a
// sane state, not an error.
func TestDeriveStatus_FutureCreatedAt(t *testing.T) {
	now := time.Now()
	assert.Equal(t, model.StatusPending, DeriveStatus(now.Add(10*time.Minute), now))
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Awaiting confirmation", model.StatusPending.Label())
	assert.Equal(t, "Being prepared", model.StatusProcessing.Label())
	assert.Equal(t, "Out for delivery", model.StatusDelivering.Label())
	assert.Equal(t, "Delivered", model.StatusDelivered.Label())
	assert.Equal(t, "Cancelled", model.StatusCancelled.Label())
	assert.Equal(t, "Unknown", model.Status("exploded").Label())
}
