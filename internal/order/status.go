package order

import (
	"time"

	"mosfood/internal/model"
)

// DeriveStatus infers the lifecycle state of an order from its age.
// The upstream API exposes no status field, so this staleness clock
// stands in for one: under half an hour the order is pending, under an
// hour it is being prepared, under two it is out for delivery, and
// anything older counts as delivered. The thresholds and their
// ordering are contractual; a boundary value belongs to the next tier.
func DeriveStatus(createdAt, now time.Time) model.Status {
	hours := now.Sub(createdAt).Hours()

	switch {
	case hours < 0.5:
		return model.StatusPending
	case hours < 1:
		return model.StatusProcessing
	case hours < 2:
		return model.StatusDelivering
	default:
		return model.StatusDelivered
	}
}
