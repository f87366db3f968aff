package model

// Status is the coarse lifecycle state shown for an order. The
// upstream API carries no status field, so statuses are derived from
// the order's age (see internal/order). Cancelled is reserved for a
// future upstream that can actually report it.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDelivering Status = "delivering"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var statusLabels = map[Status]string{
	StatusPending:    "Awaiting confirmation",
	StatusProcessing: "Being prepared",
	StatusDelivering: "Out for delivery",
	StatusDelivered:  "Delivered",
	StatusCancelled:  "Cancelled",
}

// Label returns the customer-facing text for the status. Unknown
// statuses render as "Unknown" rather than failing.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return "Unknown"
}
