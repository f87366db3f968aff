package model

import "time"

// Delivery mode values as the upstream API spells them. The API uses
// "by_time" for scheduled delivery.
const (
	DeliveryNow       = "now"
	DeliveryScheduled = "by_time"
)

// OrderDraft is a submission attempt: the cart at the moment the user
// pressed "order" plus the contact and delivery form fields. Legacy
// field names are accepted alongside the canonical ones because older
// storefront forms still post them; the canonical field wins when both
// are set.
type OrderDraft struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	DeliveryAddress string `json:"delivery_address"`
	DeliveryType    string `json:"delivery_type"`
	DeliveryTime    string `json:"delivery_time,omitempty"`
	Comment         string `json:"comment"`
	Subscribe       bool   `json:"subscribe"`
	Cart            Cart   `json:"cart"`

	// Legacy aliases.
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	Comments      string `json:"comments,omitempty"`
}

// OrderUpdate carries the editable subset of an existing order. The
// customer's name is deliberately absent: edits never change it.
type OrderUpdate struct {
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	DeliveryAddress string `json:"delivery_address"`
	DeliveryType    string `json:"delivery_type"`
	DeliveryTime    string `json:"delivery_time,omitempty"`
	Comment         string `json:"comment"`
}

// OrderRecord is the wire format the upstream order API speaks.
// The five dish ids are pointers so an unfilled slot serialises as an
// explicit null rather than 0 or a missing field.
type OrderRecord struct {
	ID              int       `json:"id,omitzero"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	DeliveryAddress string    `json:"delivery_address"`
	DeliveryType    string    `json:"delivery_type"`
	DeliveryTime    string    `json:"delivery_time,omitempty"`
	Comment         string    `json:"comment"`
	SaladID         *int      `json:"salad_id"`
	SoupID          *int      `json:"soup_id"`
	MainCourseID    *int      `json:"main_course_id"`
	DrinkID         *int      `json:"drink_id"`
	DessertID       *int      `json:"dessert_id"`
	Subscribe       int       `json:"subscribe"`
	StudentID       int       `json:"student_id,omitzero"`
	CreatedAt       time.Time `json:"created_at,omitzero"`
	UpdatedAt       time.Time `json:"updated_at,omitzero"`
}

// DishIDs returns the dish id for each lunch category.
func (r OrderRecord) DishIDs() map[Category]*int {
	return map[Category]*int{
		CategorySalad:   r.SaladID,
		CategorySoup:    r.SoupID,
		CategoryMain:    r.MainCourseID,
		CategoryDrink:   r.DrinkID,
		CategoryDessert: r.DessertID,
	}
}

// DisplayOrder is the storefront-facing projection of an OrderRecord.
// It is derived, never stored, and is rebuilt every time the record is
// loaded.
type DisplayOrder struct {
	ID                int       `json:"id"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	DeliveryAddress   string    `json:"delivery_address"`
	DeliveryType      string    `json:"delivery_type"`
	DeliveryTime      string    `json:"delivery_time,omitempty"`
	DeliveryTimeLabel string    `json:"delivery_time_label"`
	Comment           string    `json:"comment"`
	Subscribe         bool      `json:"subscribe"`
	Status            Status    `json:"status"`
	StatusLabel       string    `json:"status_label"`
	PaymentMethod     string    `json:"payment_method"`
	Dishes            []string  `json:"dishes"`
	Subtotal          int       `json:"subtotal"`
	DeliveryFee       int       `json:"delivery_fee"`
	Total             int       `json:"total"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
