// Package order converts between the storefront's order shapes and the
// upstream wire format, and derives the display status for historical
// orders.
package order

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"mosfood/internal/model"
)

// AsSoonAsPossible is the delivery-time label for immediate delivery
// and the fallback for malformed time codes.
const AsSoonAsPossible = "as soon as possible"

// PaymentMethodLabel is the only payment method the storefront
// supports at this stage.
const PaymentMethodLabel = "Card online"

var deliveryTimeCode = regexp.MustCompile(`^\d{4}$`)

// ToWireFormat builds the upstream payload for a draft. Contact fields
// fall back to their legacy aliases, dish slots become explicit null
// ids when unfilled, and delivery_time is populated only for scheduled
// delivery and only when it normalises to a 4-digit code. A malformed
// time is dropped rather than rejected; that leniency is part of the
// boundary's contract.
func ToWireFormat(draft model.OrderDraft) model.OrderRecord {
	rec := model.OrderRecord{
		FullName:        firstNonEmpty(draft.FullName, draft.CustomerName),
		Email:           firstNonEmpty(draft.Email, draft.CustomerEmail),
		Phone:           firstNonEmpty(draft.Phone, draft.CustomerPhone),
		DeliveryAddress: draft.DeliveryAddress,
		DeliveryType:    firstNonEmpty(draft.DeliveryType, model.DeliveryNow),
		Comment:         firstNonEmpty(draft.Comment, draft.Comments),
		SaladID:         dishID(draft.Cart.Salad),
		SoupID:          dishID(draft.Cart.Soup),
		MainCourseID:    dishID(draft.Cart.Main),
		DrinkID:         dishID(draft.Cart.Drink),
		DessertID:       dishID(draft.Cart.Dessert),
		Subscribe:       boolToInt(draft.Subscribe),
	}

	if rec.DeliveryType == model.DeliveryScheduled {
		if code, ok := NormalizeDeliveryTime(draft.DeliveryTime); ok {
			rec.DeliveryTime = code
		}
	}

	return rec
}

// MergeUpdate applies the editable fields of an update onto an
// existing record. The customer's name and the dish selections carry
// over untouched.
func MergeUpdate(existing model.OrderRecord, upd model.OrderUpdate) model.OrderRecord {
	rec := existing
	rec.Email = upd.Email
	rec.Phone = upd.Phone
	rec.DeliveryAddress = upd.DeliveryAddress
	rec.Comment = upd.Comment
	rec.DeliveryType = firstNonEmpty(upd.DeliveryType, model.DeliveryNow)

	rec.DeliveryTime = ""
	if rec.DeliveryType == model.DeliveryScheduled {
		if code, ok := NormalizeDeliveryTime(upd.DeliveryTime); ok {
			rec.DeliveryTime = code
		}
	}

	return rec
}

// NormalizeDeliveryTime turns "HH:MM" or a raw 4-digit code into the
// wire code. The second return is false when the input does not
// normalise to exactly four digits.
func NormalizeDeliveryTime(raw string) (string, bool) {
	code := strings.TrimSpace(raw)
	if parts := strings.SplitN(code, ":", 2); len(parts) == 2 {
		code = parts[0] + parts[1]
	}
	if !deliveryTimeCode.MatchString(code) {
		return "", false
	}
	return code, true
}

// FormatDeliveryTime renders the wire code for display. Immediate
// delivery, and any code that is not exactly four characters, renders
// as the as-soon-as-possible label.
func FormatDeliveryTime(code, deliveryType string) string {
	if deliveryType == model.DeliveryNow {
		return AsSoonAsPossible
	}
	if len(code) == 4 {
		return code[:2] + ":" + code[2:]
	}
	return AsSoonAsPossible
}

// FromWireFormat projects an upstream record into its display shape.
// Dish names and prices come from the catalogue; a dish id the
// catalogue no longer knows contributes nothing. The status is derived
// from the record's age at the given instant.
func FromWireFormat(rec model.OrderRecord, catalogue map[int]model.Dish, now time.Time, deliveryFee int) model.DisplayOrder {
	status := DeriveStatus(rec.CreatedAt, now)

	display := model.DisplayOrder{
		ID:                rec.ID,
		FullName:          rec.FullName,
		Email:             rec.Email,
		Phone:             rec.Phone,
		DeliveryAddress:   rec.DeliveryAddress,
		DeliveryType:      rec.DeliveryType,
		DeliveryTime:      rec.DeliveryTime,
		DeliveryTimeLabel: FormatDeliveryTime(rec.DeliveryTime, rec.DeliveryType),
		Comment:           rec.Comment,
		Subscribe:         rec.Subscribe != 0,
		Status:            status,
		StatusLabel:       status.Label(),
		PaymentMethod:     PaymentMethodLabel,
		Dishes:            []string{},
		DeliveryFee:       deliveryFee,
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
	}

	ids := rec.DishIDs()
	for _, cat := range model.Categories {
		id := ids[cat]
		if id == nil {
			continue
		}
		dish, ok := catalogue[*id]
		if !ok {
			continue
		}
		display.Dishes = append(display.Dishes, dish.Name)
		display.Subtotal += dish.Price
	}
	display.Total = display.Subtotal + display.DeliveryFee

	return display
}

// BuildCatalogue indexes dishes by id for display lookups.
func BuildCatalogue(dishes []model.Dish) map[int]model.Dish {
	catalogue := make(map[int]model.Dish, len(dishes))
	for _, dish := range dishes {
		catalogue[dish.ID] = dish
	}
	return catalogue
}

// GroupMenu buckets the catalogue into the five lunch categories,
// each sorted alphabetically. Dishes with an unknown category are
// dropped.
func GroupMenu(dishes []model.Dish) model.Menu {
	var menu model.Menu
	for _, dish := range dishes {
		switch model.Category(dish.Category) {
		case model.CategorySalad:
			menu.Salads = append(menu.Salads, dish)
		case model.CategorySoup:
			menu.Soups = append(menu.Soups, dish)
		case model.CategoryMain:
			menu.Mains = append(menu.Mains, dish)
		case model.CategoryDrink:
			menu.Drinks = append(menu.Drinks, dish)
		case model.CategoryDessert:
			menu.Desserts = append(menu.Desserts, dish)
		}
	}
	for _, group := range [][]model.Dish{menu.Salads, menu.Soups, menu.Mains, menu.Drinks, menu.Desserts} {
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
	}
	return menu
}

// dishID parses the selection's upstream id. An unfilled slot, a
// non-numeric id or a zero id maps to nil, which serialises as an
// explicit null. Catalogue ids start at 1; zero is never a real dish.
func dishID(sel model.DishSelection) *int {
	if !sel.Present() {
		return nil
	}
	id, err := strconv.Atoi(strings.TrimSpace(sel.DishID))
	if err != nil || id == 0 {
		return nil
	}
	return &id
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
