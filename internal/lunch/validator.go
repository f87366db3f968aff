// Package lunch holds the combo rules for a submittable lunch order.
//
// A lunch is submittable when it contains at least one of salad, soup
// or main course together with a drink. Dessert never gates validity.
// The rules are evaluated in a fixed sequence; each later rule assumes
// the earlier ones did not match.
package lunch

import (
	"mosfood/internal/model"

	"github.com/rs/zerolog"
)

// Corrective messages shown when a cart is not submittable.
const (
	MsgNothingSelected    = "Nothing selected. Choose dishes for the order"
	MsgChooseMain         = "Choose a main dish"
	MsgChooseSoupOrMain   = "Choose a soup or a main dish"
	MsgChooseMainOrSalad  = "Choose a main dish/salad/starter"
	MsgChooseDrink        = "Choose a drink"
	MsgUnknownCombination = "Choose a valid combination of dishes"
)

// Result is the verdict for a cart. When Valid is false, Message holds
// the corrective text to surface to the customer; submission must not
// proceed.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(message string) Result {
	return Result{Valid: false, Message: message}
}

// Validator decides whether a cart is a submittable lunch.
type Validator struct {
	logger zerolog.Logger
}

// NewValidator creates a combo validator.
func NewValidator(logger zerolog.Logger) *Validator {
	return &Validator{
		logger: logger.With().Str("component", "lunch-validator").Logger(),
	}
}

// Validate applies the combo rules to the cart. It is pure: no I/O, no
// mutation; the caller owns surfacing the message and gating
// submission on the verdict.
func (v *Validator) Validate(cart model.Cart) Result {
	hasSalad := cart.Present(model.CategorySalad)
	hasSoup := cart.Present(model.CategorySoup)
	hasMain := cart.Present(model.CategoryMain)
	hasDrink := cart.Present(model.CategoryDrink)
	hasDessert := cart.Present(model.CategoryDessert)

	v.logger.Debug().
		Bool("salad", hasSalad).
		Bool("soup", hasSoup).
		Bool("main", hasMain).
		Bool("drink", hasDrink).
		Bool("dessert", hasDessert).
		Msg("evaluating cart")

	// Rule 1: nothing at all.
	if !hasSalad && !hasSoup && !hasMain && !hasDrink && !hasDessert {
		return invalid(MsgNothingSelected)
	}

	// Rule 2: only drink and/or dessert.
	if (hasDrink || hasDessert) && !hasSalad && !hasSoup && !hasMain {
		return invalid(MsgChooseMain)
	}

	// Rule 3: salad alone among the substantial courses.
	if hasSalad && !hasSoup && !hasMain {
		return invalid(MsgChooseSoupOrMain)
	}

	// Rule 4: soup alone among the substantial courses.
	if hasSoup && !hasMain && !hasSalad {
		return invalid(MsgChooseMainOrSalad)
	}

	// Rule 5: substantial course chosen but no drink.
	if (hasSalad || hasSoup || hasMain) && !hasDrink {
		return invalid(MsgChooseDrink)
	}

	// Rule 6: substantial course plus drink.
	if (hasSalad || hasSoup || hasMain) && hasDrink {
		return valid()
	}

	// Rules 1-6 are exhaustive over the four gating flags; reaching
	// this point means a gap in the chain above.
	v.logger.Error().Msg("cart fell through the combo rule chain")
	return invalid(MsgUnknownCombination)
}
