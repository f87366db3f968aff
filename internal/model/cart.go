package model

import "strings"

// Category identifies one of the five lunch slots.
type Category string

const (
	CategorySalad   Category = "salad"
	CategorySoup    Category = "soup"
	CategoryMain    Category = "main"
	CategoryDrink   Category = "drink"
	CategoryDessert Category = "dessert"
)

// Categories lists all lunch slots in display order.
var Categories = []Category{
	CategorySalad,
	CategorySoup,
	CategoryMain,
	CategoryDrink,
	CategoryDessert,
}

// DishSelection is the dish chosen for a single category.
// An empty (all zero) selection means the slot is unfilled.
type DishSelection struct {
	DishID string `json:"dishId,omitempty"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Weight string `json:"weight,omitempty"`
}

// Present reports whether the selection actually holds a dish.
// Whitespace-only names do not count.
func (s DishSelection) Present() bool {
	return strings.TrimSpace(s.Name) != ""
}

// Cart is the in-progress lunch: one selection per category.
// Cart is a value type; Select and Clear return a new Cart rather
// than mutating in place, so a Cart handed to a caller never changes
// underneath it.
type Cart struct {
	Salad   DishSelection `json:"salad"`
	Soup    DishSelection `json:"soup"`
	Main    DishSelection `json:"main"`
	Drink   DishSelection `json:"drink"`
	Dessert DishSelection `json:"dessert"`
}

// NewCart returns an empty cart with all five slots unfilled.
func NewCart() Cart {
	return Cart{}
}

// Selection returns the selection for the given category.
func (c Cart) Selection(cat Category) DishSelection {
	switch cat {
	case CategorySalad:
		return c.Salad
	case CategorySoup:
		return c.Soup
	case CategoryMain:
		return c.Main
	case CategoryDrink:
		return c.Drink
	case CategoryDessert:
		return c.Dessert
	}
	return DishSelection{}
}

// Select returns a copy of the cart with the given category replaced.
// Unknown categories leave the cart unchanged.
func (c Cart) Select(cat Category, sel DishSelection) Cart {
	switch cat {
	case CategorySalad:
		c.Salad = sel
	case CategorySoup:
		c.Soup = sel
	case CategoryMain:
		c.Main = sel
	case CategoryDrink:
		c.Drink = sel
	case CategoryDessert:
		c.Dessert = sel
	}
	return c
}

// Clear returns a copy of the cart with the given category emptied.
func (c Cart) Clear(cat Category) Cart {
	return c.Select(cat, DishSelection{})
}

// Present reports whether the given category holds a dish.
func (c Cart) Present(cat Category) bool {
	return c.Selection(cat).Present()
}

// Empty reports whether no category holds a dish.
func (c Cart) Empty() bool {
	for _, cat := range Categories {
		if c.Present(cat) {
			return false
		}
	}
	return true
}

// Total sums the prices of all present selections.
func (c Cart) Total() int {
	total := 0
	for _, cat := range Categories {
		if sel := c.Selection(cat); sel.Present() {
			total += sel.Price
		}
	}
	return total
}
