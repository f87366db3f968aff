package model

// Dish is a catalogue entry from the upstream menu.
type Dish struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
	Weight      string `json:"weight"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Tags        string `json:"tags,omitempty"`
}

// Menu is the dish catalogue grouped by lunch category.
type Menu struct {
	Salads   []Dish `json:"salad"`
	Soups    []Dish `json:"soup"`
	Mains    []Dish `json:"main"`
	Drinks   []Dish `json:"drink"`
	Desserts []Dish `json:"dessert"`
}
