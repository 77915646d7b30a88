package catalog

// Rating represents the aggregate rating of a product
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product represents a product in the upstream catalog
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// ListOptions controls product listing requests
type ListOptions struct {
	// Limit caps the number of returned products; 0 means no limit
	Limit int

	// Sort orders results by id, "asc" or "desc"
	Sort string
}
