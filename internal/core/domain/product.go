package domain

import "strings"

// Priority tiers produced by the upstream product grouping service.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Product is a catalogue entry. Metadata may carry an "age_range" hint
// formatted as "min-max".
type Product struct {
	ProductID   string         `json:"product_id"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Price       float64        `json:"price"`
	Category    string         `json:"category,omitempty"`
	ImageURL    string         `json:"image_url,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// ProductGroup is a named priority tier holding its products.
type ProductGroup struct {
	Group    string    `json:"group"`
	Products []Product `json:"products"`
}

// Priority returns the lowercased tier name.
func (g ProductGroup) Priority() string {
	return strings.ToLower(g.Group)
}
