package domain

// Creative is one generated ad variant for a product.
type Creative struct {
	CreativeID   string         `json:"creative_id"`
	ProductID    string         `json:"product_id"`
	Platform     string         `json:"platform,omitempty"`
	VariantID    string         `json:"variant_id"`
	PrimaryText  string         `json:"primary_text,omitempty"`
	Headline     string         `json:"headline,omitempty"`
	ImageURL     string         `json:"image_url,omitempty"`
	StyleProfile map[string]any `json:"style_profile,omitempty"`
}

// StyleScore returns style_profile["score"] when it is numeric.
func (c Creative) StyleScore() (float64, bool) {
	if c.StyleProfile == nil {
		return 0, false
	}
	switch v := c.StyleProfile["score"].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
