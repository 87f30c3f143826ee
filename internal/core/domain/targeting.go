package domain

// Age window limits accepted by ad platforms.
const (
	MinTargetAge = 18
	MaxTargetAge = 65
)

// Targeting describes who should see a campaign.
type Targeting struct {
	AgeMin    int      `json:"age_min"`
	AgeMax    int      `json:"age_max"`
	Genders   []int    `json:"genders,omitempty"`
	Interests []string `json:"interests"`
	Locations []string `json:"locations"`
}

// AgeSpan is the width of the age window.
func (t Targeting) AgeSpan() int {
	return t.AgeMax - t.AgeMin
}
