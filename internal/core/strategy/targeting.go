package strategy

import (
	"ad-strategy/internal/core/domain"
	"strconv"
	"strings"
)

type categoryProfile struct {
	ageMin    int
	ageMax    int
	interests []string
}

var categoryTargeting = map[string]categoryProfile{
	"toys": {
		ageMin:    25,
		ageMax:    45,
		interests: []string{"parenting", "children", "education", "family"},
	},
	"fashion": {
		ageMin:    18,
		ageMax:    55,
		interests: []string{"fashion", "shopping", "style", "clothing"},
	},
	"electronics": {
		ageMin:    25,
		ageMax:    50,
		interests: []string{"technology", "gadgets", "electronics", "innovation"},
	},
	"beauty": {
		ageMin:    18,
		ageMax:    45,
		interests: []string{"beauty", "cosmetics", "skincare", "makeup"},
	},
	"sports": {
		ageMin:    18,
		ageMax:    50,
		interests: []string{"sports", "fitness", "health", "outdoor"},
	},
	"food": {
		ageMin:    25,
		ageMax:    55,
		interests: []string{"food", "cooking", "restaurants", "recipes"},
	},
}

var localeCountries = map[string][]string{
	"zh_CN": {"CN"},
	"en_US": {"US"},
	"en_GB": {"GB"},
	"ja_JP": {"JP"},
	"ko_KR": {"KR"},
}

const (
	budgetPriceCeiling  = 50.0
	premiumPriceFloor   = 200.0
	budgetAgeMaxCap     = 45
	premiumAgeMinCap    = 30
	parentAgeMinOffset  = 10
	parentAgeMaxOffset  = 20
	defaultTargetAgeMin = 25
	defaultTargetAgeMax = 45
)

// BaseTargeting is the starting point of every targeting plan and the
// whole plan for platforms without audience derivation.
func BaseTargeting() domain.Targeting {
	return domain.Targeting{
		AgeMin:    defaultTargetAgeMin,
		AgeMax:    defaultTargetAgeMax,
		Genders:   []int{1, 2},
		Interests: []string{},
		Locations: []string{"US"},
	}
}

// BuildTargeting derives audience targeting by layering, in order, the
// defaults, the category profile, the price tier of the high priority
// products, the locale or country and finally the age hints carried by
// product metadata. The order matters: later layers overwrite earlier ones.
func BuildTargeting(spec domain.CampaignSpec, groups []domain.ProductGroup, _ []domain.Creative) domain.Targeting {
	t := BaseTargeting()

	if profile, ok := categoryTargeting[strings.ToLower(spec.Category)]; ok {
		t.AgeMin = profile.ageMin
		t.AgeMax = profile.ageMax
		t.Interests = append([]string(nil), profile.interests...)
	}

	if avg, ok := averageHighPriorityPrice(groups); ok {
		switch {
		case avg < budgetPriceCeiling:
			t.AgeMin = max(domain.MinTargetAge, t.AgeMin-5)
			t.AgeMax = min(budgetAgeMaxCap, t.AgeMax-5)
		case avg > premiumPriceFloor:
			t.AgeMin = min(premiumAgeMinCap, t.AgeMin+5)
			t.AgeMax = min(domain.MaxTargetAge, t.AgeMax+10)
		}
	}

	if locale, ok := spec.MetadataString("locale"); ok && localeCountries[locale] != nil {
		t.Locations = append([]string(nil), localeCountries[locale]...)
	} else if country, ok := spec.MetadataString("country"); ok {
		t.Locations = []string{country}
	}

	if lo, hi, ok := averageProductAgeRange(groups); ok {
		t.AgeMin = clampAge(int(lo) + parentAgeMinOffset)
		t.AgeMax = clampAge(int(hi) + parentAgeMaxOffset)
	}

	t.AgeMin, t.AgeMax = orderedAgeWindow(t.AgeMin, t.AgeMax)
	return t
}

func averageHighPriorityPrice(groups []domain.ProductGroup) (float64, bool) {
	var (
		sum float64
		n   int
	)
	for _, g := range groups {
		if g.Priority() != domain.PriorityHigh {
			continue
		}
		for _, p := range g.Products {
			sum += p.Price
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// averageProductAgeRange averages every parsable "min-max" age_range hint
// across all products.
func averageProductAgeRange(groups []domain.ProductGroup) (float64, float64, bool) {
	var (
		sumLo, sumHi float64
		n            int
	)
	for _, g := range groups {
		for _, p := range g.Products {
			lo, hi, ok := parseAgeRange(p.Metadata)
			if !ok {
				continue
			}
			sumLo += float64(lo)
			sumHi += float64(hi)
			n++
		}
	}
	if n == 0 {
		return 0, 0, false
	}
	return sumLo / float64(n), sumHi / float64(n), true
}

func parseAgeRange(meta map[string]any) (int, int, bool) {
	raw, ok := meta["age_range"].(string)
	if !ok || !strings.Contains(raw, "-") {
		return 0, 0, false
	}
	parts := strings.Split(raw, "-")
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}

func clampAge(age int) int {
	return min(domain.MaxTargetAge, max(domain.MinTargetAge, age))
}

// orderedAgeWindow keeps 18 <= lo < hi <= 65 whatever the layers produced.
func orderedAgeWindow(lo, hi int) (int, int) {
	lo, hi = clampAge(lo), clampAge(hi)
	if lo < hi {
		return lo, hi
	}
	if hi == domain.MinTargetAge {
		return domain.MinTargetAge, domain.MinTargetAge + 1
	}
	return hi - 1, hi
}
