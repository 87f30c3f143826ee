package domain

import (
	"strings"
	"time"
)

// Supported platforms.
const (
	PlatformMeta   = "meta"
	PlatformTikTok = "tiktok"
	PlatformGoogle = "google"
)

// DefaultDurationDays is used when a campaign carries no usable time range.
const DefaultDurationDays = 30

// CampaignSpec describes a campaign request. It is built once per request
// and never mutated afterwards.
type CampaignSpec struct {
	UserQuery string         `json:"user_query,omitempty"`
	Platform  string         `json:"platform"`
	Budget    float64        `json:"budget"`
	Objective string         `json:"objective"`
	Category  string         `json:"category"`
	TimeRange *TimeRange     `json:"time_range,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// TimeRange holds the campaign flight as ISO-8601 strings.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// timeLayouts are tried in order when parsing time range bounds.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DurationDays returns the number of whole days between start and end,
// floored at one day. Missing or unparsable bounds yield
// DefaultDurationDays.
func (c CampaignSpec) DurationDays() int {
	if c.TimeRange == nil || c.TimeRange.Start == "" || c.TimeRange.End == "" {
		return DefaultDurationDays
	}
	start, ok := parseTimestamp(c.TimeRange.Start)
	if !ok {
		return DefaultDurationDays
	}
	end, ok := parseTimestamp(c.TimeRange.End)
	if !ok {
		return DefaultDurationDays
	}
	return max(1, int(end.Sub(start).Hours()/24))
}

// NormalizedObjective is the objective lowercased for table lookups.
func (c CampaignSpec) NormalizedObjective() string {
	return strings.ToLower(strings.TrimSpace(c.Objective))
}

// MetadataString returns metadata[key] when it holds a non-empty string.
func (c CampaignSpec) MetadataString(key string) (string, bool) {
	if c.Metadata == nil {
		return "", false
	}
	s, ok := c.Metadata[key].(string)
	return s, ok && s != ""
}

// IsSupportedPlatform reports whether p is one of meta, tiktok or google.
func IsSupportedPlatform(p string) bool {
	switch p {
	case PlatformMeta, PlatformTikTok, PlatformGoogle:
		return true
	default:
		return false
	}
}
