// Package countries holds the read-only catalog of per-country
// climate-vulnerability records shown on the country page and the map.
package countries

// Country is a climate-vulnerability profile. Every field is optional, so the
// zero Country marshals to {} and represents an unknown country.
type Country struct {
	Name                  string    `json:"name,omitempty"`
	Population            string    `json:"population,omitempty"`
	GDP                   string    `json:"gdp,omitempty"`
	RiskLevel             RiskLevel `json:"risk_level,omitempty"`
	KeyIndustries         []string  `json:"key_industries,omitempty"`
	ClimateRisks          []string  `json:"climate_risks,omitempty"`
	GenderedClimateImpact []string  `json:"gendered_climate_impact,omitempty"`
	VulnerableSectors     []string  `json:"vulnerable_sectors,omitempty"`
	GovernmentInitiatives []string  `json:"government_initiatives,omitempty"`
	InternationalPartners []string  `json:"international_partners,omitempty"`
	KeyChallenges         []string  `json:"key_challenges,omitempty"`
}

// IsZero reports whether c is the empty record returned for unknown names.
func (c Country) IsZero() bool {
	return c.Name == ""
}

// RiskLevel is the qualitative climate risk rating used by the map legend.
type RiskLevel string

const (
	RiskVeryHigh RiskLevel = "Very High"
	RiskHigh     RiskLevel = "High"
	RiskMedium   RiskLevel = "Medium"
	RiskLow      RiskLevel = "Low"
	RiskVeryLow  RiskLevel = "Very Low"
	RiskUnknown  RiskLevel = ""
)

var riskColors = map[RiskLevel]string{
	RiskVeryHigh: "#d73027",
	RiskHigh:     "#fc8d59",
	RiskMedium:   "#fee08b",
	RiskLow:      "#d9ef8b",
}

const lowestRiskColor = "#1a9850"

// Levels returns the known risk levels from highest to lowest.
func Levels() []RiskLevel {
	return []RiskLevel{RiskVeryHigh, RiskHigh, RiskMedium, RiskLow, RiskVeryLow}
}

// Color returns the legend fill color. Very Low and unknown share the
// lowest color.
func (l RiskLevel) Color() string {
	if c, ok := riskColors[l]; ok {
		return c
	}
	return lowestRiskColor
}

// Rank orders levels from 0 (unknown) to 5 (very high).
func (l RiskLevel) Rank() int {
	switch l {
	case RiskVeryLow:
		return 1
	case RiskLow:
		return 2
	case RiskMedium:
		return 3
	case RiskHigh:
		return 4
	case RiskVeryHigh:
		return 5
	default:
		return 0
	}
}

// Label returns the legend text for l.
func (l RiskLevel) Label() string {
	if l == RiskUnknown {
		return "Unknown"
	}
	return string(l)
}
