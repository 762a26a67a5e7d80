package model

// RiskLevel classifies a segment of the risk distribution ring.
type RiskLevel string

const (
	RiskLevelHigh    RiskLevel = "high"
	RiskLevelWarning RiskLevel = "warning"
	RiskLevelSafe    RiskLevel = "safe"
)

// RiskSegment is an arc of the distribution ring.
type RiskSegment struct {
	Level  RiskLevel
	Length float64
	Offset float64
}

// RiskCategory is a legend entry of the distribution.
type RiskCategory struct {
	Name  string
	Color string
}

// RiskDistribution is the static risk distribution shown on the page.
type RiskDistribution struct {
	HighRiskPercent int
	Label           string
	Circumference   float64
	Segments        []RiskSegment
	Categories      []RiskCategory
	Badge           string
}

// DefaultRiskDistribution returns the distribution advertised by the page.
func DefaultRiskDistribution() RiskDistribution {
	return RiskDistribution{
		HighRiskPercent: 12,
		Label:           "High Risk",
		Circumference:   251.2,
		Segments: []RiskSegment{
			{Level: RiskLevelHigh, Length: 60, Offset: 0},
			{Level: RiskLevelWarning, Length: 40, Offset: 70},
			{Level: RiskLevelSafe, Length: 120, Offset: 120},
		},
		Categories: []RiskCategory{
			{Name: "Scams & Hacks", Color: "red"},
			{Name: "Gambling", Color: "orange"},
			{Name: "Sanctions (OFAC)", Color: "blue"},
			{Name: "Mixers", Color: "gray"},
		},
		Badge: "Darknet",
	}
}
