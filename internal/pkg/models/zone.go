package models

// Severity grades how dangerous a risk zone is
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Valid reports whether s is one of the known severities
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// RiskZone is a named circular area that penalises or rewards a safety score
type RiskZone struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Center   Location `json:"center"`
	Radius   float64  `json:"radius"`
	Severity Severity `json:"severity"`
	// Intensity is a display weight for heatmaps, in [0.3, 0.7)
	Intensity float64 `json:"intensity"`
}

// RiskAssessment is the outcome of scoring a position against a zone set
type RiskAssessment struct {
	Location        Location   `json:"location"`
	Score           int        `json:"score"`
	InAnyZone       bool       `json:"inAnyZone"`
	ContainingZones []RiskZone `json:"containingZones"`
}
