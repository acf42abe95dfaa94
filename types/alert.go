package types

import "time"

type Severity string

const (
	Low    Severity = "low"
	Medium Severity = "medium"
	High   Severity = "high"
)

// SeverityWeight is used only for ranking alerts.
func SeverityWeight(s Severity) int {
	switch s {
	case High:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	}
	return 0
}

type AlertKind string

const (
	MaintenanceAlert AlertKind = "maintenance"
	CrowdAlert       AlertKind = "crowd"
	TransportAlert   AlertKind = "transport"
	HealthAlert      AlertKind = "health"
)

// Alert is computed fresh per request and never persisted.
type Alert struct {
	ID        string    `json:"id"`
	Kind      AlertKind `json:"kind"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	Area      string    `json:"area"`
	Timestamp time.Time `json:"timestamp"`
}
