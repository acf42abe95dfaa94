package types

import "time"

type InsightKind string

const (
	InfoInsight  InsightKind = "info"
	TrendInsight InsightKind = "trend"
	AlertInsight InsightKind = "alert"
)

// Insight is a templated status message. Confidence is a display affordance
// in [0.85, 0.95), not a statistical measure.
type Insight struct {
	Text        string      `json:"text"`
	Confidence  float64     `json:"confidence"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Kind        InsightKind `json:"kind"`
}
