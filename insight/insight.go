package insight

import (
	"civicpulse/signals"
	"civicpulse/types"
	"fmt"
	"time"
)

const (
	// branch thresholds, checked in order: alert wins over trend
	alertHighPriorityThreshold = 2
	trendOpenReportsThreshold  = 10

	confidenceFloor = 0.85
	confidenceSpan  = 0.10
)

// ambient civic-status pool used when no threshold condition is met
var ambientTemplates = [...]string{
	"Traffic flow across the city is within normal range for this time of day.",
	"Waste collection efficiency is holding steady across all zones.",
	"Air quality readings remain in the healthy range citywide.",
	"Public transit usage is consistent with seasonal patterns.",
	"Water usage is tracking close to the monthly average.",
	"Community engagement with civic reporting continues to grow.",
}

// Context is the numeric picture an insight is generated from.
type Context struct {
	OpenReports  int
	HighPriority int
	UserCount    int
	UserSpecific bool
}

// Generator synthesizes a templated insight with a bounded pseudo-random
// confidence value. It is the explicit stand-in for anything smarter.
type Generator struct {
	Rand signals.RandomProvider
	Now  func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{Rand: signals.SystemRandom(), Now: time.Now}
}

// Generate picks the first matching branch: high-priority alert, open-report
// trend, then an ambient template chosen uniformly at random.
func (g *Generator) Generate(insightCtx Context) types.Insight {
	var (
		text string
		kind types.InsightKind
	)

	switch {
	case insightCtx.HighPriority > alertHighPriorityThreshold:
		kind = types.AlertInsight
		text = fmt.Sprintf("%d high-priority reports are currently open. Infrastructure safety needs immediate attention.",
			insightCtx.HighPriority)
	case insightCtx.OpenReports > trendOpenReportsThreshold:
		kind = types.TrendInsight
		text = fmt.Sprintf("%d reports are currently open. Most concern road maintenance.",
			insightCtx.OpenReports)
	default:
		kind = types.InfoInsight
		text = ambientTemplates[int(g.Rand.Float64()*float64(len(ambientTemplates)))]
	}

	return types.Insight{
		Text:        text,
		Confidence:  confidenceFloor + g.Rand.Float64()*confidenceSpan,
		GeneratedAt: g.Now(),
		Kind:        kind,
	}
}
