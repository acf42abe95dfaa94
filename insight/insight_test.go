package insight

import (
	"civicpulse/types"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

func generator(r float64) *Generator {
	return &Generator{
		Rand: fixedRandom(r),
		Now:  func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestAlertBranchPreemptsTrendBranch(t *testing.T) {
	got := generator(0.5).Generate(Context{OpenReports: 11, HighPriority: 3})

	assert.Equal(t, types.AlertInsight, got.Kind)
	assert.Contains(t, got.Text, "3")
}

func TestTrendBranchReportsOpenCount(t *testing.T) {
	got := generator(0.5).Generate(Context{OpenReports: 11, HighPriority: 2})

	assert.Equal(t, types.TrendInsight, got.Kind)
	assert.Contains(t, got.Text, "11")
	assert.Contains(t, got.Text, "road maintenance")
}

func TestAmbientBranchDrawsFromPool(t *testing.T) {
	got := generator(0.0).Generate(Context{OpenReports: 10, HighPriority: 2})

	require.Equal(t, types.InfoInsight, got.Kind)
	assert.Contains(t, ambientTemplates[:], got.Text)
}

func TestAmbientSelectionCoversPool(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < len(ambientTemplates); i++ {
		r := (float64(i) + 0.5) / float64(len(ambientTemplates))
		got := generator(r).Generate(Context{})
		seen[got.Text] = true
	}
	assert.Len(t, seen, len(ambientTemplates))
}

func TestConfidenceStaysBounded(t *testing.T) {
	g := NewGenerator()
	for i := 0; i < 1000; i++ {
		got := g.Generate(Context{OpenReports: i % 20, HighPriority: i % 5})
		assert.GreaterOrEqual(t, got.Confidence, 0.85)
		assert.Less(t, got.Confidence, 0.95)
	}
}

func TestGeneratedAtComesFromClock(t *testing.T) {
	g := generator(0.2)
	got := g.Generate(Context{})
	assert.Equal(t, g.Now(), got.GeneratedAt)
}
