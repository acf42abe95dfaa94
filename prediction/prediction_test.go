package prediction

import (
	"civicpulse/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllSlotsPopulatedWithinBounds(t *testing.T) {
	set := NewComposer().Predictions()

	assert.NotEmpty(t, set.CrowdRisk.Area)
	assert.GreaterOrEqual(t, set.CrowdRisk.Probability, 0.0)
	assert.LessOrEqual(t, set.CrowdRisk.Probability, 1.0)
	assert.NotEmpty(t, set.CrowdRisk.TimeWindow)
	assert.NotEmpty(t, set.CrowdRisk.Reason)

	assert.NotEmpty(t, set.WasteRisk.Zone)
	assert.GreaterOrEqual(t, set.WasteRisk.Probability, 0.0)
	assert.LessOrEqual(t, set.WasteRisk.Probability, 1.0)
	assert.NotEmpty(t, set.WasteRisk.Reason)

	assert.NotEmpty(t, set.TransportDelay.Route)
	assert.GreaterOrEqual(t, set.TransportDelay.DelayMinutes, 0)
	assert.NotEmpty(t, set.TransportDelay.Reason)
}

type stubCrowdPredictor struct{}

func (stubCrowdPredictor) PredictCrowd() types.CrowdRisk {
	return types.CrowdRisk{Area: "Old Town", Probability: 0.5, TimeWindow: "12:00-14:00", Reason: "festival"}
}

func TestSlotsAreIndependentlySwappable(t *testing.T) {
	composer := NewComposer()
	composer.Crowd = stubCrowdPredictor{}

	set := composer.Predictions()
	assert.Equal(t, "Old Town", set.CrowdRisk.Area)
	// the other slots keep their defaults
	assert.Equal(t, "Zone 4", set.WasteRisk.Zone)
	assert.Equal(t, "Route 12", set.TransportDelay.Route)
}
