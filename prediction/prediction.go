package prediction

import "civicpulse/types"

// Per-slot predictor seams. Each slot can be swapped for a real computation
// without touching the composer or its callers.
type CrowdPredictor interface {
	PredictCrowd() types.CrowdRisk
}

type WastePredictor interface {
	PredictWaste() types.WasteRisk
}

type TransportPredictor interface {
	PredictTransport() types.TransportDelay
}

// Composer assembles the fixed three-slot prediction set.
type Composer struct {
	Crowd     CrowdPredictor
	Waste     WastePredictor
	Transport TransportPredictor
}

// NewComposer wires the static default predictors.
func NewComposer() *Composer {
	return &Composer{
		Crowd:     staticCrowd{},
		Waste:     staticWaste{},
		Transport: staticTransport{},
	}
}

func (c *Composer) Predictions() types.PredictionSet {
	return types.PredictionSet{
		CrowdRisk:      c.Crowd.PredictCrowd(),
		WasteRisk:      c.Waste.PredictWaste(),
		TransportDelay: c.Transport.PredictTransport(),
	}
}

type staticCrowd struct{}

func (staticCrowd) PredictCrowd() types.CrowdRisk {
	return types.CrowdRisk{
		Area:        "Central Market",
		Probability: 0.72,
		TimeWindow:  "17:00-19:00",
		Reason:      "Recurring evening footfall peak",
	}
}

type staticWaste struct{}

func (staticWaste) PredictWaste() types.WasteRisk {
	return types.WasteRisk{
		Zone:        "Zone 4",
		Probability: 0.38,
		Reason:      "Collection route running near capacity",
	}
}

type staticTransport struct{}

func (staticTransport) PredictTransport() types.TransportDelay {
	return types.TransportDelay{
		Route:        "Route 12",
		DelayMinutes: 8,
		Reason:       "Roadworks on the main corridor",
	}
}
