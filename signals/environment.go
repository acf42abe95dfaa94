package signals

import (
	"civicpulse/types"
	"time"

	"github.com/google/uuid"
)

// EnvironmentSampler stands in for a real environmental/weather feed. Each
// call independently yields at most one alert, or nil.
type EnvironmentSampler interface {
	Sample() *types.Alert
}

// CutPoints partition [0, 1): draws below None yield nothing, draws below
// Advisory yield an air-quality advisory, the rest a severe weather warning.
type CutPoints struct {
	None     float64
	Advisory float64
}

// DefaultCutPoints keeps the historical alert frequency: 70% nothing,
// 20% advisory, 10% severe weather.
var DefaultCutPoints = CutPoints{None: 0.70, Advisory: 0.90}

// SimulatedEnvironment draws from the injected random provider against its
// cut points.
type SimulatedEnvironment struct {
	Cuts CutPoints
	Rand RandomProvider
	Now  func() time.Time
}

func NewSimulatedEnvironment() *SimulatedEnvironment {
	return &SimulatedEnvironment{
		Cuts: DefaultCutPoints,
		Rand: SystemRandom(),
		Now:  time.Now,
	}
}

func (s *SimulatedEnvironment) Sample() *types.Alert {
	r := s.Rand.Float64()
	switch {
	case r < s.Cuts.None:
		return nil
	case r < s.Cuts.Advisory:
		return &types.Alert{
			ID:        uuid.NewString(),
			Kind:      types.HealthAlert,
			Severity:  types.Low,
			Message:   "Air quality advisory in effect. Sensitive groups should limit outdoor activity.",
			Area:      "citywide",
			Timestamp: s.Now(),
		}
	default:
		return &types.Alert{
			ID:        uuid.NewString(),
			Kind:      types.TransportAlert,
			Severity:  types.High,
			Message:   "Severe weather warning issued. Expect transport disruptions across the city.",
			Area:      "citywide",
			Timestamp: s.Now(),
		}
	}
}
