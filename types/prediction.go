package types

type CrowdRisk struct {
	Area        string  `json:"area"`
	Probability float64 `json:"probability"`
	TimeWindow  string  `json:"timeWindow"`
	Reason      string  `json:"reason"`
}

type WasteRisk struct {
	Zone        string  `json:"zone"`
	Probability float64 `json:"probability"`
	Reason      string  `json:"reason"`
}

type TransportDelay struct {
	Route        string `json:"route"`
	DelayMinutes int    `json:"delayMinutes"`
	Reason       string `json:"reason"`
}

// PredictionSet always carries all three slots.
type PredictionSet struct {
	CrowdRisk      CrowdRisk      `json:"crowdRisk"`
	WasteRisk      WasteRisk      `json:"wasteRisk"`
	TransportDelay TransportDelay `json:"transportDelay"`
}
