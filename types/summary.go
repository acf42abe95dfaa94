package types

type Trend string

const (
	Increasing Trend = "increasing"
	Stable     Trend = "stable"
)

// ReportPreview is the lightweight projection shown in the "nearby" list.
type ReportPreview struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Location string `json:"location"`
}

// Summary is the role-differentiated dashboard payload. Trend is only set on
// the administrator projection and is omitted from JSON otherwise.
type Summary struct {
	Stats   map[string]int  `json:"stats"`
	Trend   Trend           `json:"trend,omitempty"`
	Insight Insight         `json:"insight"`
	Nearby  []ReportPreview `json:"nearby"`
}
