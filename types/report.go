package types

import "time"

type ReportStatus string

const (
	StatusOpen     ReportStatus = "open"
	StatusResolved ReportStatus = "resolved"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Report is the stored record behind the signal-source read contracts.
type Report struct {
	ID        string       `firestore:"-" json:"id"`
	Title     string       `firestore:"title" json:"title"`
	Category  string       `firestore:"category" json:"category"`
	Location  string       `firestore:"location" json:"location"`
	Status    ReportStatus `firestore:"status" json:"status"`
	Priority  Priority     `firestore:"priority" json:"priority"`
	CreatedBy string       `firestore:"createdBy" json:"createdBy"`
	CreatedAt time.Time    `firestore:"createdAt" json:"createdAt"`
}

func (r Report) Preview() ReportPreview {
	return ReportPreview{
		Title:    r.Title,
		Category: r.Category,
		Location: r.Location,
	}
}

type DensityLevel string

const (
	DensityLow      DensityLevel = "low"
	DensityModerate DensityLevel = "moderate"
	DensityHigh     DensityLevel = "high"
)

// CrowdReading is one sensor observation stored in the crowdReadings collection.
type CrowdReading struct {
	LocationName string       `firestore:"locationName" json:"locationName"`
	DensityLevel DensityLevel `firestore:"densityLevel" json:"densityLevel"`
	ObservedAt   time.Time    `firestore:"observedAt" json:"observedAt"`
}

type Role string

const (
	RoleCitizen  Role = "citizen"
	RoleOfficial Role = "official"
	RoleAdmin    Role = "admin"
)

// User is the stored profile; area feeds the alert location hint.
type User struct {
	ID          string    `firestore:"-" json:"id"`
	DisplayName string    `firestore:"displayName" json:"displayName"`
	Role        Role      `firestore:"role" json:"role"`
	Area        string    `firestore:"area" json:"area"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}
