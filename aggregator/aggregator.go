package aggregator

import (
	"civicpulse/db"
	"civicpulse/signals"
	"civicpulse/types"
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// a maintenance alert escalates to high severity above this many open
	// high-priority reports
	highSeverityReportCount = 2

	// per-source read budget; a slow source degrades to "no data"
	sourceTimeout = 2 * time.Second
)

// ReportSource is the slice of the report store the aggregator reads.
type ReportSource interface {
	CountOpenHighPriority(ctx context.Context, areaFilter string) (int, error)
}

// CrowdSource is the slice of the crowd-reading store the aggregator reads.
type CrowdSource interface {
	MostRecentHighReading(ctx context.Context, areaFilter string) (*types.CrowdReading, error)
}

// Aggregator turns the three signal sources into a severity-ranked alert
// list. It holds no state between calls.
type Aggregator struct {
	Reports     ReportSource
	Crowd       CrowdSource
	Environment signals.EnvironmentSampler
	Now         func() time.Time
}

func New(reports ReportSource, crowd CrowdSource, env signals.EnvironmentSampler) *Aggregator {
	return &Aggregator{
		Reports:     reports,
		Crowd:       crowd,
		Environment: env,
		Now:         time.Now,
	}
}

// ActiveAlerts queries the three sources, applies the threshold rules, and
// returns the resulting alerts sorted by severity weight descending. Ties
// keep emission order (maintenance, crowd, environmental). A degraded source
// contributes no alert; only a dead store aborts the whole call.
func (a *Aggregator) ActiveAlerts(ctx context.Context, locationHint string) ([]types.Alert, error) {
	var (
		wg sync.WaitGroup

		highPriorityCount int
		crowdReading      *types.CrowdReading
		envAlert          *types.Alert

		reportErr, crowdErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		srcCtx, cancel := context.WithTimeout(ctx, sourceTimeout)
		defer cancel()
		highPriorityCount, reportErr = a.Reports.CountOpenHighPriority(srcCtx, locationHint)
	}()
	go func() {
		defer wg.Done()
		srcCtx, cancel := context.WithTimeout(ctx, sourceTimeout)
		defer cancel()
		crowdReading, crowdErr = a.Crowd.MostRecentHighReading(srcCtx, locationHint)
	}()
	go func() {
		defer wg.Done()
		envAlert = a.Environment.Sample()
	}()
	wg.Wait()

	for _, err := range []error{reportErr, crowdErr} {
		if errors.Is(err, db.ErrUnavailable) {
			return nil, err
		}
	}

	alerts := make([]types.Alert, 0, 3)

	if reportErr != nil {
		log.Printf("Report source degraded, skipping maintenance check: %v", reportErr)
	} else if highPriorityCount > 0 {
		severity := types.Medium
		if highPriorityCount > highSeverityReportCount {
			severity = types.High
		}
		area := locationHint
		if area == "" {
			area = "the city"
		}
		alerts = append(alerts, types.Alert{
			ID:       uuid.NewString(),
			Kind:     types.MaintenanceAlert,
			Severity: severity,
			Message: fmt.Sprintf("%d open high-priority reports in %s need immediate attention",
				highPriorityCount, area),
			Area:      area,
			Timestamp: a.Now(),
		})
	}

	if crowdErr != nil {
		log.Printf("Crowd source degraded, skipping density check: %v", crowdErr)
	} else if crowdReading != nil {
		alerts = append(alerts, types.Alert{
			ID:        uuid.NewString(),
			Kind:      types.CrowdAlert,
			Severity:  types.Medium,
			Message:   fmt.Sprintf("High crowd density reported at %s", crowdReading.LocationName),
			Area:      crowdReading.LocationName,
			Timestamp: a.Now(),
		})
	}

	if envAlert != nil {
		alerts = append(alerts, *envAlert)
	}

	// stable: ties keep emission order, no secondary key
	sort.SliceStable(alerts, func(i, j int) bool {
		return types.SeverityWeight(alerts[i].Severity) > types.SeverityWeight(alerts[j].Severity)
	})

	return alerts, nil
}
