package dashboard

import (
	"civicpulse/insight"
	"civicpulse/types"
	"context"

	"golang.org/x/sync/errgroup"
)

const (
	// trend flips to increasing strictly above this many open reports
	trendOpenReportsThreshold = 5

	adminNearbyLimit   = 5
	citizenNearbyLimit = 3

	// placeholder until the rewards module lands
	citizenPoints = 1250
)

// ReportStore is the slice of the report store the composer reads.
type ReportStore interface {
	CountOpen(ctx context.Context) (int, error)
	CountResolved(ctx context.Context) (int, error)
	CountOpenHighPriority(ctx context.Context, areaFilter string) (int, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	Recent(ctx context.Context, limit int) ([]types.Report, error)
	RecentOpen(ctx context.Context, limit int) ([]types.Report, error)
}

// UserStore is the slice of the user store the composer reads.
type UserStore interface {
	Count(ctx context.Context) (int, error)
}

// InsightSource produces the summary's insight.
type InsightSource interface {
	Generate(insightCtx insight.Context) types.Insight
}

// Composer assembles role-differentiated dashboard summaries. The role
// branch happens exactly once, in Summarize.
type Composer struct {
	Reports  ReportStore
	Users    UserStore
	Insights InsightSource
}

func NewComposer(reports ReportStore, users UserStore, insights InsightSource) *Composer {
	return &Composer{Reports: reports, Users: users, Insights: insights}
}

// Summarize selects the projection for the caller's role. Anything that is
// not an administrative role gets the citizen projection, including roles
// this version does not know about.
func (c *Composer) Summarize(ctx context.Context, role types.Role, userID string) (types.Summary, error) {
	switch role {
	case types.RoleAdmin, types.RoleOfficial:
		return c.AdminSummary(ctx)
	default:
		return c.CitizenSummary(ctx, userID)
	}
}

// AdminSummary reports system-wide counters, the open-report trend, and the
// five most recent reports. The four counts are independent reads and run
// concurrently; any failure makes the whole summary unavailable.
func (c *Composer) AdminSummary(ctx context.Context) (types.Summary, error) {
	var (
		totalUsers      int
		openReports     int
		resolvedReports int
		highOpen        int
		recent          []types.Report
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalUsers, err = c.Users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		openReports, err = c.Reports.CountOpen(gctx)
		return err
	})
	g.Go(func() (err error) {
		resolvedReports, err = c.Reports.CountResolved(gctx)
		return err
	})
	g.Go(func() (err error) {
		highOpen, err = c.Reports.CountOpenHighPriority(gctx, "")
		return err
	})
	g.Go(func() (err error) {
		recent, err = c.Reports.Recent(gctx, adminNearbyLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return types.Summary{}, err
	}

	trend := types.Stable
	if openReports > trendOpenReportsThreshold {
		trend = types.Increasing
	}

	return types.Summary{
		Stats: map[string]int{
			"totalUsers":       totalUsers,
			"openReports":      openReports,
			"resolvedReports":  resolvedReports,
			"highPriorityOpen": highOpen,
		},
		Trend: trend,
		Insight: c.Insights.Generate(insight.Context{
			OpenReports:  openReports,
			HighPriority: highOpen,
			UserCount:    totalUsers,
		}),
		Nearby: previews(recent),
	}, nil
}

// CitizenSummary reports the caller's own submission count and the most
// recent open reports system-wide. The insight context deliberately carries
// the nearby count, not the global open count.
func (c *Composer) CitizenSummary(ctx context.Context, userID string) (types.Summary, error) {
	var (
		submitted int
		nearby    []types.Report
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		submitted, err = c.Reports.CountByUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		nearby, err = c.Reports.RecentOpen(gctx, citizenNearbyLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return types.Summary{}, err
	}

	return types.Summary{
		Stats: map[string]int{
			"submitted":         submitted,
			"points":            citizenPoints,
			"nearbyIssuesCount": len(nearby),
		},
		Insight: c.Insights.Generate(insight.Context{
			OpenReports:  len(nearby),
			UserSpecific: true,
		}),
		Nearby: previews(nearby),
	}, nil
}

func previews(reports []types.Report) []types.ReportPreview {
	out := make([]types.ReportPreview, 0, len(reports))
	for _, r := range reports {
		out = append(out, r.Preview())
	}
	return out
}
