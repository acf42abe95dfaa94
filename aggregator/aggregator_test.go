package aggregator

import (
	"civicpulse/db"
	"civicpulse/types"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReports struct {
	count     int
	err       error
	gotFilter string
}

func (f *fakeReports) CountOpenHighPriority(ctx context.Context, areaFilter string) (int, error) {
	f.gotFilter = areaFilter
	return f.count, f.err
}

type fakeCrowd struct {
	reading *types.CrowdReading
	err     error
}

func (f *fakeCrowd) MostRecentHighReading(ctx context.Context, areaFilter string) (*types.CrowdReading, error) {
	return f.reading, f.err
}

type fakeEnvironment struct {
	alert *types.Alert
}

func (f *fakeEnvironment) Sample() *types.Alert { return f.alert }

func newTestAggregator(reports *fakeReports, crowd *fakeCrowd, env *fakeEnvironment) *Aggregator {
	a := New(reports, crowd, env)
	a.Now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return a
}

func TestHighPriorityReportsYieldSingleMaintenanceAlert(t *testing.T) {
	reports := &fakeReports{count: 3}
	agg := newTestAggregator(reports, &fakeCrowd{}, &fakeEnvironment{})

	alerts, err := agg.ActiveAlerts(context.Background(), "Downtown")
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	assert.Equal(t, types.MaintenanceAlert, alerts[0].Kind)
	assert.Equal(t, types.High, alerts[0].Severity)
	assert.Contains(t, alerts[0].Message, "3")
	assert.Equal(t, "Downtown", alerts[0].Area)
	assert.Equal(t, "Downtown", reports.gotFilter)
}

func TestLowReportCountStaysMediumSeverity(t *testing.T) {
	for _, count := range []int{1, 2} {
		agg := newTestAggregator(&fakeReports{count: count}, &fakeCrowd{}, &fakeEnvironment{})

		alerts, err := agg.ActiveAlerts(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, alerts, 1)
		assert.Equal(t, types.Medium, alerts[0].Severity)
		assert.Contains(t, alerts[0].Message, "the city")
	}
}

func TestQuietSourcesYieldEmptyList(t *testing.T) {
	agg := newTestAggregator(&fakeReports{}, &fakeCrowd{}, &fakeEnvironment{})

	alerts, err := agg.ActiveAlerts(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

func TestAlertsRankedBySeverityWithStableTies(t *testing.T) {
	env := &fakeEnvironment{alert: &types.Alert{
		ID:       "env-1",
		Kind:     types.TransportAlert,
		Severity: types.High,
	}}
	crowd := &fakeCrowd{reading: &types.CrowdReading{LocationName: "Central Market"}}
	agg := newTestAggregator(&fakeReports{count: 1}, crowd, env)

	alerts, err := agg.ActiveAlerts(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, alerts, 3)

	for i := 0; i < len(alerts)-1; i++ {
		assert.GreaterOrEqual(t,
			types.SeverityWeight(alerts[i].Severity),
			types.SeverityWeight(alerts[i+1].Severity))
	}

	// the high environmental alert outranks both mediums, which keep
	// their emission order
	assert.Equal(t, types.TransportAlert, alerts[0].Kind)
	assert.Equal(t, types.MaintenanceAlert, alerts[1].Kind)
	assert.Equal(t, types.CrowdAlert, alerts[2].Kind)
}

func TestEnvironmentalAlertPassedThroughUnchanged(t *testing.T) {
	envAlert := &types.Alert{
		ID:       "env-7",
		Kind:     types.HealthAlert,
		Severity: types.Low,
		Message:  "Air quality advisory in effect",
		Area:     "citywide",
	}
	agg := newTestAggregator(&fakeReports{}, &fakeCrowd{}, &fakeEnvironment{alert: envAlert})

	alerts, err := agg.ActiveAlerts(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, *envAlert, alerts[0])
}

func TestDegradedSourceDoesNotAbortOthers(t *testing.T) {
	reports := &fakeReports{err: fmt.Errorf("decoding report x: %w", errors.New("bad field"))}
	crowd := &fakeCrowd{reading: &types.CrowdReading{LocationName: "Transit Hub"}}
	agg := newTestAggregator(reports, crowd, &fakeEnvironment{})

	alerts, err := agg.ActiveAlerts(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, types.CrowdAlert, alerts[0].Kind)
}

func TestDeadStorePropagatesUnavailable(t *testing.T) {
	reports := &fakeReports{err: fmt.Errorf("counting reports: %w", db.ErrUnavailable)}
	agg := newTestAggregator(reports, &fakeCrowd{}, &fakeEnvironment{})

	_, err := agg.ActiveAlerts(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, db.ErrUnavailable)
}

func TestCrowdReadingYieldsMediumCrowdAlert(t *testing.T) {
	crowd := &fakeCrowd{reading: &types.CrowdReading{LocationName: "Riverside Park"}}
	agg := newTestAggregator(&fakeReports{}, crowd, &fakeEnvironment{})

	alerts, err := agg.ActiveAlerts(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, types.CrowdAlert, alerts[0].Kind)
	assert.Equal(t, types.Medium, alerts[0].Severity)
	assert.Contains(t, alerts[0].Message, "Riverside Park")
}
