package db

import (
	"civicpulse/types"
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

const reportsCollection = "reports"

// Reports is the read contract over the report store. Area filters are
// case-insensitive substring matches on the stored location name, applied
// in memory since Firestore has no case-insensitive contains.
type Reports struct {
	Client *firestore.Client
}

func matchesArea(location, areaFilter string) bool {
	if areaFilter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(location), strings.ToLower(areaFilter))
}

// CountOpenHighPriority counts reports with status=open and priority=high,
// optionally restricted to locations containing areaFilter.
func (r *Reports) CountOpenHighPriority(ctx context.Context, areaFilter string) (int, error) {
	docs, err := r.Client.Collection(reportsCollection).
		Where("status", "==", string(types.StatusOpen)).
		Where("priority", "==", string(types.PriorityHigh)).
		Documents(ctx).
		GetAll()
	if err != nil {
		return 0, storeErr("counting open high-priority reports", err)
	}

	count := 0
	for _, doc := range docs {
		var report types.Report
		if err := doc.DataTo(&report); err != nil {
			return 0, storeErr("decoding report "+doc.Ref.ID, err)
		}
		if matchesArea(report.Location, areaFilter) {
			count++
		}
	}
	return count, nil
}

func (r *Reports) countWhere(ctx context.Context, field, value string) (int, error) {
	docs, err := r.Client.Collection(reportsCollection).
		Where(field, "==", value).
		Documents(ctx).
		GetAll()
	if err != nil {
		return 0, storeErr("counting reports by "+field, err)
	}
	return len(docs), nil
}

func (r *Reports) CountOpen(ctx context.Context) (int, error) {
	return r.countWhere(ctx, "status", string(types.StatusOpen))
}

func (r *Reports) CountResolved(ctx context.Context) (int, error) {
	return r.countWhere(ctx, "status", string(types.StatusResolved))
}

func (r *Reports) CountByUser(ctx context.Context, userID string) (int, error) {
	return r.countWhere(ctx, "createdBy", userID)
}

// Recent returns the most recently created reports, newest first.
func (r *Reports) Recent(ctx context.Context, limit int) ([]types.Report, error) {
	query := r.Client.Collection(reportsCollection).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)
	return r.collect(ctx, query, "fetching recent reports")
}

// RecentOpen returns the most recently created open reports, newest first.
func (r *Reports) RecentOpen(ctx context.Context, limit int) ([]types.Report, error) {
	query := r.Client.Collection(reportsCollection).
		Where("status", "==", string(types.StatusOpen)).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)
	return r.collect(ctx, query, "fetching recent open reports")
}

func (r *Reports) collect(ctx context.Context, query firestore.Query, op string) ([]types.Report, error) {
	var reports []types.Report

	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, storeErr(op, err)
		}

		var report types.Report
		if err := doc.DataTo(&report); err != nil {
			return nil, storeErr(op+": decoding "+doc.Ref.ID, err)
		}
		report.ID = doc.Ref.ID
		reports = append(reports, report)
	}

	return reports, nil
}

// Create stores a new report and returns it with its generated ID.
func (r *Reports) Create(ctx context.Context, report types.Report) (types.Report, error) {
	report.ID = uuid.NewString()
	_, err := r.Client.Collection(reportsCollection).Doc(report.ID).Set(ctx, report)
	if err != nil {
		return types.Report{}, storeErr("creating report", err)
	}
	return report, nil
}
