package db

import (
	"civicpulse/types"
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const crowdCollection = "crowdReadings"

// how many high-density readings to walk when an area filter needs
// in-memory matching
const crowdScanLimit = 25

// Crowd is the read contract over the crowd-reading store.
type Crowd struct {
	Client *firestore.Client
}

// MostRecentHighReading returns the single most recently observed reading
// with high density, optionally restricted by area filter. A nil reading
// with nil error means no such reading exists.
func (c *Crowd) MostRecentHighReading(ctx context.Context, areaFilter string) (*types.CrowdReading, error) {
	iter := c.Client.Collection(crowdCollection).
		Where("densityLevel", "==", string(types.DensityHigh)).
		OrderBy("observedAt", firestore.Desc).
		Limit(crowdScanLimit).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil, nil
		}
		if err != nil {
			return nil, storeErr("fetching high crowd readings", err)
		}

		var reading types.CrowdReading
		if err := doc.DataTo(&reading); err != nil {
			return nil, storeErr("decoding crowd reading "+doc.Ref.ID, err)
		}
		if matchesArea(reading.LocationName, areaFilter) {
			return &reading, nil
		}
	}
}

// Record stores a new sensor reading. Used by the simulated sensor feed,
// not by the aggregation core.
func (c *Crowd) Record(ctx context.Context, reading types.CrowdReading) error {
	_, _, err := c.Client.Collection(crowdCollection).Add(ctx, reading)
	if err != nil {
		return storeErr("recording crowd reading", err)
	}
	return nil
}
