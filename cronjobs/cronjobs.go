package cronjobs

import (
	"civicpulse/db"
	"civicpulse/types"
	"context"
	"log"
	"math/rand"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"
)

// Simulated crowd-sensor feed. This is a stand-in data producer writing to
// the crowdReadings collection; the aggregation core only ever reads it.

// venues the simulated sensors report from
var sensorVenues = []string{
	"Central Market",
	"Riverside Park",
	"Transit Hub",
	"City Stadium",
	"Harbor Promenade",
}

var densityLevels = []types.DensityLevel{
	types.DensityLow,
	types.DensityModerate,
	types.DensityHigh,
}

func recordReading(firestoreClient *firestore.Client, level types.DensityLevel) {
	crowd := &db.Crowd{Client: firestoreClient}
	reading := types.CrowdReading{
		LocationName: sensorVenues[rand.Intn(len(sensorVenues))],
		DensityLevel: level,
		ObservedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := crowd.Record(ctx, reading); err != nil {
		log.Printf("Error recording simulated crowd reading: %v", err)
		return
	}
	log.Printf("Recorded simulated %s density at %s", reading.DensityLevel, reading.LocationName)
}

func InitCronJobs(firestoreClient *firestore.Client) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Sensor sweep: a random reading every 5 minutes
	_, err := c.AddFunc("*/5 * * * *", func() {
		log.Println("\nCronJob: Crowd Sensor Sweep Running")
		recordReading(firestoreClient, densityLevels[rand.Intn(len(densityLevels))])
	})
	if err != nil {
		log.Println("Error scheduling Crowd Sensor Sweep:", err)
	}

	// Peak hours: force a high-density reading morning and evening
	_, err = c.AddFunc("0 8,18 * * *", func() {
		log.Println("\nCronJob: Peak Hours Reading Running")
		recordReading(firestoreClient, types.DensityHigh)
	})
	if err != nil {
		log.Println("Error scheduling Peak Hours Reading:", err)
	}

	c.Start()
}
