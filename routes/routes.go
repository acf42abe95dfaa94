package routes

import (
	"civicpulse/aggregator"
	"civicpulse/dashboard"
	"civicpulse/db"
	"civicpulse/handlers"
	"civicpulse/insight"
	"civicpulse/middleware"
	"civicpulse/prediction"
	"civicpulse/signals"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

func SetupRouter(firestoreClient *firestore.Client) *gin.Engine {
	r := gin.Default()

	reportStore := &db.Reports{Client: firestoreClient}
	crowdStore := &db.Crowd{Client: firestoreClient}
	userStore := &db.Users{Client: firestoreClient}

	alerts := aggregator.New(reportStore, crowdStore, signals.NewSimulatedEnvironment())
	summaries := dashboard.NewComposer(reportStore, userStore, insight.NewGenerator())
	predictions := prediction.NewComposer()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// api routes
	api := r.Group("/api/pulse")
	api.Use(middleware.Auth(os.Getenv("JWT_SECRET")))
	{
		api.GET("/alerts", func(c *gin.Context) {
			handlers.GetAlerts(c, alerts, userStore)
		})
		api.GET("/summary", func(c *gin.Context) {
			handlers.GetSummary(c, summaries)
		})
		api.GET("/predictions", func(c *gin.Context) {
			handlers.GetPredictions(c, predictions)
		})
		api.POST("/reports", func(c *gin.Context) {
			handlers.CreateReport(c, reportStore)
		})
		api.GET("/reports", func(c *gin.Context) {
			handlers.ListReports(c, reportStore)
		})
	}

	return r
}
