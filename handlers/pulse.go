package handlers

import (
	"civicpulse/aggregator"
	"civicpulse/dashboard"
	"civicpulse/db"
	"civicpulse/middleware"
	"civicpulse/prediction"
	"civicpulse/types"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetAlerts resolves the caller's stored area (if any) and returns the
// ranked active alerts. The response is always a JSON array, never null.
func GetAlerts(c *gin.Context, agg *aggregator.Aggregator, users *db.Users) {
	area := ""
	if userID := middleware.CallerID(c); userID != "" {
		user, err := users.Get(c.Request.Context(), userID)
		if err != nil {
			// no profile is not fatal, alerts just lose the location hint
			log.Printf("Could not resolve area for user %s: %v", userID, err)
		} else {
			area = user.Area
		}
	}

	alerts, err := agg.ActiveAlerts(c.Request.Context(), area)
	if err != nil {
		log.Printf("ERROR aggregating alerts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve active alerts",
		})
		return
	}

	if alerts == nil {
		alerts = []types.Alert{}
	}

	c.JSON(http.StatusOK, alerts)
}

// GetSummary returns the dashboard summary for the caller's role.
func GetSummary(c *gin.Context, composer *dashboard.Composer) {
	summary, err := composer.Summarize(c.Request.Context(), middleware.CallerRole(c), middleware.CallerID(c))
	if err != nil {
		log.Printf("ERROR composing summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compose dashboard summary",
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetPredictions returns the fixed prediction set.
func GetPredictions(c *gin.Context, composer *prediction.Composer) {
	c.JSON(http.StatusOK, composer.Predictions())
}
