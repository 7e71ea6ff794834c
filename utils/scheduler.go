package utils

import (
	"log"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"visualearn/config"
	"visualearn/models"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SELECTION-CLEANUP %s] %s", time.Now().Format(time.RFC3339), message)
}

// PurgeStaleSelections removes selections that sat in the cart past the
// configured age without a payment completing them.
func PurgeStaleSelections(db *gorm.DB) {
	cutoff := time.Now().AddDate(0, 0, -config.AppConfig.SelectionMaxAgeDays)

	result := db.Unscoped().Where("created_at < ?", cutoff).Delete(&models.Selection{})
	if result.Error != nil {
		logScheduler("Error purging stale selections: " + result.Error.Error())
		return
	}
	if result.RowsAffected > 0 {
		logScheduler("Purged " + strconv.FormatInt(result.RowsAffected, 10) + " stale selections")
	}
}

// StartSelectionCleanup schedules the daily stale-selection purge.
// Stop the returned cron at shutdown.
func StartSelectionCleanup(db *gorm.DB) *cron.Cron {
	c := cron.New()

	// Daily at 03:00 server time
	if _, err := c.AddFunc("0 3 * * *", func() { PurgeStaleSelections(db) }); err != nil {
		log.Printf("Error scheduling selection cleanup: %v", err)
		return c
	}

	c.Start()
	log.Println("Selection cleanup scheduler started.")
	return c
}
