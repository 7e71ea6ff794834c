package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"visualearn/config"
	"visualearn/models"
)

func TestPurgeStaleSelections(t *testing.T) {
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Selection{}))

	stale := models.Selection{ClassID: 1, Email: "old@x.com"}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Model(&stale).Update("created_at", time.Now().AddDate(0, 0, -60)).Error)

	fresh := models.Selection{ClassID: 2, Email: "new@x.com"}
	require.NoError(t, db.Create(&fresh).Error)

	PurgeStaleSelections(db)

	var remaining []models.Selection
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "new@x.com", remaining[0].Email)
}

func TestStatusEmailBodies(t *testing.T) {
	text := buildStatusEmailText("Teach", "Pottery 101", "denied", "Seats exceed room capacity.")
	assert.Contains(t, text, "Pottery 101")
	assert.Contains(t, text, "denied")
	assert.Contains(t, text, "Seats exceed room capacity.")

	html := buildStatusEmailBody("Teach", "Pottery 101", "approved", "")
	assert.Contains(t, html, "Pottery 101")
	assert.Contains(t, html, "approved")
	assert.False(t, strings.Contains(html, "Admin feedback"))
}

func TestSendClassStatusEmailSkipsWithoutKey(t *testing.T) {
	config.LoadConfig()
	config.AppConfig.SendGridKey = ""

	err := SendClassStatusEmail("teach@x.com", "Teach", "Pottery 101", "approved", "")
	assert.NoError(t, err)
}
