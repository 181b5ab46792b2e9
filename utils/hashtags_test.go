package utils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"socialnet/models"
)

func TestExtractHashtags(t *testing.T) {
	tags := ExtractHashtags("Learning #golang today, also #GoLang and #web-dev! #x")
	assert.Equal(t, []string{"golang", "web-dev", "x"}, tags)

	assert.Empty(t, ExtractHashtags("plain text without tags"))
}

func TestSyncPostTags(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Tag{}, &models.Post{}, &models.Comment{}))

	user := models.User{Username: "alice", Email: "alice@example.com", Password: "irrelevant"}
	require.NoError(t, db.Create(&user).Error)

	post := models.Post{Title: "hi", Content: "about #go and #testing", UserID: user.ID}
	require.NoError(t, db.Create(&post).Error)
	require.NoError(t, SyncPostTags(db, &post))

	var linked []models.Tag
	require.NoError(t, db.Model(&post).Association("Tags").Find(&linked))
	names := make([]string, 0, len(linked))
	for _, tag := range linked {
		names = append(names, tag.Name)
	}
	assert.ElementsMatch(t, []string{"go", "testing"}, names)

	// Editing the content replaces stale links.
	post.Content = "now only #go"
	require.NoError(t, SyncPostTags(db, &post))
	linked = nil
	require.NoError(t, db.Model(&post).Association("Tags").Find(&linked))
	require.Len(t, linked, 1)
	assert.Equal(t, "go", linked[0].Name)

	// Tag rows are reused, not duplicated.
	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Where("name = ?", "go").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
