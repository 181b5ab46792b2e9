package models

import (
	"strings"
	"time"
	"unicode"

	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

const (
	MediaImage = "image"
	MediaVideo = "video"
	MediaText  = "text"
)

const day = 24 * time.Hour

// PostFilter collects the optional search criteria of the post list. Zero
// fields impose no constraint; set fields are ANDed together. Dates are day
// granular.
type PostFilter struct {
	Keyword   string
	AuthorID  uuid.UUID
	Author    string
	MediaType string
	Date      *time.Time
	DateFrom  *time.Time
	DateTo    *time.Time
}

// Apply narrows tx to the posts matching the filter, newest first. A keyword
// that spells a month name matches by creation month across all years instead
// of by text.
func (f *PostFilter) Apply(tx *gorm.DB) *gorm.DB {
	if keyword := strings.TrimSpace(f.Keyword); keyword != "" {
		if month, ok := monthFromKeyword(keyword); ok {
			tx = whereMonth(tx, month)
		} else {
			pattern := "%" + strings.ToLower(keyword) + "%"
			tx = tx.Where("LOWER(posts.title) LIKE ? OR LOWER(posts.content) LIKE ?", pattern, pattern)
		}
	}

	if f.AuthorID != uuid.Nil {
		tx = tx.Where("posts.user_id = ?", f.AuthorID)
	}
	if author := strings.TrimSpace(f.Author); author != "" {
		tx = tx.Joins("JOIN users ON users.id = posts.user_id").
			Where("LOWER(users.username) LIKE ?", "%"+strings.ToLower(author)+"%")
	}

	if f.Date != nil {
		tx = tx.Where("posts.created_at >= ? AND posts.created_at < ?", *f.Date, f.Date.Add(day))
	}
	if f.DateFrom != nil {
		tx = tx.Where("posts.created_at >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		tx = tx.Where("posts.created_at < ?", f.DateTo.Add(day))
	}

	switch f.MediaType {
	case MediaImage:
		tx = tx.Where("posts.image_url <> ''")
	case MediaVideo:
		tx = tx.Where("posts.video_url <> ''")
	case MediaText:
		tx = tx.Where("posts.image_url = '' AND posts.video_url = ''")
	}

	return tx.Order("posts.created_at DESC")
}

// monthFromKeyword reports whether the keyword, capitalized, is an English
// month name.
func monthFromKeyword(keyword string) (time.Month, bool) {
	t, err := time.Parse("January", capitalize(keyword))
	if err != nil {
		return 0, false
	}
	return t.Month(), true
}

func capitalize(s string) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Month extraction has no portable SQL spelling: postgres backs the server,
// sqlite backs the tests.
func whereMonth(tx *gorm.DB, month time.Month) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx.Where("CAST(strftime('%m', posts.created_at) AS INTEGER) = ?", int(month))
	}
	return tx.Where("EXTRACT(MONTH FROM posts.created_at) = ?", int(month))
}
