package utils

import (
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"socialnet/models"
)

var hashtagPattern = regexp.MustCompile(`(?i)#\w[\w-]*`)

// ExtractHashtags returns the distinct #tags found in content, in order of
// first appearance, without the # prefix.
func ExtractHashtags(content string) []string {
	matches := hashtagPattern.FindAllString(content, -1)

	seen := make(map[string]bool)
	var tags []string
	for _, match := range matches {
		name := strings.ToLower(strings.Trim(match, "#.,!? "))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		tags = append(tags, name)
	}
	return tags
}

// SyncPostTags reconciles the post's tag links with the hashtags currently in
// its content, creating missing Tag rows on the way.
func SyncPostTags(db *gorm.DB, post *models.Post) error {
	names := ExtractHashtags(post.Content)

	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		err := db.Where("name = ?", name).First(&tag).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			tag = models.Tag{Name: name}
			if err := db.Create(&tag).Error; err != nil {
				return err
			}
		}
		tags = append(tags, tag)
	}

	return db.Model(post).Association("Tags").Replace(&tags)
}
