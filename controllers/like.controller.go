package controllers

import (
	"github.com/gofiber/fiber/v2"

	"socialnet/initializers"
	"socialnet/models"
)

// ToggleLike flips the acting user's membership in the post's liking set.
// Applying it twice restores the original state.
func ToggleLike(c *fiber.Ctx) error {
	user := currentUser(c)

	post, err := findPost(c)
	if err != nil {
		return renderNotFound(c)
	}

	var count int64
	err = initializers.DB.Table("post_likes").
		Where("post_id = ? AND user_id = ?", post.ID, user.ID).
		Count(&count).Error
	if err != nil {
		return fiber.ErrInternalServerError
	}

	liker := models.User{ID: user.ID}
	association := initializers.DB.Model(&post).Association("Likes")
	if count > 0 {
		err = association.Delete(&liker)
	} else {
		err = association.Append(&liker)
	}
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}
