package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"

	"socialnet/initializers"
	"socialnet/models"
	"socialnet/utils"
)

// AddComment attaches a comment by the acting user to the post. Blank input
// is dropped without feedback.
func AddComment(c *fiber.Ctx) error {
	user := currentUser(c)

	post, err := findPost(c)
	if err != nil {
		return renderNotFound(c)
	}

	content := strings.TrimSpace(c.FormValue("comment"))
	if content != "" {
		comment := models.Comment{
			Content: content,
			PostID:  post.ID,
			UserID:  user.ID,
		}
		if err := initializers.DB.Create(&comment).Error; err != nil {
			return fiber.ErrInternalServerError
		}
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func DeleteComment(c *fiber.Ctx) error {
	user := currentUser(c)

	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return renderNotFound(c)
	}

	var comment models.Comment
	if err := initializers.DB.First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return renderNotFound(c)
		}
		return fiber.ErrInternalServerError
	}

	if !comment.OwnedBy(user.ID) {
		utils.SetFlash(c, "You can only delete your own comments.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if err := initializers.DB.Delete(&comment).Error; err != nil {
		return fiber.ErrInternalServerError
	}

	utils.SetFlash(c, "Comment deleted successfully!")
	return c.Redirect("/", fiber.StatusSeeOther)
}
