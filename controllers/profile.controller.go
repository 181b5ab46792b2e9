package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"

	"socialnet/initializers"
	"socialnet/models"
	"socialnet/utils"
)

// GetUserProfile shows a user's profile and posts, creating the profile
// record on first view.
func GetUserProfile(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return renderNotFound(c)
	}

	var owner models.User
	if err := initializers.DB.First(&owner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return renderNotFound(c)
		}
		return fiber.ErrInternalServerError
	}

	profile, err := getOrCreateProfile(owner.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	var posts []models.Post
	err = postQuery().
		Where("posts.user_id = ?", owner.ID).
		Order("posts.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return render(c, fiber.StatusOK, "profile", fiber.Map{
		"Title":   owner.Username,
		"Owner":   models.FilterUserRecord(&owner),
		"Profile": profile,
		"Posts":   posts,
	})
}

func EditProfilePage(c *fiber.Ctx) error {
	user := currentUser(c)

	profile, err := getOrCreateProfile(user.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return render(c, fiber.StatusOK, "edit_profile", fiber.Map{
		"Title":   "Edit Profile",
		"Profile": profile,
	})
}

// EditProfile updates the acting user's own picture and bio.
func EditProfile(c *fiber.Ctx) error {
	user := currentUser(c)

	profile, err := getOrCreateProfile(user.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	config, err := initializers.LoadConfig(".")
	if err != nil {
		return fiber.ErrInternalServerError
	}

	picture, err := utils.SaveImage(c, "picture", config.IMGStorePath)
	if err != nil {
		return render(c, fiber.StatusBadRequest, "edit_profile", fiber.Map{
			"Title":   "Edit Profile",
			"Profile": profile,
			"Error":   err.Error(),
		})
	}

	updates := map[string]interface{}{"bio": c.FormValue("bio")}
	if picture != "" {
		updates["picture"] = picture
	}
	if err := initializers.DB.Model(&profile).Updates(updates).Error; err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/profile/"+user.ID.String(), fiber.StatusSeeOther)
}

func getOrCreateProfile(userID uuid.UUID) (models.Profile, error) {
	var profile models.Profile
	err := initializers.DB.First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = models.Profile{UserID: userID}
		err = initializers.DB.Create(&profile).Error
	}
	return profile, err
}
