package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"socialnet/initializers"
	"socialnet/models"
	"socialnet/utils"
)

func SignUpPage(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "sign_up", fiber.Map{"Title": "Sign Up"})
}

func SignUpUser(c *fiber.Ctx) error {
	var payload models.SignUpInput
	if err := c.BodyParser(&payload); err != nil {
		return render(c, fiber.StatusBadRequest, "sign_up", fiber.Map{
			"Title": "Sign Up",
			"Error": "Cannot parse form data",
		})
	}

	payload.Username = strings.TrimSpace(payload.Username)
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	if errs := models.ValidateStruct(payload); errs != nil {
		return render(c, fiber.StatusBadRequest, "sign_up", fiber.Map{
			"Title":  "Sign Up",
			"Errors": errs,
			"Form":   payload,
		})
	}

	var count int64
	err := initializers.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", payload.Username, payload.Email).
		Count(&count).Error
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if count > 0 {
		return render(c, fiber.StatusConflict, "sign_up", fiber.Map{
			"Title": "Sign Up",
			"Error": "Username or email is already taken",
			"Form":  payload,
		})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	user := models.User{
		Username: payload.Username,
		Email:    payload.Email,
		Password: string(hashed),
	}
	if err := initializers.DB.Create(&user).Error; err != nil {
		// The unique indexes stay authoritative under concurrent signups.
		if strings.Contains(strings.ToLower(err.Error()), "unique") ||
			strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return render(c, fiber.StatusConflict, "sign_up", fiber.Map{
				"Title": "Sign Up",
				"Error": "Username or email is already taken",
				"Form":  payload,
			})
		}
		return fiber.ErrInternalServerError
	}

	utils.SetFlash(c, "Sign Up Successfully")
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func SignInPage(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "login", fiber.Map{"Title": "Log In"})
}

func SignInUser(c *fiber.Ctx) error {
	var payload models.SignInInput
	if err := c.BodyParser(&payload); err != nil {
		return render(c, fiber.StatusBadRequest, "login", fiber.Map{
			"Title": "Log In",
			"Error": "Cannot parse form data",
		})
	}

	if errs := models.ValidateStruct(payload); errs != nil {
		return render(c, fiber.StatusBadRequest, "login", fiber.Map{
			"Title":  "Log In",
			"Errors": errs,
			"Form":   payload,
		})
	}

	var user models.User
	err := initializers.DB.First(&user, "username = ?", strings.TrimSpace(payload.Username)).Error
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)) != nil {
		return render(c, fiber.StatusUnauthorized, "login", fiber.Map{
			"Title": "Log In",
			"Error": "Login Unsuccessful. Try Again :(",
			"Form":  payload,
		})
	}

	config, err := initializers.LoadConfig(".")
	if err != nil {
		return fiber.ErrInternalServerError
	}

	token, err := utils.GenerateToken(config.TokenExpiresIn, user.ID.String(), config.TokenSecret)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		MaxAge:   config.TokenMaxAge * 60,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	utils.SetFlash(c, "Login Success")
	return c.Redirect("/", fiber.StatusSeeOther)
}

func LogoutUser(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
	})
	utils.SetFlash(c, "Successfully Logout")
	return c.Redirect("/", fiber.StatusSeeOther)
}
