package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Posts      []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	Comments   []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty"`
	Profile    *Profile  `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	LikedPosts []Post    `gorm:"many2many:post_likes;" json:"liked_posts,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.NewV4()
	}
	return nil
}

type SignUpInput struct {
	Username        string `form:"username" validate:"required,min=3,max=100"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=8"`
	PasswordConfirm string `form:"password_confirm" validate:"required,eqfield=Password"`
}

type SignInInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// UserResponse is the request-scoped identity stored in c.Locals("user").
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func FilterUserRecord(user *User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

var validate = validator.New()

// ValidateStruct runs the validate tags of payload and returns one message
// per failing field, keyed by lowercased field name. Nil means valid.
func ValidateStruct(payload interface{}) map[string]string {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	errs := make(map[string]string)
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errs[strings.ToLower(fieldErr.Field())] = validationMessage(fieldErr)
	}
	return errs
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fieldErr.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fieldErr.Param())
	case "eqfield":
		return "Passwords do not match"
	}
	return "Invalid value"
}
