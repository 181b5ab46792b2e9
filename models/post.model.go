package models

import (
	"time"

	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type Post struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title      string     `gorm:"type:varchar(255);not null" json:"title"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	ImageURL   string     `gorm:"type:varchar(255);default:''" json:"image_url"`
	VideoURL   string     `gorm:"type:varchar(255);default:''" json:"video_url"`
	CategoryID *uuid.UUID `gorm:"type:uuid" json:"category_id"`
	Category   *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User       User       `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Likes    []User    `gorm:"many2many:post_likes;" json:"likes,omitempty"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Tags     []Tag     `gorm:"many2many:post_tags;" json:"tags,omitempty"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.NewV4()
	}
	return nil
}

// OwnedBy reports whether userID may edit or delete the post. The author
// reference never changes after creation.
func (p *Post) OwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}

func (p *Post) HasImage() bool { return p.ImageURL != "" }
func (p *Post) HasVideo() bool { return p.VideoURL != "" }

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.NewV4()
	}
	return nil
}

func (c *Comment) OwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}

type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Posts     []Post    `gorm:"foreignKey:CategoryID" json:"posts,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.NewV4()
	}
	return nil
}

type Tag struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Posts []Post    `gorm:"many2many:post_tags;" json:"posts,omitempty"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.NewV4()
	}
	return nil
}

type CreatePostInput struct {
	Title    string `form:"title" validate:"required,max=255"`
	Content  string `form:"content" validate:"required"`
	Category string `form:"category"`
}

type UpdatePostInput struct {
	Title    string `form:"title" validate:"required,max=255"`
	Content  string `form:"content" validate:"required"`
	Category string `form:"category"`
}
