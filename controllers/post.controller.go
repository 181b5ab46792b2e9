package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"socialnet/initializers"
	"socialnet/models"
	"socialnet/utils"
)

const dateLayout = "2006-01-02"

// GetPosts renders the home page: all posts newest first, narrowed by any
// filter query parameters.
func GetPosts(c *fiber.Ctx) error {
	filter, formError := parsePostFilter(c)

	query := postQuery()
	if formError == "" {
		query = filter.Apply(query)
	} else {
		// An invalid filter form shows an error and applies no criteria.
		query = query.Order("posts.created_at DESC")
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return fiber.ErrInternalServerError
	}

	sidebar, err := loadSidebar()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return render(c, fiber.StatusOK, "home", fiber.Map{
		"Title":      "Home",
		"Posts":      posts,
		"Categories": sidebar.Categories,
		"Tags":       sidebar.Tags,
		"Filter":     filterValues(c),
		"FormError":  formError,
	})
}

func GetPostDetail(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return renderNotFound(c)
	}

	var post models.Post
	err = postQuery().
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.User").
		First(&post, "posts.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return renderNotFound(c)
		}
		return fiber.ErrInternalServerError
	}

	return render(c, fiber.StatusOK, "post_detail", fiber.Map{
		"Title": post.Title,
		"Post":  post,
	})
}

func CreatePostPage(c *fiber.Ctx) error {
	categories, err := allCategories()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	return render(c, fiber.StatusOK, "create_post", fiber.Map{
		"Title":      "Create Post",
		"Categories": categories,
	})
}

func CreatePost(c *fiber.Ctx) error {
	user := currentUser(c)

	var payload models.CreatePostInput
	if err := c.BodyParser(&payload); err != nil {
		return renderPostForm(c, fiber.StatusBadRequest, "create_post", "Create Post", payload, "Cannot parse form data", nil)
	}
	payload.Title = strings.TrimSpace(payload.Title)
	payload.Content = strings.TrimSpace(payload.Content)

	if errs := models.ValidateStruct(payload); errs != nil {
		return renderPostForm(c, fiber.StatusBadRequest, "create_post", "Create Post", payload, "", errs)
	}

	config, err := initializers.LoadConfig(".")
	if err != nil {
		return fiber.ErrInternalServerError
	}

	imageURL, err := utils.SaveImage(c, "image", config.IMGStorePath)
	if err != nil {
		return renderPostForm(c, fiber.StatusBadRequest, "create_post", "Create Post", payload, err.Error(), nil)
	}
	videoURL, err := utils.SaveVideo(c, "video", config.IMGStorePath)
	if err != nil {
		return renderPostForm(c, fiber.StatusBadRequest, "create_post", "Create Post", payload, err.Error(), nil)
	}

	post := models.Post{
		Title:      payload.Title,
		Content:    payload.Content,
		ImageURL:   imageURL,
		VideoURL:   videoURL,
		CategoryID: parseCategoryID(payload.Category),
		UserID:     user.ID,
	}
	if err := initializers.DB.Create(&post).Error; err != nil {
		return fiber.ErrInternalServerError
	}

	if err := utils.SyncPostTags(initializers.DB, &post); err != nil {
		return fiber.ErrInternalServerError
	}

	utils.SetFlash(c, "Post created")
	return c.Redirect("/", fiber.StatusSeeOther)
}

func UpdatePostPage(c *fiber.Ctx) error {
	post, err := findPost(c)
	if err != nil {
		return renderNotFound(c)
	}

	user := currentUser(c)
	if !post.OwnedBy(user.ID) {
		utils.SetFlash(c, "You can only edit your own posts.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	categories, err := allCategories()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return render(c, fiber.StatusOK, "update_post", fiber.Map{
		"Title":      "Edit Post",
		"Post":       post,
		"Categories": categories,
		"Form": models.UpdatePostInput{
			Title:   post.Title,
			Content: post.Content,
		},
	})
}

func UpdatePost(c *fiber.Ctx) error {
	post, err := findPost(c)
	if err != nil {
		return renderNotFound(c)
	}

	user := currentUser(c)
	if !post.OwnedBy(user.ID) {
		utils.SetFlash(c, "You can only edit your own posts.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	var payload models.UpdatePostInput
	if err := c.BodyParser(&payload); err != nil {
		return renderPostForm(c, fiber.StatusBadRequest, "update_post", "Edit Post", payload, "Cannot parse form data", nil)
	}
	payload.Title = strings.TrimSpace(payload.Title)
	payload.Content = strings.TrimSpace(payload.Content)

	if errs := models.ValidateStruct(payload); errs != nil {
		return renderPostForm(c, fiber.StatusBadRequest, "update_post", "Edit Post", payload, "", errs)
	}

	config, err := initializers.LoadConfig(".")
	if err != nil {
		return fiber.ErrInternalServerError
	}

	imageURL, err := utils.SaveImage(c, "image", config.IMGStorePath)
	if err != nil {
		return renderPostForm(c, fiber.StatusBadRequest, "update_post", "Edit Post", payload, err.Error(), nil)
	}
	if imageURL == "" {
		// No new upload keeps the current image.
		imageURL = post.ImageURL
	}
	videoURL, err := utils.SaveVideo(c, "video", config.IMGStorePath)
	if err != nil {
		return renderPostForm(c, fiber.StatusBadRequest, "update_post", "Edit Post", payload, err.Error(), nil)
	}
	if videoURL == "" {
		videoURL = post.VideoURL
	}

	// The author column is never part of an update.
	updates := map[string]interface{}{
		"title":       payload.Title,
		"content":     payload.Content,
		"image_url":   imageURL,
		"video_url":   videoURL,
		"category_id": parseCategoryID(payload.Category),
	}
	if err := initializers.DB.Model(&post).Updates(updates).Error; err != nil {
		return fiber.ErrInternalServerError
	}

	post.Content = payload.Content
	if err := utils.SyncPostTags(initializers.DB, &post); err != nil {
		return fiber.ErrInternalServerError
	}

	utils.SetFlash(c, "Post updated successfully!")
	return c.Redirect("/", fiber.StatusSeeOther)
}

func DeletePost(c *fiber.Ctx) error {
	post, err := findPost(c)
	if err != nil {
		return renderNotFound(c)
	}

	user := currentUser(c)
	if !post.OwnedBy(user.ID) {
		utils.SetFlash(c, "You can only delete your own posts.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if err := initializers.DB.Select(clause.Associations).Delete(&post).Error; err != nil {
		return fiber.ErrInternalServerError
	}

	utils.SetFlash(c, "Post deleted successfully!")
	return c.Redirect("/", fiber.StatusSeeOther)
}

func CategoryPosts(c *fiber.Ctx) error {
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return renderNotFound(c)
	}

	var category models.Category
	if err := initializers.DB.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return renderNotFound(c)
		}
		return fiber.ErrInternalServerError
	}

	var posts []models.Post
	err = postQuery().
		Where("posts.category_id = ?", category.ID).
		Order("posts.created_at DESC").
		Find(&posts).Error
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return render(c, fiber.StatusOK, "category_posts", fiber.Map{
		"Title":    category.Name,
		"Category": category,
		"Posts":    posts,
	})
}

// postQuery preloads the relations every post view renders.
func postQuery() *gorm.DB {
	return initializers.DB.
		Preload("User").
		Preload("Category").
		Preload("Likes").
		Preload("Comments").
		Preload("Tags")
}

func findPost(c *fiber.Ctx) (models.Post, error) {
	var post models.Post
	id, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return post, err
	}
	err = initializers.DB.First(&post, "id = ?", id).Error
	return post, err
}

func allCategories() ([]models.Category, error) {
	var categories []models.Category
	err := initializers.DB.Order("name ASC").Find(&categories).Error
	return categories, err
}

type sidebarData struct {
	Categories []models.Category
	Tags       []models.Tag
}

func loadSidebar() (sidebarData, error) {
	var sidebar sidebarData
	if err := initializers.DB.Order("name ASC").Find(&sidebar.Categories).Error; err != nil {
		return sidebar, err
	}
	if err := initializers.DB.Order("name ASC").Find(&sidebar.Tags).Error; err != nil {
		return sidebar, err
	}
	return sidebar, nil
}

func parseCategoryID(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.FromString(raw)
	if err != nil {
		return nil
	}
	return &id
}

// parsePostFilter reads the filter query parameters. A malformed date makes
// the whole form invalid: the message is returned and the zero filter applies
// no criteria.
func parsePostFilter(c *fiber.Ctx) (models.PostFilter, string) {
	var filter models.PostFilter

	filter.Keyword = c.Query("keyword")
	if filter.Keyword == "" {
		filter.Keyword = c.Query("query")
	}
	filter.Author = c.Query("author")
	filter.MediaType = c.Query("media_type")

	if raw := c.Query("author_id"); raw != "" {
		id, err := uuid.FromString(raw)
		if err != nil {
			return models.PostFilter{}, "Select a valid author"
		}
		filter.AuthorID = id
	}

	for _, field := range []struct {
		name string
		dst  **time.Time
	}{
		{"date", &filter.Date},
		{"date_from", &filter.DateFrom},
		{"date_to", &filter.DateTo},
	} {
		raw := c.Query(field.name)
		if raw == "" {
			continue
		}
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return models.PostFilter{}, "Enter a valid date (YYYY-MM-DD)"
		}
		*field.dst = &parsed
	}

	return filter, ""
}

// filterValues echoes the raw query parameters back into the filter form.
func filterValues(c *fiber.Ctx) map[string]string {
	values := make(map[string]string)
	for _, name := range []string{"keyword", "query", "author", "author_id", "media_type", "date", "date_from", "date_to"} {
		values[name] = c.Query(name)
	}
	return values
}

func renderPostForm(c *fiber.Ctx, status int, page, title string, form interface{}, formError string, errs map[string]string) error {
	categories, err := allCategories()
	if err != nil {
		return fiber.ErrInternalServerError
	}
	bind := fiber.Map{
		"Title":      title,
		"Categories": categories,
		"Form":       form,
	}
	if formError != "" {
		bind["Error"] = formError
	}
	if errs != nil {
		bind["Errors"] = errs
	}
	if page == "update_post" {
		if post, err := findPost(c); err == nil {
			bind["Post"] = post
		}
	}
	return render(c, status, page, bind)
}
