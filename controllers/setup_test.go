package controllers_test

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"socialnet/initializers"
	"socialnet/middleware"
	"socialnet/models"
	"socialnet/routes"
	"socialnet/utils"
)

const testSecret = "test-secret"

// setupApp wires the full application against a fresh in-memory database.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	t.Setenv("TOKEN_SECRET", testSecret)
	t.Setenv("IMG_STORE_PATH", t.TempDir())

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	initializers.DB = db
	require.NoError(t, initializers.Migrate())

	engine := html.New("../templates", ".html")
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})
	app.Use(middleware.DeserializeUser)
	routes.SetupAuthRoutes(app)
	routes.SetupProfileRoutes(app)
	routes.SetupPostRoutes(app)
	routes.NotFoundRoute(app)
	return app
}

func createUser(t *testing.T, username, password string) models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
	}
	require.NoError(t, initializers.DB.Create(&user).Error)
	return user
}

func createPost(t *testing.T, author models.User, title, content string) models.Post {
	t.Helper()
	post := models.Post{Title: title, Content: content, UserID: author.ID}
	require.NoError(t, initializers.DB.Create(&post).Error)
	return post
}

func authToken(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(time.Hour, user.ID.String(), testSecret)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string, form url.Values) *http.Response {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func doMultipartRequest(t *testing.T, app *fiber.App, target, token string, fields map[string]string, fileField, fileName, contentType string, fileContent []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, fileName))
		header.Set("Content-Type", contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func likeCount(t *testing.T, post models.Post) int64 {
	t.Helper()
	var count int64
	require.NoError(t, initializers.DB.Table("post_likes").
		Where("post_id = ?", post.ID).Count(&count).Error)
	return count
}
