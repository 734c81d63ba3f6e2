package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/cache"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/database"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/http/exts"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"git.solsynth.dev/hypernet/yatube/pkg/internal/storage"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

// A 1x1 transparent gif.
var smallGif = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x21, 0xf9, 0x04,
	0x01, 0x0a, 0x00, 0x01, 0x00, 0x2c, 0x00, 0x00,
	0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x02,
	0x02, 0x4c, 0x01, 0x00, 0x3b,
}

type testClock struct {
	current time.Time
}

func (v *testClock) Now() time.Time {
	return v.current
}

type testEnv struct {
	app   *fiber.App
	pages *cache.PageCache
	clock *testClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	source, err := database.NewSource("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(source))
	database.C = source
	storage.S = storage.NewLocalStore(t.TempDir())

	client, err := cache.NewRistretto(1 << 20)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	clock := &testClock{current: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	pages := cache.NewPageCache(client, 20*time.Second, cache.WithClock(clock.Now))

	app := fiber.New(fiber.Config{
		ErrorHandler: exts.ErrorHandler,
		UnescapePath: true,
		JSONEncoder:  jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:  jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
	})
	app.Use(exts.AuthMiddleware(testSecret))
	MapAPIs(app, "", pages)

	return &testEnv{app: app, pages: pages, clock: clock}
}

// do sends a request as username, an empty username stays anonymous.
func (v *testEnv) do(t *testing.T, method, path, username string, body io.Reader, contentType string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if len(contentType) > 0 {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	if len(username) > 0 {
		token, err := exts.NewToken(testSecret, username)
		require.NoError(t, err)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := v.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (v *testEnv) get(t *testing.T, path, username string) *http.Response {
	return v.do(t, http.MethodGet, path, username, nil, "")
}

func (v *testEnv) postForm(t *testing.T, path, username string, form url.Values) *http.Response {
	return v.do(t, http.MethodPost, path, username, strings.NewReader(form.Encode()), fiber.MIMEApplicationForm)
}

func (v *testEnv) postMultipart(t *testing.T, path, username string, fields map[string]string, image []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", "small.gif")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return v.do(t, http.MethodPost, path, username, &buf, writer.FormDataContentType())
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, jsoniter.Unmarshal(raw, &out), string(raw))
	return out
}

func countRows(t *testing.T, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, database.C.Model(model).Count(&count).Error)
	return count
}

func latestPost(t *testing.T) models.Post {
	t.Helper()
	var post models.Post
	require.NoError(t, database.C.Order("id DESC").First(&post).Error)
	return post
}
