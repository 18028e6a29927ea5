package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/galleryd-dev/galleryd/internal/config"
	"github.com/galleryd-dev/galleryd/internal/domain"
	internal_errors "github.com/galleryd-dev/galleryd/internal/errors"
	"github.com/galleryd-dev/galleryd/internal/handler"
	"github.com/galleryd-dev/galleryd/internal/service"
	"github.com/galleryd-dev/galleryd/internal/storage/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory storage implementations for end-to-end routing tests. The pg
// layer has its own integration tests; here only the wiring is under test.

type memAccounts struct {
	accounts map[string]domain.Account
}

func (m *memAccounts) UpsertAccount(account domain.Account) (domain.Account, error) {
	if existing, ok := m.accounts[account.Identifier]; ok {
		return existing, nil
	}
	m.accounts[account.Identifier] = account
	return account, nil
}

func (m *memAccounts) Account(identifier string) (domain.Account, error) {
	account, ok := m.accounts[identifier]
	if !ok {
		return domain.Account{}, &internal_errors.ErrorWithStatusCode{Message: "Account not found", StatusCode: http.StatusNotFound}
	}
	return account, nil
}

type memPosts struct {
	seq   domain.PostId
	posts map[domain.PostId]domain.Post
}

func (m *memPosts) CreatePost(owner, text, mediaPath string) (domain.Post, error) {
	m.seq++
	post := domain.Post{Id: m.seq, Owner: owner, Text: text, MediaPath: mediaPath}
	m.posts[post.Id] = post
	return post, nil
}

func (m *memPosts) Post(id domain.PostId) (domain.Post, error) {
	post, ok := m.posts[id]
	if !ok {
		return domain.Post{}, &internal_errors.ErrorWithStatusCode{Message: "Post not found", StatusCode: http.StatusNotFound}
	}
	return post, nil
}

func (m *memPosts) PostsByOwner(owner string) ([]domain.Post, error) {
	result := []domain.Post{}
	for _, post := range m.posts {
		if post.Owner == owner {
			result = append(result, post)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func (m *memPosts) DeletePost(id domain.PostId) error {
	if _, ok := m.posts[id]; !ok {
		return &internal_errors.ErrorWithStatusCode{Message: "Post not found", StatusCode: http.StatusNotFound}
	}
	delete(m.posts, id)
	return nil
}

type okHealth struct{}

func (okHealth) Ping(ctx context.Context) error { return nil }

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	public := config.Defaults()
	cfg := &config.Config{Public: public}

	media, err := fs.New(t.TempDir())
	require.NoError(t, err)

	account := service.NewAccount(&memAccounts{accounts: map[string]domain.Account{}})
	post := service.NewPost(&memPosts{posts: map[domain.PostId]domain.Post{}}, service.NewMedia(media, &cfg.Public))

	h := handler.New(account, post, okHealth{}, cfg)
	return New(h, &cfg.Public, media.Root())
}

func postMultipart(t *testing.T, srv http.Handler, fields map[string]string, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("mediaFile", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/posts", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	return rr
}

func get(srv http.Handler, url string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, url, nil))
	return rr
}

// TestPostLifecycle walks the full contract: login, create a post with
// media, list it, fetch the media file, delete the post, and verify both
// the record and the file are gone.
func TestPostLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// login
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"identifier":"u1","name":"Alice"}`))
	srv.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"success","identifier":"u1"}`, rr.Body.String())

	// create a post with text and a 500-byte png
	fileContent := bytes.Repeat([]byte("x"), 500)
	rr = postMultipart(t, srv, map[string]string{"identifier": "u1", "textContent": "hello"}, "a.png", fileContent)
	require.Equal(t, http.StatusOK, rr.Code)

	var created struct {
		Status    string `json:"status"`
		MediaPath string `json:"mediaPath"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "success", created.Status)
	require.NotEmpty(t, created.MediaPath)

	// list
	rr = get(srv, "/posts?identifier=u1")
	require.Equal(t, http.StatusOK, rr.Code)
	var posts []domain.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "hello", posts[0].Text)
	assert.Equal(t, created.MediaPath, posts[0].MediaPath)

	// the media path resolves to the uploaded bytes
	rr = get(srv, "/"+created.MediaPath)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, fileContent, rr.Body.Bytes())

	// delete
	rr = httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/posts/%d", posts[0].Id), nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())

	// the post and its media are gone
	rr = get(srv, "/posts?identifier=u1")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())

	rr = get(srv, "/"+created.MediaPath)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteUnknownPost(t *testing.T) {
	srv := newTestServer(t)

	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/posts/12345", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	assert.Equal(t, http.StatusOK, get(srv, "/health").Code)
	assert.Equal(t, http.StatusOK, get(srv, "/ready").Code)
}
