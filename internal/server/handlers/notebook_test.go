package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshat3144/inkquiry/internal/models"
	"github.com/akshat3144/inkquiry/internal/server/storage"
	"github.com/akshat3144/inkquiry/pkg/api"
)

// mockPageStorage is a mock implementation of PageStorage for testing
type mockPageStorage struct {
	pages       map[string]*models.NotebookPage // pageID -> page
	createError error
	listError   error
}

func newMockPageStorage() *mockPageStorage {
	return &mockPageStorage{pages: make(map[string]*models.NotebookPage)}
}

func (m *mockPageStorage) CreatePage(ctx context.Context, page *models.NotebookPage) error {
	if m.createError != nil {
		return m.createError
	}
	m.pages[page.ID] = page
	return nil
}

func (m *mockPageStorage) GetUserPages(ctx context.Context, userID string) ([]*models.NotebookPage, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	result := make([]*models.NotebookPage, 0)
	for _, page := range m.pages {
		if page.UserID == userID {
			result = append(result, page)
		}
	}
	return result, nil
}

func (m *mockPageStorage) UpdatePage(ctx context.Context, page *models.NotebookPage) error {
	existing, ok := m.pages[page.ID]
	if !ok || existing.UserID != page.UserID {
		return storage.ErrPageNotFound
	}
	m.pages[page.ID] = page
	return nil
}

func (m *mockPageStorage) DeletePage(ctx context.Context, userID, pageID string) error {
	existing, ok := m.pages[pageID]
	if !ok || existing.UserID != userID {
		return storage.ErrPageNotFound
	}
	delete(m.pages, pageID)
	return nil
}

func testUser() *models.User {
	return &models.User{
		ID:        "user-1",
		Email:     "a@x.com",
		CreatedAt: time.Now(),
	}
}

// authedRequest строит запрос с идентичностью в контексте
func authedRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()

	var req *http.Request
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	return req.WithContext(WithUser(req.Context(), testUser()))
}

func TestNotebookHandler_CreateAndList(t *testing.T) {
	store := newMockPageStorage()
	h := NewNotebookHandler(setupTestLogger(), store)

	page := api.NotebookPage{
		Name:       "Page 1",
		Content:    json.RawMessage(`[{"expr":"2+2","result":"4"}]`),
		CanvasData: "canvas-blob",
	}

	w := httptest.NewRecorder()
	h.CreatePage(w, authedRequest(t, http.MethodPost, "/notebook/pages", page))

	require.Equal(t, http.StatusOK, w.Code)

	var created api.NotebookPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	// ID и timestamp генерируются сервером, если клиент их не прислал
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.DateCreated.IsZero())
	assert.Equal(t, "Page 1", created.Name)

	// Страница видна в списке пользователя
	w = httptest.NewRecorder()
	h.ListPages(w, authedRequest(t, http.MethodGet, "/notebook/pages", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var pages []api.NotebookPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pages))
	require.Len(t, pages, 1)
	assert.Equal(t, created.ID, pages[0].ID)
	assert.JSONEq(t, `[{"expr":"2+2","result":"4"}]`, string(pages[0].Content))
}

func TestNotebookHandler_ListEmpty(t *testing.T) {
	store := newMockPageStorage()
	h := NewNotebookHandler(setupTestLogger(), store)

	w := httptest.NewRecorder()
	h.ListPages(w, authedRequest(t, http.MethodGet, "/notebook/pages", nil))

	require.Equal(t, http.StatusOK, w.Code)
	// Пустой список, не null
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestNotebookHandler_UpdatePage(t *testing.T) {
	store := newMockPageStorage()
	h := NewNotebookHandler(setupTestLogger(), store)

	store.pages["page-1"] = &models.NotebookPage{
		ID:     "page-1",
		UserID: "user-1",
		Name:   "Old name",
	}

	req := authedRequest(t, http.MethodPut, "/notebook/pages/page-1", api.NotebookPage{Name: "New name"})
	req.SetPathValue("page_id", "page-1")
	w := httptest.NewRecorder()

	h.UpdatePage(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "New name", store.pages["page-1"].Name)
}

func TestNotebookHandler_UpdatePage_NotFound(t *testing.T) {
	store := newMockPageStorage()
	h := NewNotebookHandler(setupTestLogger(), store)

	req := authedRequest(t, http.MethodPut, "/notebook/pages/missing", api.NotebookPage{Name: "New name"})
	req.SetPathValue("page_id", "missing")
	w := httptest.NewRecorder()

	h.UpdatePage(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotebookHandler_UpdatePage_ForeignPage(t *testing.T) {
	store := newMockPageStorage()
	h := NewNotebookHandler(setupTestLogger(), store)

	// Страница другого пользователя недоступна, отдаем тот же 404
	store.pages["page-1"] = &models.NotebookPage{
		ID:     "page-1",
		UserID: "other-user",
		Name:   "Foreign",
	}

	req := authedRequest(t, http.MethodPut, "/notebook/pages/page-1", api.NotebookPage{Name: "Hijack"})
	req.SetPathValue("page_id", "page-1")
	w := httptest.NewRecorder()

	h.UpdatePage(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Foreign", store.pages["page-1"].Name)
}

func TestNotebookHandler_DeletePage(t *testing.T) {
	store := newMockPageStorage()
	h := NewNotebookHandler(setupTestLogger(), store)

	store.pages["page-1"] = &models.NotebookPage{
		ID:     "page-1",
		UserID: "user-1",
	}

	req := authedRequest(t, http.MethodDelete, "/notebook/pages/page-1", nil)
	req.SetPathValue("page_id", "page-1")
	w := httptest.NewRecorder()

	h.DeletePage(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, store.pages)

	// Повторное удаление дает 404
	req = authedRequest(t, http.MethodDelete, "/notebook/pages/page-1", nil)
	req.SetPathValue("page_id", "page-1")
	w = httptest.NewRecorder()

	h.DeletePage(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotebookHandler_Unauthenticated(t *testing.T) {
	store := newMockPageStorage()
	h := NewNotebookHandler(setupTestLogger(), store)

	// Без идентичности в контексте все операции дают 401
	w := httptest.NewRecorder()
	h.ListPages(w, httptest.NewRequest(http.MethodGet, "/notebook/pages", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	h.CreatePage(w, httptest.NewRequest(http.MethodPost, "/notebook/pages", bytes.NewReader([]byte(`{}`))))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
