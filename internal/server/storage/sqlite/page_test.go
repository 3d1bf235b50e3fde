package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshat3144/inkquiry/internal/models"
	"github.com/akshat3144/inkquiry/internal/server/storage"
)

func newTestPage(userID, name string) *models.NotebookPage {
	return &models.NotebookPage{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        name,
		DateCreated: time.Now().UTC().Truncate(time.Second),
		Content:     []byte(`[{"expr":"2+2","result":"4"}]`),
		CanvasData:  "canvas-blob",
	}
}

// createOwner вставляет пользователя, чтобы удовлетворить foreign key
func createOwner(t *testing.T, s *Storage) string {
	t.Helper()

	ctx := context.Background()
	user := newTestUser(uuid.New().String() + "@x.com")
	require.NoError(t, s.CreateUser(ctx, user))
	return user.ID
}

func TestPageStorage_CreateAndList(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createOwner(t, s)

	page1 := newTestPage(userID, "Page 1")
	page1.DateCreated = time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	page2 := newTestPage(userID, "Page 2")

	require.NoError(t, s.CreatePage(ctx, page1))
	require.NoError(t, s.CreatePage(ctx, page2))

	pages, err := s.GetUserPages(ctx, userID)
	require.NoError(t, err)
	require.Len(t, pages, 2)

	// Сортировка по времени создания
	assert.Equal(t, "Page 1", pages[0].Name)
	assert.Equal(t, "Page 2", pages[1].Name)
	assert.JSONEq(t, `[{"expr":"2+2","result":"4"}]`, string(pages[0].Content))
	assert.Equal(t, "canvas-blob", pages[0].CanvasData)
}

func TestPageStorage_ListEmpty(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createOwner(t, s)

	pages, err := s.GetUserPages(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, pages)
	assert.NotNil(t, pages)
}

func TestPageStorage_ListIsolatedByUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice := createOwner(t, s)
	bob := createOwner(t, s)

	require.NoError(t, s.CreatePage(ctx, newTestPage(alice, "Alice page")))

	pages, err := s.GetUserPages(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, pages)
}

func TestPageStorage_UpdatePage(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createOwner(t, s)
	page := newTestPage(userID, "Old name")
	require.NoError(t, s.CreatePage(ctx, page))

	page.Name = "New name"
	page.Content = []byte(`[{"expr":"3*3","result":"9"}]`)
	require.NoError(t, s.UpdatePage(ctx, page))

	pages, err := s.GetUserPages(ctx, userID)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "New name", pages[0].Name)
	assert.JSONEq(t, `[{"expr":"3*3","result":"9"}]`, string(pages[0].Content))
}

func TestPageStorage_UpdatePage_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createOwner(t, s)

	err := s.UpdatePage(ctx, newTestPage(userID, "Ghost"))
	assert.ErrorIs(t, err, storage.ErrPageNotFound)
}

func TestPageStorage_UpdatePage_ForeignOwner(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice := createOwner(t, s)
	bob := createOwner(t, s)

	page := newTestPage(alice, "Alice page")
	require.NoError(t, s.CreatePage(ctx, page))

	// Чужая страница недоступна для обновления
	hijack := *page
	hijack.UserID = bob
	hijack.Name = "Hijacked"

	err := s.UpdatePage(ctx, &hijack)
	assert.ErrorIs(t, err, storage.ErrPageNotFound)

	pages, err := s.GetUserPages(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, "Alice page", pages[0].Name)
}

func TestPageStorage_DeletePage(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createOwner(t, s)
	page := newTestPage(userID, "Page")
	require.NoError(t, s.CreatePage(ctx, page))

	require.NoError(t, s.DeletePage(ctx, userID, page.ID))

	pages, err := s.GetUserPages(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, pages)

	// Повторное удаление дает типизированную ошибку
	err = s.DeletePage(ctx, userID, page.ID)
	assert.ErrorIs(t, err, storage.ErrPageNotFound)
}
