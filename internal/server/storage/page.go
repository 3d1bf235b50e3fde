package storage

import (
	"context"

	"github.com/akshat3144/inkquiry/internal/models"
)

// PageStorage defines interface for notebook page persistence
type PageStorage interface {
	// CreatePage stores a new notebook page for its owner
	CreatePage(ctx context.Context, page *models.NotebookPage) error

	// GetUserPages retrieves all pages of a user ordered by creation time
	// Returns empty slice if the user has no pages
	GetUserPages(ctx context.Context, userID string) ([]*models.NotebookPage, error)

	// UpdatePage replaces a page owned by userID
	// Returns ErrPageNotFound if the page doesn't exist or belongs to another user
	UpdatePage(ctx context.Context, page *models.NotebookPage) error

	// DeletePage removes a page owned by userID
	// Returns ErrPageNotFound if the page doesn't exist or belongs to another user
	DeletePage(ctx context.Context, userID, pageID string) error
}
