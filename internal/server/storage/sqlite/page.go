package sqlite

import (
	"context"
	"fmt"

	"github.com/akshat3144/inkquiry/internal/models"
	"github.com/akshat3144/inkquiry/internal/server/storage"
)

// CreatePage stores a new notebook page
func (s *Storage) CreatePage(ctx context.Context, page *models.NotebookPage) error {
	query := `
		INSERT INTO notebook_pages (id, user_id, name, date_created, content, canvas_data)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	content := page.Content
	if len(content) == 0 {
		content = []byte("[]")
	}

	_, err := s.db.ExecContext(ctx, query,
		page.ID,
		page.UserID,
		page.Name,
		page.DateCreated,
		string(content),
		page.CanvasData,
	)

	if err != nil {
		return fmt.Errorf("failed to insert page: %w", err)
	}

	return nil
}

// GetUserPages retrieves all pages of a user ordered by creation time
func (s *Storage) GetUserPages(ctx context.Context, userID string) ([]*models.NotebookPage, error) {
	query := `
		SELECT id, user_id, name, date_created, content, canvas_data
		FROM notebook_pages
		WHERE user_id = ?
		ORDER BY date_created
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pages: %w", err)
	}
	defer rows.Close()

	pages := make([]*models.NotebookPage, 0)
	for rows.Next() {
		page := &models.NotebookPage{}
		var content string

		if err := rows.Scan(
			&page.ID,
			&page.UserID,
			&page.Name,
			&page.DateCreated,
			&content,
			&page.CanvasData,
		); err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}

		page.Content = []byte(content)
		pages = append(pages, page)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pages: %w", err)
	}

	return pages, nil
}

// UpdatePage replaces a page owned by its user
func (s *Storage) UpdatePage(ctx context.Context, page *models.NotebookPage) error {
	query := `
		UPDATE notebook_pages
		SET name = ?, content = ?, canvas_data = ?
		WHERE id = ? AND user_id = ?
	`

	content := page.Content
	if len(content) == 0 {
		content = []byte("[]")
	}

	result, err := s.db.ExecContext(ctx, query,
		page.Name,
		string(content),
		page.CanvasData,
		page.ID,
		page.UserID,
	)

	if err != nil {
		return fmt.Errorf("failed to update page: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrPageNotFound
	}

	return nil
}

// DeletePage removes a page owned by its user
func (s *Storage) DeletePage(ctx context.Context, userID, pageID string) error {
	query := `DELETE FROM notebook_pages WHERE id = ? AND user_id = ?`

	result, err := s.db.ExecContext(ctx, query, pageID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrPageNotFound
	}

	return nil
}
