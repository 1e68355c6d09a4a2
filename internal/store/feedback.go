package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"routier/internal/model"
)

// InsertFeedback 保存一条优化结果反馈，返回生成的 ID
func (s *Store) InsertFeedback(f *model.Feedback) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	_, err := s.db.Exec(`
		INSERT INTO feedback (id, rating, comment, categories, context)
		VALUES (?, ?, ?, ?, ?)`,
		f.ID, f.Rating, f.Comment, string(f.Categories), string(f.Context))
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

// ListFeedback 获取反馈列表，最新在前
func (s *Store) ListFeedback(limit int) ([]model.Feedback, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, rating, comment, categories, context, created_at
		FROM feedback ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var results []model.Feedback
	for rows.Next() {
		var f model.Feedback
		var comment, categories, context sql.NullString
		if err := rows.Scan(&f.ID, &f.Rating, &comment, &categories, &context, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		f.Comment = comment.String
		if categories.String != "" {
			f.Categories = []byte(categories.String)
		}
		if context.String != "" {
			f.Context = []byte(context.String)
		}
		results = append(results, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return results, nil
}
