package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/galleryd-dev/galleryd/internal/domain"
	internal_errors "github.com/galleryd-dev/galleryd/internal/errors"
)

// CreatePost persists a new post and returns the full record. Ids come from
// the sequence, so creation order and id order coincide.
func (s *Storage) CreatePost(owner, text, mediaPath string) (domain.Post, error) {
	post := domain.Post{Owner: owner, Text: text, MediaPath: mediaPath}
	createdTs := time.Now().UTC().Round(time.Microsecond) // database rounds to microsecond anyway

	err := s.db.QueryRow(`
	INSERT INTO posts(owner_id, text_content, media_path, created)
	VALUES($1, $2, $3, $4)
	RETURNING id, created`,
		owner, text, mediaPath, createdTs).Scan(&post.Id, &post.CreatedAt)
	if err != nil {
		return domain.Post{}, fmt.Errorf("failed to insert post: %w", err)
	}
	return post, nil
}

// Post fetches a single post by id. An unknown id maps to a 404.
func (s *Storage) Post(id domain.PostId) (domain.Post, error) {
	var post domain.Post
	err := s.db.QueryRow(`
	SELECT id, owner_id, text_content, media_path, created
	FROM posts
	WHERE id = $1`, id).Scan(&post.Id, &post.Owner, &post.Text, &post.MediaPath, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, &internal_errors.ErrorWithStatusCode{Message: "Post not found", StatusCode: http.StatusNotFound}
		}
		return domain.Post{}, fmt.Errorf("failed to query post: %w", err)
	}
	return post, nil
}

// PostsByOwner returns the owner's posts in creation order as a complete
// snapshot. An owner with no posts gets an empty slice, not an error.
func (s *Storage) PostsByOwner(owner string) ([]domain.Post, error) {
	rows, err := s.db.Query(`
	SELECT id, owner_id, text_content, media_path, created
	FROM posts
	WHERE owner_id = $1
	ORDER BY id`, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := []domain.Post{}
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.Id, &post.Owner, &post.Text, &post.MediaPath, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}
	return posts, nil
}

// DeletePost removes the record only. Releasing the media file is the
// service layer's job, after this has succeeded.
func (s *Storage) DeletePost(id domain.PostId) error {
	result, err := s.db.Exec("DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Post not found", StatusCode: http.StatusNotFound}
	}
	return nil
}
