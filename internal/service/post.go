package service

import (
	"fmt"
	"strings"

	"github.com/galleryd-dev/galleryd/internal/domain"
	"github.com/galleryd-dev/galleryd/internal/logger"
	"github.com/galleryd-dev/galleryd/internal/validation"
	"github.com/microcosm-cc/bluemonday"
)

type PostService interface {
	Create(owner, text string, upload *domain.PendingUpload) (domain.Post, error)
	List(owner string) ([]domain.Post, error)
	Delete(id domain.PostId) error
}

type PostStorage interface {
	CreatePost(owner, text, mediaPath string) (domain.Post, error)
	Post(id domain.PostId) (domain.Post, error)
	PostsByOwner(owner string) ([]domain.Post, error)
	DeletePost(id domain.PostId) error
}

type Post struct {
	storage PostStorage
	media   MediaService
	policy  *bluemonday.Policy
}

func NewPost(storage PostStorage, media MediaService) PostService {
	return &Post{
		storage: storage,
		media:   media,
		policy:  bluemonday.StrictPolicy(),
	}
}

// Create stores the media first (validated and renamed), then the record.
// The two writes are not one transaction: if the record insert is rejected,
// the already-stored file is released so no orphaned media is left behind.
func (p *Post) Create(owner, text string, upload *domain.PendingUpload) (domain.Post, error) {
	text = strings.TrimSpace(p.policy.Sanitize(text))

	var mediaPath string
	if upload != nil {
		var err error
		mediaPath, err = p.media.Accept(upload)
		if err != nil {
			return domain.Post{}, err
		}
	}

	if text == "" && mediaPath == "" {
		p.releaseStored(mediaPath)
		return domain.Post{}, fmt.Errorf("%w: post needs text or a media file", validation.ErrEmptyPost)
	}

	post, err := p.storage.CreatePost(owner, text, mediaPath)
	if err != nil {
		p.releaseStored(mediaPath)
		return domain.Post{}, err
	}
	return post, nil
}

// List returns a snapshot of the owner's posts. Rows with neither text nor
// media are dropped: such rows should never be persisted, but legacy data
// must not surface invalid posts to callers.
func (p *Post) List(owner string) ([]domain.Post, error) {
	posts, err := p.storage.PostsByOwner(owner)
	if err != nil {
		return nil, err
	}

	valid := make([]domain.Post, 0, len(posts))
	for _, post := range posts {
		if post.HasContent() {
			valid = append(valid, post)
		}
	}
	return valid, nil
}

// Delete removes the record first and releases the media only after the
// record is confirmed gone. A failed record delete leaves the file in place
// so no surviving post ever points at missing media.
func (p *Post) Delete(id domain.PostId) error {
	post, err := p.storage.Post(id)
	if err != nil {
		return err
	}

	if err := p.storage.DeletePost(id); err != nil {
		return err
	}

	if post.MediaPath != "" {
		if err := p.media.Release(post.MediaPath); err != nil {
			// The record is gone, so the delete succeeded from the caller's
			// point of view. The leaked file is an operator concern.
			logger.Log.Warn("failed to release media after post delete", "post_id", id, "media_path", post.MediaPath, "error", err)
		}
	}
	return nil
}

// releaseStored compensates for a stored file when the record write is
// rejected. Mandatory, not best-effort: a failure here is logged loudly.
func (p *Post) releaseStored(mediaPath string) {
	if mediaPath == "" {
		return
	}
	if err := p.media.Release(mediaPath); err != nil {
		logger.Log.Error("failed to release media after rejected post", "media_path", mediaPath, "error", err)
	}
}
