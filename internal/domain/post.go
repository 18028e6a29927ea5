package domain

import (
	"io"
	"time"
)

type PostId = int64

// Post is a unit of user content: optional text plus at most one media file.
// At least one of Text and MediaPath is non-empty for every persisted post.
type Post struct {
	Id        PostId    `json:"id"`
	Owner     string    `json:"ownerIdentifier"`
	Text      string    `json:"textContent"`
	MediaPath string    `json:"mediaPath,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasContent reports whether the post carries any text or media.
func (p *Post) HasContent() bool {
	return p.Text != "" || p.MediaPath != ""
}

// PendingUpload is an uploaded file that has not been validated or stored yet.
type PendingUpload struct {
	Filename  string
	SizeBytes int64
	Data      io.Reader
}
