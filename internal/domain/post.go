package domain

import (
	"io"
	"time"
)

// Post is a feed entry as served by the blog API. IDs are always
// server-assigned; the client never invents one.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Attachment is a binary file destined for the multipart image part
// of a create or update submission.
type Attachment struct {
	Filename string
	Content  io.Reader
}

// PostDraft carries the full field set for a create submission.
type PostDraft struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Image    *Attachment
}

// PostPatch carries a partial update. Fields holds only the fields to
// change; an absent field means "leave unchanged", never "clear".
type PostPatch struct {
	Fields map[string]string
	Image  *Attachment
}
