package entity

import "time"

// Post is an article owned by exactly one author. Unpublished posts are drafts
// and never appear in the public listing.
type Post struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Published    bool       `json:"published"`
	AuthorID     int64      `json:"authorId"`
	Author       *AuthorRef `json:"author,omitempty"`
	Comments     []*Comment `json:"comments,omitempty"`
	CommentCount *int64     `json:"commentCount,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
