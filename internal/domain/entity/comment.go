package entity

import "time"

// Comment is attached to exactly one post and owned by exactly one author.
// Comments are removed together with their post.
type Comment struct {
	ID        int64      `json:"id"`
	Text      string     `json:"text"`
	PostID    int64      `json:"postId"`
	AuthorID  int64      `json:"authorId"`
	Author    *AuthorRef `json:"author,omitempty"`
	Post      *PostRef   `json:"post,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// PostRef is the compact post representation embedded in a freshly created
// comment response.
type PostRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
