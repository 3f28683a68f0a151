// Package response defines the JSON bodies the API returns. Success bodies
// wrap their payload per resource; every failure renders elsewhere as a
// single-field {"error": "<message>"} object.
package response

import (
	"time"

	"quill/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string       `json:"message"`
	User    *entity.User `json:"user"`
	Token   string       `json:"token"`
}

// UserResponse is returned by the current-user endpoint.
type UserResponse struct {
	User *entity.User `json:"user"`
}

// PostResponse wraps a single post, with a message on mutations.
type PostResponse struct {
	Message string       `json:"message,omitempty"`
	Post    *entity.Post `json:"post"`
}

// PostListResponse wraps the published-post listing.
type PostListResponse struct {
	Posts []*entity.Post `json:"posts"`
	Count int            `json:"count"`
}

// CommentResponse wraps a single comment, with a message on mutations.
type CommentResponse struct {
	Message string          `json:"message,omitempty"`
	Comment *entity.Comment `json:"comment"`
}

// CommentListResponse wraps the comments-by-post listing.
type CommentListResponse struct {
	Comments []*entity.Comment `json:"comments"`
	Count    int               `json:"count"`
}

// MessageResponse is returned by deletions.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// JSON writes a success body with the given status code.
func JSON(c echo.Context, statusCode int, body any) error {
	return c.JSON(statusCode, body)
}

// Message writes a message-only success body.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}
