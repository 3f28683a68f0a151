package postgres

import (
	"quill/internal/domain/entity"
	"quill/internal/infra/persistence/model"
)

// Mapping between persistence models and pure domain entities. Repositories
// never leak GORM types past this boundary.

func toUserDomain(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Name:         m.Name,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toAuthorRef(m *model.UserModel) *entity.AuthorRef {
	if m == nil {
		return nil
	}

	return &entity.AuthorRef{ID: m.ID, Name: m.Name, Email: m.Email}
}

func toPostDomain(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:           m.ID,
		Title:        m.Title,
		Content:      m.Content,
		Published:    m.Published,
		AuthorID:     m.AuthorID,
		Author:       toAuthorRef(m.Author),
		CommentCount: m.CommentCount,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}

	for i := range m.Comments {
		post.Comments = append(post.Comments, toCommentDomain(&m.Comments[i]))
	}

	return post
}

func fromPostDomain(p *entity.Post) *model.PostModel {
	return &model.PostModel{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Published: p.Published,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toCommentDomain(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	comment := &entity.Comment{
		ID:        m.ID,
		Text:      m.Text,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		Author:    toAuthorRef(m.Author),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.Post != nil {
		comment.Post = &entity.PostRef{ID: m.Post.ID, Title: m.Post.Title}
	}

	return comment
}

func fromCommentDomain(c *entity.Comment) *model.CommentModel {
	return &model.CommentModel{
		ID:        c.ID,
		Text:      c.Text,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
