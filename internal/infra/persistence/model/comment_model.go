package model

import "time"

// CommentModel mirrors the 'comments' table. The post foreign key carries
// ON DELETE CASCADE so deleting a post removes its comments in one statement.
type CommentModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Text      string `gorm:"type:text;not null"`
	PostID    int64  `gorm:"not null;index"`
	AuthorID  int64  `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
	Post   *PostModel `gorm:"foreignKey:PostID"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
