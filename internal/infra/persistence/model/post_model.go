package model

import "time"

// PostModel mirrors the 'posts' table.
type PostModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Title     string `gorm:"type:varchar(255);not null"`
	Content   string `gorm:"type:text;not null"`
	Published bool   `gorm:"not null;default:false;index"`
	AuthorID  int64  `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Author   *UserModel     `gorm:"foreignKey:AuthorID"`
	Comments []CommentModel `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`

	// Populated by the listing query's subselect, not a column.
	CommentCount *int64 `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
