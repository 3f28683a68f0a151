// Package model holds the GORM persistence models. They mirror the database
// tables and are mapped to pure domain entities at the repository boundary.
package model

import "time"

// UserModel mirrors the 'users' table. Email carries the unique index that
// backs the registration conflict check.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Name         string `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Posts    []PostModel    `gorm:"foreignKey:AuthorID"`
	Comments []CommentModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
