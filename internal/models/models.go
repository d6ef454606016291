package models

import (
	"database/sql"
	"time"
)

type User struct {
	UserID       string    `json:"userId" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Identity - данные сессии из подписанной cookie
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type Category struct {
	CategoryID int    `json:"categoryId" db:"category_id"`
	Name       string `json:"name" db:"name"`
}

type Tag struct {
	TagID int    `json:"tagId" db:"tag_id"`
	Name  string `json:"name" db:"name"`
}

type Blog struct {
	BlogID        string         `json:"blogId" db:"blog_id"`
	Title         string         `json:"title" db:"title"`
	Content       string         `json:"content" db:"content"`
	Author        string         `json:"author" db:"author"`
	Email         string         `json:"email" db:"email"`
	Slug          string         `json:"slug" db:"slug"`
	ImageFilename sql.NullString `json:"imageFilename" db:"image_filename"`
	CategoryID    sql.NullInt64  `json:"categoryId" db:"category_id"`
	CategoryName  sql.NullString `json:"categoryName" db:"category_name"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
	Tags          []string       `json:"tags" db:"-"`
}
