package models

import "time"

// Post represents a post record in the database
type Post struct {
	ID       int64     `json:"id" db:"id"`               // Primary key
	Title    string    `json:"title" db:"title"`         // Required title
	Body     string    `json:"body" db:"body"`           // Required body
	Created  time.Time `json:"created" db:"created"`     // Set by the database on insert
	AuthorID int64     `json:"author_id" db:"author_id"` // Foreign key to users.id
}

// PostColumns lists the posts columns a partial update may write.
var PostColumns = []string{"title", "body"}
