package domain

import "time"

// Book is the catalog entry. Title and Author are required, Description is
// optional.
type Book struct {
	ID          int64
	Title       string
	Author      string
	Description *string
	CreatedAt   time.Time
}
