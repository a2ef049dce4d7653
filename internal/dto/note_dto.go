package dto

import "time"

type CreateNoteRequest struct {
	Title   string   `json:"title" validate:"required,max=255"`
	Content string   `json:"content" validate:"required"`
	Tags    []string `json:"tags" validate:"omitempty,dive,max=255"`
}

// UpdateNoteRequest uses pointers so absent fields are left unchanged.
type UpdateNoteRequest struct {
	Id      uint    `json:"-"`
	Title   *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

type NoteResponse struct {
	Id          uint      `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	UserId      uint      `json:"user_id"`
	DateCreated time.Time `json:"date_created"`
}
