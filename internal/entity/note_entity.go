package entity

import "time"

type Note struct {
	Id          uint
	Title       string
	Content     string
	Tags        []string
	DateCreated time.Time
	UserId      uint
}

type EditorContent struct {
	Id        uint
	NoteId    uint
	Content   string
	CreatedAt time.Time
}
