package model

import (
	"time"

	"gorm.io/datatypes"
)

type Note struct {
	Id          uint                        `gorm:"primaryKey;autoIncrement"`
	Title       string                      `gorm:"type:varchar(255);not null"`
	Content     string                      `gorm:"type:text;not null"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	DateCreated time.Time                   `gorm:"autoCreateTime"`
	UserId      uint                        `gorm:"not null;index"`
}

func (Note) TableName() string {
	return "notes"
}

// EditorContent is an append-only snapshot of a note's content, written by the
// history consumer and never read back through the API.
type EditorContent struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	NoteId    uint      `gorm:"not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (EditorContent) TableName() string {
	return "editor_content"
}
