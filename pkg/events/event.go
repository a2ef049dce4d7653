package events

import "time"

// TopicNoteContentCaptured carries note content snapshots to the history
// consumer.
const TopicNoteContentCaptured = "note.content.captured"

type NoteContentCaptured struct {
	NoteId     uint      `json:"note_id"`
	Content    string    `json:"content"`
	OccurredAt time.Time `json:"occurred_at"`
}
