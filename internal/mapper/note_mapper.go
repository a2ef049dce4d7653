package mapper

import (
	"gorm.io/datatypes"

	"github.com/emmanuelronoh/backend/internal/entity"
	"github.com/emmanuelronoh/backend/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	return &entity.Note{
		Id:          n.Id,
		Title:       n.Title,
		Content:     n.Content,
		Tags:        []string(n.Tags),
		DateCreated: n.DateCreated,
		UserId:      n.UserId,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	return &model.Note{
		Id:          n.Id,
		Title:       n.Title,
		Content:     n.Content,
		Tags:        datatypes.NewJSONSlice(n.Tags),
		DateCreated: n.DateCreated,
		UserId:      n.UserId,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func (m *NoteMapper) SnapshotToModel(e *entity.EditorContent) *model.EditorContent {
	if e == nil {
		return nil
	}

	return &model.EditorContent{
		Id:        e.Id,
		NoteId:    e.NoteId,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
	}
}
