package implementation

import (
	"context"

	"gorm.io/gorm"

	"github.com/emmanuelronoh/backend/internal/entity"
	"github.com/emmanuelronoh/backend/internal/mapper"
	"github.com/emmanuelronoh/backend/internal/repository/contract"
)

type EditorContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewEditorContentRepository(db *gorm.DB) contract.EditorContentRepository {
	return &EditorContentRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *EditorContentRepositoryImpl) Create(ctx context.Context, snapshot *entity.EditorContent) error {
	m := r.mapper.SnapshotToModel(snapshot)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	snapshot.Id = m.Id
	snapshot.CreatedAt = m.CreatedAt
	return nil
}
