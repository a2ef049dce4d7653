package contract

import (
	"context"

	"github.com/emmanuelronoh/backend/internal/entity"
)

// EditorContentRepository is write-only: snapshots are history records that no
// exposed operation reads back.
type EditorContentRepository interface {
	Create(ctx context.Context, snapshot *entity.EditorContent) error
}
