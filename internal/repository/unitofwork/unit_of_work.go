package unitofwork

import (
	"context"

	"github.com/emmanuelronoh/backend/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
	ContactRepository() contract.ContactRepository
	EditorContentRepository() contract.EditorContentRepository
}
