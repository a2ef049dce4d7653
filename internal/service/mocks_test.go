package service

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/mock"

	"github.com/emmanuelronoh/backend/internal/entity"
	"github.com/emmanuelronoh/backend/internal/repository/contract"
	"github.com/emmanuelronoh/backend/internal/repository/specification"
	"github.com/emmanuelronoh/backend/internal/repository/unitofwork"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	args := m.Called(ctx, specs)
	var u *entity.User
	if v := args.Get(0); v != nil {
		u = v.(*entity.User)
	}
	return u, args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	args := m.Called(ctx, specs)
	var users []*entity.User
	if v := args.Get(0); v != nil {
		users = v.([]*entity.User)
	}
	return users, args.Error(1)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userId uint, passwordHash string) error {
	args := m.Called(ctx, userId, passwordHash)
	return args.Error(0)
}

func (m *mockUserRepository) CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockUserRepository) FindPasswordResetToken(ctx context.Context, specs ...specification.Specification) (*entity.PasswordResetToken, error) {
	args := m.Called(ctx, specs)
	var t *entity.PasswordResetToken
	if v := args.Get(0); v != nil {
		t = v.(*entity.PasswordResetToken)
	}
	return t, args.Error(1)
}

func (m *mockUserRepository) MarkTokenUsed(ctx context.Context, tokenId uint) error {
	args := m.Called(ctx, tokenId)
	return args.Error(0)
}

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *mockNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *mockNoteRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockNoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	args := m.Called(ctx, specs)
	var n *entity.Note
	if v := args.Get(0); v != nil {
		n = v.(*entity.Note)
	}
	return n, args.Error(1)
}

func (m *mockNoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	args := m.Called(ctx, specs)
	var notes []*entity.Note
	if v := args.Get(0); v != nil {
		notes = v.([]*entity.Note)
	}
	return notes, args.Error(1)
}

type mockContactRepository struct {
	mock.Mock
}

func (m *mockContactRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type mockEditorContentRepository struct {
	mock.Mock
}

func (m *mockEditorContentRepository) Create(ctx context.Context, snapshot *entity.EditorContent) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

// fakeUnitOfWork hands out the mock repositories and counts transaction calls.
type fakeUnitOfWork struct {
	users     *mockUserRepository
	notes     *mockNoteRepository
	contacts  *mockContactRepository
	snapshots *mockEditorContentRepository

	beginErr  error
	commitErr error

	begins    int
	commits   int
	rollbacks int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		users:     &mockUserRepository{},
		notes:     &mockNoteRepository{},
		contacts:  &mockContactRepository{},
		snapshots: &mockEditorContentRepository{},
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.begins++
	return u.beginErr
}

func (u *fakeUnitOfWork) Commit() error {
	if u.commitErr != nil {
		return u.commitErr
	}
	u.commits++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	u.rollbacks++
	return nil
}

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return u.users }

func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository { return u.notes }

func (u *fakeUnitOfWork) ContactRepository() contract.ContactRepository { return u.contacts }

func (u *fakeUnitOfWork) EditorContentRepository() contract.EditorContentRepository {
	return u.snapshots
}

type fakeRepositoryFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeRepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// fakePublisher records published messages per topic.
type fakePublisher struct {
	mu       sync.Mutex
	topics   []string
	messages []*message.Message
	err      error
}

func (p *fakePublisher) Publish(topic string, messages ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	for _, msg := range messages {
		p.topics = append(p.topics, topic)
		p.messages = append(p.messages, msg)
	}
	return nil
}

func (p *fakePublisher) Close() error { return nil }

// fakeEmailService records sends; safe for the goroutine sends the services do.
type fakeEmailService struct {
	mu          sync.Mutex
	resetTokens []string
	notices     []string
}

func (s *fakeEmailService) SendResetToken(toEmail, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetTokens = append(s.resetTokens, token)
	return nil
}

func (s *fakeEmailService) SendContactNotice(toEmail string, message *entity.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, toEmail)
	return nil
}

func (s *fakeEmailService) resetTokenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.resetTokens)
}

func (s *fakeEmailService) noticeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notices)
}

func hasSpec(specs []specification.Specification, want specification.Specification) bool {
	for _, spec := range specs {
		if spec == want {
			return true
		}
	}
	return false
}
