package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/emmanuelronoh/backend/internal/dto"
	"github.com/emmanuelronoh/backend/internal/entity"
	"github.com/emmanuelronoh/backend/internal/pkg/logger"
	"github.com/emmanuelronoh/backend/internal/pkg/serverutils"
	"github.com/emmanuelronoh/backend/internal/repository/specification"
	"github.com/emmanuelronoh/backend/internal/repository/unitofwork"
	"github.com/emmanuelronoh/backend/pkg/events"
)

type INoteService interface {
	List(ctx context.Context, userId uint) ([]*dto.NoteResponse, error)
	Create(ctx context.Context, userId uint, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, userId uint, id uint) (*dto.NoteResponse, error)
	ShowByTitle(ctx context.Context, userId uint, title string) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uint, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId uint, id uint) error
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  message.Publisher
	logger     logger.ILogger
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, publisher message.Publisher, log logger.ILogger) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *noteService) List(ctx context.Context, userId uint) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "date_created", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NoteResponse, len(notes))
	for i, note := range notes {
		res[i] = toNoteResponse(note)
	}
	return res, nil
}

func (s *noteService) Create(ctx context.Context, userId uint, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := &entity.Note{
		Title:       req.Title,
		Content:     req.Content,
		Tags:        req.Tags,
		DateCreated: time.Now(),
		UserId:      userId,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		s.logger.Error("note", "error creating note", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return nil, serverutils.NewInternal("Failed to create note")
	}

	if err := uow.Commit(); err != nil {
		s.logger.Error("note", "error committing note create", map[string]interface{}{"error": err.Error()})
		return nil, serverutils.NewInternal("Failed to create note")
	}

	s.captureContent(note)

	return toNoteResponse(note), nil
}

func (s *noteService) Show(ctx context.Context, userId uint, id uint) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NewNotFound("Note not found or forbidden")
	}

	return toNoteResponse(note), nil
}

func (s *noteService) ShowByTitle(ctx context.Context, userId uint, title string) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByTitle{Title: title},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NewNotFound("Note not found or forbidden")
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Update(ctx context.Context, userId uint, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NewNotFound("Note not found or forbidden")
	}

	// Absent fields stay unchanged
	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		s.logger.Error("note", "error updating note", map[string]interface{}{
			"note_id": note.Id,
			"error":   err.Error(),
		})
		return nil, serverutils.NewInternal("Failed to update note")
	}

	if err := uow.Commit(); err != nil {
		s.logger.Error("note", "error committing note update", map[string]interface{}{"error": err.Error()})
		return nil, serverutils.NewInternal("Failed to update note")
	}

	if req.Content != nil {
		s.captureContent(note)
	}

	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, userId uint, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if note == nil {
		return serverutils.NewNotFound("Note not found or forbidden")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		s.logger.Error("note", "error deleting note", map[string]interface{}{
			"note_id": note.Id,
			"error":   err.Error(),
		})
		return err
	}

	return uow.Commit()
}

// captureContent publishes a content snapshot for the history consumer.
// Best-effort: a publish failure never fails the request.
func (s *noteService) captureContent(note *entity.Note) {
	event := events.NoteContentCaptured{
		NoteId:     note.Id,
		Content:    note.Content,
		OccurredAt: time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Warn("note", "failed to marshal content snapshot event", map[string]interface{}{"error": err.Error()})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(events.TopicNoteContentCaptured, msg); err != nil {
		s.logger.Warn("note", "failed to publish content snapshot event", map[string]interface{}{
			"note_id": note.Id,
			"error":   err.Error(),
		})
	}
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.NoteResponse{
		Id:          note.Id,
		Title:       note.Title,
		Content:     note.Content,
		Tags:        tags,
		UserId:      note.UserId,
		DateCreated: note.DateCreated,
	}
}
