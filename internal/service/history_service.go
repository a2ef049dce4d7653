package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/emmanuelronoh/backend/internal/entity"
	"github.com/emmanuelronoh/backend/internal/pkg/logger"
	"github.com/emmanuelronoh/backend/internal/repository/unitofwork"
	"github.com/emmanuelronoh/backend/pkg/events"
)

// IHistoryService consumes note content snapshot events and appends them to
// the editor_content table. Runs in the background; nothing reads the rows
// back through the API.
type IHistoryService interface {
	Run(ctx context.Context) error
}

type historyService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber message.Subscriber
	logger     logger.ILogger
}

func NewHistoryService(uowFactory unitofwork.RepositoryFactory, subscriber message.Subscriber, log logger.ILogger) IHistoryService {
	return &historyService{
		uowFactory: uowFactory,
		subscriber: subscriber,
		logger:     log,
	}
}

func (s *historyService) Run(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, events.TopicNoteContentCaptured)
	if err != nil {
		return err
	}

	for msg := range messages {
		s.handle(ctx, msg)
		msg.Ack()
	}
	return nil
}

func (s *historyService) handle(ctx context.Context, msg *message.Message) {
	var event events.NoteContentCaptured
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		s.logger.Warn("history", "dropping malformed snapshot event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	snapshot := &entity.EditorContent{
		NoteId:    event.NoteId,
		Content:   event.Content,
		CreatedAt: time.Now(),
	}

	if err := uow.EditorContentRepository().Create(ctx, snapshot); err != nil {
		s.logger.Error("history", "error saving content snapshot", map[string]interface{}{
			"note_id": event.NoteId,
			"error":   err.Error(),
		})
	}
}
