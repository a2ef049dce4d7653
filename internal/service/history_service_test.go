package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/emmanuelronoh/backend/internal/entity"
	"github.com/emmanuelronoh/backend/internal/pkg/logger"
	"github.com/emmanuelronoh/backend/pkg/events"
)

func TestHistoryServiceAppendsSnapshots(t *testing.T) {
	uow := newFakeUnitOfWork()
	bus := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer bus.Close()

	svc := NewHistoryService(&fakeRepositoryFactory{uow: uow}, bus, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	// Let the subscription attach before publishing
	time.Sleep(50 * time.Millisecond)

	savedCh := make(chan *entity.EditorContent, 1)
	uow.snapshots.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		savedCh <- args.Get(1).(*entity.EditorContent)
	}).Return(nil)

	payload, err := json.Marshal(events.NoteContentCaptured{
		NoteId:     7,
		Content:    "captured content",
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)

	err = bus.Publish(events.TopicNoteContentCaptured, message.NewMessage(watermill.NewUUID(), payload))
	require.NoError(t, err)

	var saved *entity.EditorContent
	select {
	case saved = <-savedCh:
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot was never written")
	}
	assert.Equal(t, uint(7), saved.NoteId)
	assert.Equal(t, "captured content", saved.Content)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancel")
	}
}

func TestHistoryServiceDropsMalformedEvents(t *testing.T) {
	uow := newFakeUnitOfWork()
	bus := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer bus.Close()

	svc := NewHistoryService(&fakeRepositoryFactory{uow: uow}, bus, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go svc.Run(ctx)
	time.Sleep(50 * time.Millisecond)

	err := bus.Publish(events.TopicNoteContentCaptured, message.NewMessage(watermill.NewUUID(), []byte("not json")))
	require.NoError(t, err)

	// Give the consumer time to see the message; nothing should be written.
	time.Sleep(100 * time.Millisecond)
	uow.snapshots.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
