package service

import (
	"context"
	"time"

	"github.com/emmanuelronoh/backend/internal/dto"
	"github.com/emmanuelronoh/backend/internal/entity"
	"github.com/emmanuelronoh/backend/internal/pkg/logger"
	"github.com/emmanuelronoh/backend/internal/pkg/mailer"
	"github.com/emmanuelronoh/backend/internal/pkg/serverutils"
	"github.com/emmanuelronoh/backend/internal/repository/unitofwork"
)

type IContactService interface {
	Create(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error)
}

type contactService struct {
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
	logger       logger.ILogger
	// contactInbox receives a copy of each submission; empty disables the notice.
	contactInbox string
}

func NewContactService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, log logger.ILogger, contactInbox string) IContactService {
	return &contactService{
		uowFactory:   uowFactory,
		emailService: emailService,
		logger:       log,
		contactInbox: contactInbox,
	}
}

func (s *contactService) Create(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	message := &entity.ContactMessage{
		Name:        req.Name,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
		DateCreated: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ContactRepository().Create(ctx, message); err != nil {
		s.logger.Error("contact", "error saving contact message", map[string]interface{}{"error": err.Error()})
		return nil, serverutils.NewInternal("Failed to send message")
	}

	if err := uow.Commit(); err != nil {
		s.logger.Error("contact", "error committing contact message", map[string]interface{}{"error": err.Error()})
		return nil, serverutils.NewInternal("Failed to send message")
	}

	if s.contactInbox != "" {
		notice := *message
		go func() {
			if emailErr := s.emailService.SendContactNotice(s.contactInbox, &notice); emailErr != nil {
				s.logger.Error("contact", "error sending contact notice email", map[string]interface{}{
					"error": emailErr.Error(),
				})
			}
		}()
	}

	return &dto.ContactResponse{
		Id:          message.Id,
		Name:        message.Name,
		Email:       message.Email,
		Subject:     message.Subject,
		Message:     message.Message,
		DateCreated: message.DateCreated,
	}, nil
}
