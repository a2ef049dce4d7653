package mapper

import (
	"github.com/emmanuelronoh/backend/internal/entity"
	"github.com/emmanuelronoh/backend/internal/model"
)

type ContactMapper struct{}

func NewContactMapper() *ContactMapper {
	return &ContactMapper{}
}

func (m *ContactMapper) ToEntity(c *model.ContactMessage) *entity.ContactMessage {
	if c == nil {
		return nil
	}

	return &entity.ContactMessage{
		Id:          c.Id,
		Name:        c.Name,
		Email:       c.Email,
		Subject:     c.Subject,
		Message:     c.Message,
		DateCreated: c.DateCreated,
	}
}

func (m *ContactMapper) ToModel(c *entity.ContactMessage) *model.ContactMessage {
	if c == nil {
		return nil
	}

	return &model.ContactMessage{
		Id:          c.Id,
		Name:        c.Name,
		Email:       c.Email,
		Subject:     c.Subject,
		Message:     c.Message,
		DateCreated: c.DateCreated,
	}
}
