package contract

import (
	"context"

	"github.com/emmanuelronoh/backend/internal/entity"
)

type ContactRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
}
