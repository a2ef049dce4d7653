package service

import (
	"context"

	"github.com/emmanuelronoh/backend/internal/dto"
	"github.com/emmanuelronoh/backend/internal/repository/unitofwork"
)

type IUserService interface {
	List(ctx context.Context) ([]*dto.UserResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) List(ctx context.Context) ([]*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.UserResponse, len(users))
	for i, user := range users {
		res[i] = &dto.UserResponse{Id: user.Id, Email: user.Email}
	}
	return res, nil
}
