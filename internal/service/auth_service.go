package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/emmanuelronoh/backend/internal/dto"
	"github.com/emmanuelronoh/backend/internal/entity"
	"github.com/emmanuelronoh/backend/internal/pkg/logger"
	"github.com/emmanuelronoh/backend/internal/pkg/mailer"
	"github.com/emmanuelronoh/backend/internal/pkg/serverutils"
	"github.com/emmanuelronoh/backend/internal/pkg/session"
	"github.com/emmanuelronoh/backend/internal/repository/specification"
	"github.com/emmanuelronoh/backend/internal/repository/unitofwork"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *dto.SessionCredentials, error)
	Logout(ctx context.Context, sessionToken string) error
	CurrentUser(ctx context.Context, userId uint) (*dto.UserResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
}

type authService struct {
	uowFactory    unitofwork.RepositoryFactory
	emailService  mailer.IEmailService
	sessions      session.Store
	logger        logger.ILogger
	sessionSecret string
	sessionTTL    time.Duration
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	sessions session.Store,
	log logger.ILogger,
	sessionSecret string,
	sessionTTL time.Duration,
) IAuthService {
	return &authService{
		uowFactory:    uowFactory,
		emailService:  emailService,
		sessions:      sessions,
		logger:        log,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewBadRequest("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		s.logger.Error("auth", "error creating user", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.UserResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *dto.SessionCredentials, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, serverutils.NewNotFound("User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, serverutils.NewUnauthorized("Invalid password")
	}

	sess := &session.Session{
		Id:     uuid.New().String(),
		UserId: user.Id,
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, nil, err
	}

	expiresAt := time.Now().Add(s.sessionTTL)
	token, err := serverutils.SignSessionToken(s.sessionSecret, sess.Id, user.Id, s.sessionTTL)
	if err != nil {
		return nil, nil, err
	}

	res := &dto.LoginResponse{
		Message: "Login successful",
		User:    dto.UserResponse{Id: user.Id, Email: user.Email},
	}
	creds := &dto.SessionCredentials{Token: token, ExpiresAt: expiresAt}

	return res, creds, nil
}

// Logout is idempotent: an absent or invalid token clears nothing and still
// succeeds.
func (s *authService) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}

	sid, _, err := serverutils.ParseSessionToken(s.sessionSecret, sessionToken)
	if err != nil {
		return nil
	}

	if err := s.sessions.Delete(ctx, sid); err != nil {
		s.logger.Warn("auth", "failed to delete session", map[string]interface{}{"error": err.Error()})
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, userId uint) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewUnauthorized("Unauthorized")
	}

	return &dto.UserResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		// Don't leak whether the email is registered
		return nil
	}

	resetToken := &entity.PasswordResetToken{
		UserId:    user.Id,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(1 * time.Hour),
		Used:      false,
		CreatedAt: time.Now(),
	}

	if err := uow.UserRepository().CreatePasswordResetToken(ctx, resetToken); err != nil {
		return err
	}

	go func() {
		if emailErr := s.emailService.SendResetToken(user.Email, resetToken.Token); emailErr != nil {
			s.logger.Error("auth", "error sending reset password email", map[string]interface{}{
				"error": emailErr.Error(),
			})
		}
	}()

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tokenEntity, err := uow.UserRepository().FindPasswordResetToken(ctx, specification.ByToken{Token: req.Token})
	if err != nil || tokenEntity == nil {
		return serverutils.NewBadRequest("Invalid or expired token")
	}

	if tokenEntity.Used {
		return serverutils.NewBadRequest("This password reset link has already been used")
	}

	if time.Now().After(tokenEntity.ExpiresAt) {
		return serverutils.NewBadRequest("This password reset link has expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().UpdatePassword(ctx, tokenEntity.UserId, string(hash)); err != nil {
		return err
	}

	if err := uow.UserRepository().MarkTokenUsed(ctx, tokenEntity.Id); err != nil {
		return err
	}

	return uow.Commit()
}
