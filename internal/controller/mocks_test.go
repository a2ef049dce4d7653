package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/emmanuelronoh/backend/internal/dto"
	"github.com/emmanuelronoh/backend/internal/pkg/logger"
	"github.com/emmanuelronoh/backend/internal/pkg/serverutils"
	"github.com/emmanuelronoh/backend/internal/pkg/session"
)

const testSecret = "test_secret"

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	var res *dto.UserResponse
	if v := args.Get(0); v != nil {
		res = v.(*dto.UserResponse)
	}
	return res, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *dto.SessionCredentials, error) {
	args := m.Called(ctx, req)
	var res *dto.LoginResponse
	if v := args.Get(0); v != nil {
		res = v.(*dto.LoginResponse)
	}
	var creds *dto.SessionCredentials
	if v := args.Get(1); v != nil {
		creds = v.(*dto.SessionCredentials)
	}
	return res, creds, args.Error(2)
}

func (m *mockAuthService) Logout(ctx context.Context, sessionToken string) error {
	args := m.Called(ctx, sessionToken)
	return args.Error(0)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userId uint) (*dto.UserResponse, error) {
	args := m.Called(ctx, userId)
	var res *dto.UserResponse
	if v := args.Get(0); v != nil {
		res = v.(*dto.UserResponse)
	}
	return res, args.Error(1)
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type mockNoteService struct {
	mock.Mock
}

func (m *mockNoteService) List(ctx context.Context, userId uint) ([]*dto.NoteResponse, error) {
	args := m.Called(ctx, userId)
	var res []*dto.NoteResponse
	if v := args.Get(0); v != nil {
		res = v.([]*dto.NoteResponse)
	}
	return res, args.Error(1)
}

func (m *mockNoteService) Create(ctx context.Context, userId uint, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	args := m.Called(ctx, userId, req)
	var res *dto.NoteResponse
	if v := args.Get(0); v != nil {
		res = v.(*dto.NoteResponse)
	}
	return res, args.Error(1)
}

func (m *mockNoteService) Show(ctx context.Context, userId uint, id uint) (*dto.NoteResponse, error) {
	args := m.Called(ctx, userId, id)
	var res *dto.NoteResponse
	if v := args.Get(0); v != nil {
		res = v.(*dto.NoteResponse)
	}
	return res, args.Error(1)
}

func (m *mockNoteService) ShowByTitle(ctx context.Context, userId uint, title string) (*dto.NoteResponse, error) {
	args := m.Called(ctx, userId, title)
	var res *dto.NoteResponse
	if v := args.Get(0); v != nil {
		res = v.(*dto.NoteResponse)
	}
	return res, args.Error(1)
}

func (m *mockNoteService) Update(ctx context.Context, userId uint, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	args := m.Called(ctx, userId, req)
	var res *dto.NoteResponse
	if v := args.Get(0); v != nil {
		res = v.(*dto.NoteResponse)
	}
	return res, args.Error(1)
}

func (m *mockNoteService) Delete(ctx context.Context, userId uint, id uint) error {
	args := m.Called(ctx, userId, id)
	return args.Error(0)
}

type mockContactService struct {
	mock.Mock
}

func (m *mockContactService) Create(ctx context.Context, req *dto.ContactRequest) (*dto.ContactResponse, error) {
	args := m.Called(ctx, req)
	var res *dto.ContactResponse
	if v := args.Get(0); v != nil {
		res = v.(*dto.ContactResponse)
	}
	return res, args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) List(ctx context.Context) ([]*dto.UserResponse, error) {
	args := m.Called(ctx)
	var res []*dto.UserResponse
	if v := args.Get(0); v != nil {
		res = v.([]*dto.UserResponse)
	}
	return res, args.Error(1)
}

// newTestApp mirrors the server wiring: error handler middleware and routes
// registered under /api, with a real session middleware over a memory store.
func newTestApp(t *testing.T, register func(api fiber.Router, requireSession fiber.Handler)) (*fiber.App, *session.MemoryStore) {
	t.Helper()

	sessions := session.NewMemoryStore(time.Hour)
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(logger.NewNopLogger()))

	api := app.Group("/api")
	register(api, serverutils.NewSessionMiddleware(testSecret, sessions))

	return app, sessions
}

// loginAs saves a live session and returns the cookie that authenticates it.
func loginAs(t *testing.T, sessions *session.MemoryStore, userId uint) *http.Cookie {
	t.Helper()

	sess := &session.Session{Id: "sid-" + time.Now().Format("150405.000000000"), UserId: userId}
	require.NoError(t, sessions.Save(context.Background(), sess))

	token, err := serverutils.SignSessionToken(testSecret, sess.Id, userId, time.Hour)
	require.NoError(t, err)

	return &http.Cookie{Name: serverutils.SessionCookieName, Value: token}
}

func jsonRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func decodeBody(t *testing.T, res *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body
}
