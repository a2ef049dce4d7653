package controller

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/emmanuelronoh/backend/internal/dto"
)

func TestUsersEndpoint(t *testing.T) {
	t.Run("lists users without requiring a session", func(t *testing.T) {
		svc := &mockUserService{}
		app, _ := newTestApp(t, func(api fiber.Router, requireSession fiber.Handler) {
			NewUserController(svc).RegisterRoutes(api)
		})

		svc.On("List", mock.Anything).Return([]*dto.UserResponse{
			{Id: 1, Email: "user1@example.com"},
			{Id: 2, Email: "user2@example.com"},
		}, nil)

		res, err := app.Test(jsonRequest(t, "GET", "/api/users", ""), -1)

		require.NoError(t, err)
		assert.Equal(t, 200, res.StatusCode)

		var users []map[string]interface{}
		require.NoError(t, json.NewDecoder(res.Body).Decode(&users))
		require.Len(t, users, 2)
		assert.Equal(t, "user1@example.com", users[0]["email"])

		// Nothing beyond the public fields leaks
		_, hasHash := users[0]["password_hash"]
		assert.False(t, hasHash)
		assert.Len(t, users[0], 2)
	})
}
