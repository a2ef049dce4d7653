package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/emmanuelronoh/backend/internal/pkg/session"
)

// LocalsUserId is the fiber locals key holding the authenticated user id.
const LocalsUserId = "user_id"

// NewSessionMiddleware authenticates requests from the signed session cookie.
// The token must verify and the session id must still exist in the store, so
// logout revokes access immediately.
func NewSessionMiddleware(secret string, sessions session.Store) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := ctx.Cookies(SessionCookieName)
		if tokenStr == "" {
			return NewUnauthorized("Unauthorized")
		}

		sid, _, err := ParseSessionToken(secret, tokenStr)
		if err != nil {
			return NewUnauthorized("Unauthorized")
		}

		sess, err := sessions.Get(ctx.Context(), sid)
		if err != nil {
			return err
		}
		if sess == nil {
			return NewUnauthorized("Unauthorized")
		}

		ctx.Locals(LocalsUserId, sess.UserId)
		return ctx.Next()
	}
}
