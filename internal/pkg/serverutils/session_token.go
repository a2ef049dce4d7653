package serverutils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session_token"

// SignSessionToken mints the signed cookie value: a JWT carrying the
// server-side session id and the user id.
func SignSessionToken(secret, sessionId string, userId uint, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sid":     sessionId,
		"user_id": userId,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken verifies the cookie value and returns the session id and
// user id embedded in it.
func ParseSessionToken(secret, tokenStr string) (string, uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", 0, fmt.Errorf("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0, fmt.Errorf("invalid claims")
	}

	sid, ok := claims["sid"].(string)
	if !ok {
		return "", 0, fmt.Errorf("invalid session id claim")
	}

	rawUserId, ok := claims["user_id"].(float64)
	if !ok {
		return "", 0, fmt.Errorf("invalid user id claim")
	}

	return sid, uint(rawUserId), nil
}
