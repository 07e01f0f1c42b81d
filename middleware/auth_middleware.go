package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const adminSessionKey = "is_admin"

// NewSessionStore builds the server-side session store backing admin auth.
// Only a session id travels in the cookie; the admin flag never leaves the
// server.
func NewSessionStore() *session.Store {
	return session.New(session.Config{
		Expiration:     12 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// AdminRequired gates dashboard mutations on the session flag set by a
// successful PIN validation. Evaluated per request, never cached.
func AdminRequired(sessions *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !IsAdmin(sessions, c) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Admin access required",
			})
		}
		return c.Next()
	}
}

// MarkAdmin flags the caller's session as admin-authorized.
func MarkAdmin(sessions *session.Store, c *fiber.Ctx) error {
	sess, err := sessions.Get(c)
	if err != nil {
		return err
	}
	sess.Set(adminSessionKey, true)
	return sess.Save()
}

// IsAdmin reads the session flag; false on any error.
func IsAdmin(sessions *session.Store, c *fiber.Ctx) bool {
	sess, err := sessions.Get(c)
	if err != nil {
		return false
	}
	isAdmin, ok := sess.Get(adminSessionKey).(bool)
	return ok && isAdmin
}

// ClearSession destroys the caller's session.
func ClearSession(sessions *session.Store, c *fiber.Ctx) error {
	sess, err := sessions.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
