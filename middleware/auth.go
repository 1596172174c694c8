package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/store"
)

const (
	sessionUserKey = "user_id"
	ctxUserKey     = "authed_user"
)

// AuthedUser is the identity of the logged-in visitor, resolved once per
// request by RequireLogin and passed to handlers through the context.
type AuthedUser struct {
	ID       uint
	Username string
	Email    string
}

// RequireLogin guards a route group: without a valid session the request is
// redirected to the login page, carrying the original path so login can send
// the visitor back.
func RequireLogin(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		raw := session.Get(sessionUserKey)
		userID, ok := raw.(uint)
		if !ok {
			redirectToLogin(c)
			return
		}

		user, err := st.UserByID(userID)
		if err != nil {
			// Stale cookie for a user we no longer know about.
			session.Delete(sessionUserKey)
			_ = session.Save()
			redirectToLogin(c)
			return
		}

		c.Set(ctxUserKey, AuthedUser{ID: user.ID, Username: user.Username, Email: user.Email})
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, "/login?next="+next)
	c.Abort()
}

// UserFrom returns the authenticated user set by RequireLogin.
func UserFrom(c *gin.Context) (AuthedUser, bool) {
	v, exists := c.Get(ctxUserKey)
	if !exists {
		return AuthedUser{}, false
	}
	u, ok := v.(AuthedUser)
	return u, ok
}

// LoginSession records the user id in the cookie session.
func LoginSession(c *gin.Context, userID uint) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, userID)
	return session.Save()
}

// LogoutSession drops the whole session.
func LogoutSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}

// SessionUserID reads the logged-in user id without requiring the guard, for
// pages that render differently for visitors and customers.
func SessionUserID(c *gin.Context) (uint, bool) {
	raw := sessions.Default(c).Get(sessionUserKey)
	id, ok := raw.(uint)
	return id, ok
}
