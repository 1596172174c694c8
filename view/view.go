// Package view renders HTML pages with the chrome every page shares: the
// logged-in user, the cart quantity badge and any pending flash notices.
package view

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/middleware"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/store"
)

// Flash queues a one-shot notice for the next rendered page. Kind is one of
// "error", "success" or "info".
func Flash(c *gin.Context, kind, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, kind)
	_ = session.Save()
}

// HTML renders a template, merging the shared page data into the handler's.
func HTML(c *gin.Context, st store.Store, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["SearchQuery"]; !ok {
		data["SearchQuery"] = "" // navbar search box renders on every page
	}

	if user, ok := middleware.UserFrom(c); ok {
		data["User"] = user
		data["CartCount"] = cartCount(st, user.ID)
	} else if userID, ok := middleware.SessionUserID(c); ok {
		// Public pages outside the auth guard still show the badge.
		if u, err := st.UserByID(userID); err == nil {
			data["User"] = middleware.AuthedUser{ID: u.ID, Username: u.Username, Email: u.Email}
			data["CartCount"] = cartCount(st, u.ID)
		}
	}

	session := sessions.Default(c)
	data["Errors"] = drain(session.Flashes("error"))
	data["Successes"] = drain(session.Flashes("success"))
	data["Infos"] = drain(session.Flashes("info"))
	_ = session.Save() // flashes are consumed on read

	c.HTML(code, name, data)
}

func cartCount(st store.Store, userID uint) int {
	lines, err := st.CartLinesForUser(userID)
	if err != nil {
		return 0
	}
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}

func drain(flashes []interface{}) []string {
	var out []string
	for _, f := range flashes {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
