package middleware

import (
	"net/http" // HTTP status codes
	"net/url"  // Query escaping for the next param

	"github.com/AzizElBechir/AzPay/internal/session" // Session store
	"github.com/AzizElBechir/AzPay/internal/utils"   // Session token functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "azpay_session"

const userIDKey = "userID"

// SessionAuth resolves the logged-in identity from the session cookie.
// Requests without a live session are redirected to the login page with
// the original path in the next query param.
func SessionAuth(sessions session.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName) // Read the session cookie
		if err != nil {
			redirectToLogin(c) // No cookie, not logged in
			return
		}
		claims, err := utils.ParseSessionToken(token, secret) // Parse and verify the token
		if err != nil {
			redirectToLogin(c) // Invalid or expired token
			return
		}
		sess, err := sessions.Get(c.Request.Context(), claims.SessionID) // Load the server-side session
		if err != nil {
			redirectToLogin(c) // Session gone (logged out or expired)
			return
		}
		c.Set(userIDKey, sess.UserID) // Store userID in context
		c.Next()                      // Proceed to the next handler
	}
}

// CurrentUserID returns the authenticated user id set by SessionAuth
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// redirectToLogin aborts the request with a redirect to /login
func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
	c.Abort()
}
