package api

import (
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/AzizElBechir/AzPay/internal/auth"       // Authentication service
	"github.com/AzizElBechir/AzPay/internal/middleware" // Session cookie name
	"github.com/AzizElBechir/AzPay/internal/session"    // Session store
	"github.com/AzizElBechir/AzPay/internal/utils"      // Session token functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// cookieMaxAge matches the session TTL
const cookieMaxAge = 24 * 60 * 60

// IndexHandler renders the public landing page
func IndexHandler(sessions session.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, loggedIn := resolveSessionUser(c, sessions, secret)
		c.HTML(http.StatusOK, "index.html", gin.H{"LoggedIn": loggedIn})
	}
}

// ShowLoginHandler renders the login form; logged-in users go home
func ShowLoginHandler(sessions session.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, loggedIn := resolveSessionUser(c, sessions, secret); loggedIn {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.HTML(http.StatusOK, "login.html", gin.H{"Next": c.Query("next")})
	}
}

// LoginHandler verifies credentials and establishes a session
func LoginHandler(authSvc *auth.Service, sessions session.Store, secret string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")       // Submitted email
		password := c.PostForm("password") // Submitted password
		user, err := authSvc.Authenticate(c.Request.Context(), email, password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				// Same message for unknown email and wrong password
				c.HTML(http.StatusOK, "login.html", gin.H{
					"Error": "Invalid email or password",
					"Email": email,
					"Next":  c.PostForm("next"),
				})
				return
			}
			logrus.WithFields(logrus.Fields{"email": email, "error": err.Error()}).Error("Login failed")
			c.String(http.StatusInternalServerError, "something went wrong")
			return
		}
		// Establish the session and set the cookie
		if err := startSession(c, sessions, secret, secure, user.ID); err != nil {
			logrus.WithFields(logrus.Fields{"user_id": user.ID, "error": err.Error()}).Error("Failed to start session")
			c.String(http.StatusInternalServerError, "something went wrong")
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": user.ID}).Info("User logged in")
		c.Redirect(http.StatusFound, safeNext(c.PostForm("next")))
	}
}

// ShowSignupHandler renders the signup form; logged-in users go home
func ShowSignupHandler(sessions session.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, loggedIn := resolveSessionUser(c, sessions, secret); loggedIn {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.HTML(http.StatusOK, "signup.html", gin.H{})
	}
}

// SignupHandler creates an account and logs the new user in
func SignupHandler(authSvc *auth.Service, sessions session.Store, secret string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("email")       // Submitted email
		password := c.PostForm("password") // Submitted password
		name := c.PostForm("name")         // Submitted display name
		user, err := authSvc.Register(c.Request.Context(), email, password, name)
		if err != nil {
			if errors.Is(err, auth.ErrEmailTaken) {
				// Redisplay the form with the duplicate-email message
				c.HTML(http.StatusOK, "signup.html", gin.H{
					"Error": "Email already registered",
					"Email": email,
					"Name":  name,
				})
				return
			}
			logrus.WithFields(logrus.Fields{"email": email, "error": err.Error()}).Error("Signup failed")
			c.String(http.StatusInternalServerError, "something went wrong")
			return
		}
		// Registration doubles as login
		if err := startSession(c, sessions, secret, secure, user.ID); err != nil {
			logrus.WithFields(logrus.Fields{"user_id": user.ID, "error": err.Error()}).Error("Failed to start session")
			c.String(http.StatusInternalServerError, "something went wrong")
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": user.ID}).Info("User registered")
		c.Redirect(http.StatusFound, "/")
	}
}

// LogoutHandler clears the session and the cookie
func LogoutHandler(sessions session.Store, secret string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(middleware.CookieName); err == nil {
			// Delete the server-side session; deleting twice is harmless
			if claims, err := utils.ParseSessionToken(token, secret); err == nil {
				_ = sessions.Delete(c.Request.Context(), claims.SessionID)
			}
		}
		c.SetCookie(middleware.CookieName, "", -1, "/", "", secure, true) // Expire the cookie
		c.Redirect(http.StatusFound, "/")
	}
}

// startSession creates a session for userID and sets the signed cookie
func startSession(c *gin.Context, sessions session.Store, secret string, secure bool, userID uint) error {
	sess, err := sessions.Create(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	token, err := utils.GenerateSessionToken(sess.ID, secret)
	if err != nil {
		return err
	}
	c.SetCookie(middleware.CookieName, token, cookieMaxAge, "/", "", secure, true)
	return nil
}

// resolveSessionUser resolves the cookie to a user id without redirecting,
// for pages that merely adapt to login state
func resolveSessionUser(c *gin.Context, sessions session.Store, secret string) (uint, bool) {
	token, err := c.Cookie(middleware.CookieName)
	if err != nil {
		return 0, false
	}
	claims, err := utils.ParseSessionToken(token, secret)
	if err != nil {
		return 0, false
	}
	sess, err := sessions.Get(c.Request.Context(), claims.SessionID)
	if err != nil {
		return 0, false
	}
	return sess.UserID, true
}

// safeNext keeps post-login redirects on this site
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}
