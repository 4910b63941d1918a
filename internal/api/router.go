package api

import (
	"github.com/AzizElBechir/AzPay/internal/auth"       // Authentication service
	"github.com/AzizElBechir/AzPay/internal/middleware" // Session middleware
	"github.com/AzizElBechir/AzPay/internal/session"    // Session store
	"github.com/AzizElBechir/AzPay/internal/store"      // Transaction store

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterRoutes wires the full HTTP surface onto r
func RegisterRoutes(r *gin.Engine, authSvc *auth.Service, sessions session.Store, txs store.TransactionStore, secret string, secure bool) {
	// Public routes
	r.GET("/", IndexHandler(sessions, secret))
	r.GET("/login", ShowLoginHandler(sessions, secret))
	r.POST("/login", LoginHandler(authSvc, sessions, secret, secure))
	r.GET("/signup", ShowSignupHandler(sessions, secret))
	r.POST("/signup", SignupHandler(authSvc, sessions, secret, secure))

	// Protected routes (session required)
	protected := r.Group("")
	protected.Use(middleware.SessionAuth(sessions, secret))
	protected.GET("/logout", LogoutHandler(sessions, secret, secure))
	protected.GET("/payment", ShowPaymentHandler())
	protected.POST("/payment", PaymentHandler(txs))
	protected.GET("/confirmation/:id", ConfirmationHandler(txs))
	protected.GET("/transactions", TransactionHistoryHandler(txs))
}
