package api

import (
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"time"     // Server clock for validation and persistence

	"github.com/AzizElBechir/AzPay/internal/domain"     // Domain models
	"github.com/AzizElBechir/AzPay/internal/middleware" // Current identity helper
	"github.com/AzizElBechir/AzPay/internal/payment"    // Payment validator
	"github.com/AzizElBechir/AzPay/internal/store"      // Transaction store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ShowPaymentHandler renders an empty payment form
func ShowPaymentHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "payment.html", gin.H{"Form": payment.Form{}, "Errors": payment.FieldErrors{}})
	}
}

// PaymentHandler validates a submission and records the transaction
func PaymentHandler(txs store.TransactionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c) // Set by SessionAuth
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		// Raw field values exactly as submitted
		form := payment.Form{
			CardNumber:     c.PostForm("card_number"),
			ExpiryDate:     c.PostForm("expiry_date"),
			CVV:            c.PostForm("cvv"),
			CardholderName: c.PostForm("cardholder_name"),
			Amount:         c.PostForm("amount"),
		}
		now := time.Now()
		normalized, fieldErrs := payment.Validate(form, now)
		if fieldErrs != nil {
			// Redisplay the form with every error and the original input
			c.HTML(http.StatusOK, "payment.html", gin.H{"Errors": fieldErrs, "Form": form})
			return
		}
		tx := &domain.Transaction{
			ID:           normalized.ID,           // Generated transaction id
			UserID:       userID,                  // Owned by the current identity
			Date:         now,                     // Server clock
			Amount:       normalized.Amount,       // Parsed amount
			CardLastFour: normalized.CardLastFour, // Last four card digits
			Cardholder:   normalized.Cardholder,   // Trimmed cardholder name
			Status:       normalized.Status,       // Always completed
		}
		if err := txs.Create(c.Request.Context(), tx); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,      // Owning user
				"tx_id":   tx.ID,       // Transaction id
				"error":   err.Error(), // Error message
			}).Error("Failed to record payment")
			c.String(http.StatusInternalServerError, "something went wrong")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   userID,                   // Owning user
			"tx_id":     tx.ID,                    // Transaction id
			"amount":    tx.Amount,                // Payment amount
			"timestamp": now.Format(time.RFC3339), // Current timestamp
		}).Info("Payment recorded")
		c.Redirect(http.StatusFound, "/confirmation/"+tx.ID)
	}
}

// ConfirmationHandler shows a transaction to its owner
func ConfirmationHandler(txs store.TransactionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c) // Set by SessionAuth
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		tx, err := txs.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.String(http.StatusNotFound, "transaction not found")
				return
			}
			logrus.WithFields(logrus.Fields{"tx_id": c.Param("id"), "error": err.Error()}).Error("Failed to load transaction")
			c.String(http.StatusInternalServerError, "something went wrong")
			return
		}
		// Another identity's transaction: deny by redirecting home
		if tx.UserID != userID {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.HTML(http.StatusOK, "confirmation.html", gin.H{"Transaction": tx})
	}
}

// TransactionHistoryHandler lists the caller's transactions, newest first
func TransactionHistoryHandler(txs store.TransactionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c) // Set by SessionAuth
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			return
		}
		list, err := txs.ListByUser(c.Request.Context(), userID)
		if err != nil {
			logrus.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).Error("Failed to list transactions")
			c.String(http.StatusInternalServerError, "something went wrong")
			return
		}
		c.HTML(http.StatusOK, "transactions.html", gin.H{"Transactions": list})
	}
}
