// Package payment validates raw payment submissions and normalizes them
// for persistence. Validation is pure: every field is checked
// independently so the form can be redisplayed with all errors at once,
// and nothing is written anywhere on failure.
package payment

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/AzizElBechir/AzPay/internal/domain"
)

// Form carries the raw field values exactly as submitted
type Form struct {
	CardNumber     string
	ExpiryDate     string
	CVV            string
	CardholderName string
	Amount         string
}

// FieldErrors maps a failing field name to its message
type FieldErrors map[string]string

// Field names used as FieldErrors keys; they match the form input names.
const (
	FieldCardNumber     = "card_number"
	FieldExpiryDate     = "expiry_date"
	FieldCVV            = "cvv"
	FieldCardholderName = "cardholder_name"
	FieldAmount         = "amount"
)

// Normalized is the validated, canonical payment ready for persistence
type Normalized struct {
	ID           string  // Generated transaction id
	Amount       float64 // Parsed amount
	CardLastFour string  // Last four digits of the stripped card number
	Cardholder   string  // Trimmed cardholder name
	Status       string  // Always domain.StatusCompleted
}

// expiryPattern matches MM/YY with MM in 01-12
var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)

// Validate checks every field of the form against the rules and returns
// either a normalized payment or the full set of per-field errors. The
// expiry check is evaluated against now.
func Validate(form Form, now time.Time) (*Normalized, FieldErrors) {
	errs := FieldErrors{}

	// Card number: spaces stripped, digits only, 15 or 16 long
	cardNumber := strings.ReplaceAll(form.CardNumber, " ", "")
	if !isDigits(cardNumber) || (len(cardNumber) != 15 && len(cardNumber) != 16) {
		errs[FieldCardNumber] = "Invalid card number"
	}

	// Expiry: MM/YY shape first, then a calendar not-before check.
	// A card expiring exactly this month is still valid.
	if m := expiryPattern.FindStringSubmatch(form.ExpiryDate); m == nil {
		errs[FieldExpiryDate] = "Invalid format (MM/YY)"
	} else {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		curYear := now.Year() % 100
		curMonth := int(now.Month())
		if year < curYear || (year == curYear && month < curMonth) {
			errs[FieldExpiryDate] = "Card has expired"
		}
	}

	// CVV: digits only, 3 or 4 long
	if !isDigits(form.CVV) || (len(form.CVV) != 3 && len(form.CVV) != 4) {
		errs[FieldCVV] = "Invalid CVV"
	}

	// Cardholder name: at least 3 characters after trimming
	cardholder := strings.TrimSpace(form.CardholderName)
	if len(cardholder) < 3 {
		errs[FieldCardholderName] = "Please enter cardholder name"
	}

	// Amount: must parse and be strictly positive; the two failure
	// modes share a key but not a message
	amount, err := strconv.ParseFloat(form.Amount, 64)
	if err != nil {
		errs[FieldAmount] = "Invalid amount"
	} else if amount <= 0 {
		errs[FieldAmount] = "Amount must be greater than zero"
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Normalized{
		ID:           NewTransactionID(now),
		Amount:       amount,
		CardLastFour: cardNumber[len(cardNumber)-4:],
		Cardholder:   cardholder,
		Status:       domain.StatusCompleted,
	}, nil
}

// isDigits reports whether s is non-empty and all ASCII digits
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
