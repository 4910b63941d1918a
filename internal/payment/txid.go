package payment

import (
	"time"

	"github.com/google/uuid" // Random id suffix
)

// NewTransactionID builds a transaction id from the creation time plus a
// random suffix. The timestamp keeps ids human-scannable; the suffix
// keeps two submissions within the same second from colliding on the
// primary key.
func NewTransactionID(now time.Time) string {
	return "TX-" + now.Format("20060102150405") + "-" + uuid.NewString()[:6]
}
