package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTransactionIDFormat(t *testing.T) {
	now := time.Date(2024, time.June, 15, 9, 30, 45, 0, time.UTC)
	id := NewTransactionID(now)
	assert.Regexp(t, `^TX-20240615093045-[0-9a-f]{6}$`, id)
}

func TestNewTransactionIDUniqueWithinSameSecond(t *testing.T) {
	now := time.Date(2024, time.June, 15, 9, 30, 45, 0, time.UTC)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id := NewTransactionID(now)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
