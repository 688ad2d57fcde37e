package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

var refMu sync.Mutex
var refRand *rand.Rand

func init() {
	refRand = rand.New(rand.NewSource(time.Now().UnixNano()))
}

const refAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateTransactionRef returns a human-readable transaction reference for
// receipts and reconciliation: "TXN" + millisecond timestamp + 9 random
// base-36 characters. The timestamp plus 36^9 suffix space makes a collision
// negligible; the unique index on donations.transaction_id is the backstop.
func GenerateTransactionRef() string {
	refMu.Lock()
	defer refMu.Unlock()

	var b strings.Builder
	for i := 0; i < 9; i++ {
		b.WriteByte(refAlphabet[refRand.Intn(len(refAlphabet))])
	}
	return fmt.Sprintf("TXN%d%s", time.Now().UnixMilli(), b.String())
}
