package utils

import (
	"math/rand"
	"strings"
	"time"
)

const transactionCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTransactionCode creates an uppercase alphanumeric code used as a
// stand-in for a cash payment transaction token.
func GenerateTransactionCode(length int) string {
	if length <= 0 {
		length = 8
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(transactionCharset[rng.Intn(len(transactionCharset))])
	}

	return sb.String()
}
