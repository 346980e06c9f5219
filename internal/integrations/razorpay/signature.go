package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signature подпись checkout: HMAC-SHA256 от "order_id|payment_id" ключом магазина
func Signature(orderID, paymentID, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifySignature сравнивает подпись за постоянное время
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	expected := Signature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
