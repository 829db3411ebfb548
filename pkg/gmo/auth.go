package gmo

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strconv"
	"time"
)

// signRequest attaches the private-API auth headers to req.
// The signature is HMAC-SHA256 over timestamp + method + path + body,
// keyed with the API secret (GMO Coin private API scheme).
func signRequest(req *http.Request, apiKey, apiSecret, method, path, body string) {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)

	mac := hmac.New(sha256.New, []byte(apiSecret))
	mac.Write([]byte(timestamp + method + path + body))
	sign := hex.EncodeToString(mac.Sum(nil))

	req.Header.Set("API-KEY", apiKey)
	req.Header.Set("API-TIMESTAMP", timestamp)
	req.Header.Set("API-SIGN", sign)
}
