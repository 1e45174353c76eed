package server

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/secmon-lab/repoguard/pkg/domain/types"
)

// signatureHeader carries the HMAC-SHA1 digest of the request body in
// "sha1=<hex>" form.
const signatureHeader = "X-Hub-Signature"

// verifySignature checks the webhook signature against the exact decoded body
// bytes. An absent or malformed header is a mismatch; no error is raised.
func verifySignature(secret types.WebhookSecret, body []byte, header string) bool {
	digest, ok := strings.CutPrefix(header, "sha1=")
	if !ok {
		return false
	}

	mac := hmac.New(sha1.New, []byte(secret.Unmask()))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(digest), []byte(expected))
}
