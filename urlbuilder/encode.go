package urlbuilder

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// EncodePath encodes a raw source path or URL into the single transport-safe
// path component imgproxy expects: base64url (RFC 4648 §5) of the raw bytes,
// without padding.
//
// The encoding is byte-exact and reversible; imgproxy decodes the component
// back to the original string on its side.
func EncodePath(raw string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// Sign computes the imgproxy request signature for an assembled core path:
// base64url (no padding) of HMAC-SHA256 over salt || message, keyed by key.
//
// Parameters:
//   - message: The core path being signed, modifier tokens plus file
//     segment, joined by "/", with no leading slash and no base URL.
//   - key: The signing key as raw bytes.
//   - salt: The signing salt as raw bytes, prepended to the message before
//     hashing.
//
// imgproxy distributes key and salt as hex strings; callers must hex-decode
// them before passing them here. The result is deterministic: the same
// (message, key, salt) always produces the same signature, which is what the
// server recomputes and compares.
func Sign(message string, key, salt []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(salt)
	mac.Write([]byte(message))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
