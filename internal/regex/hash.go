package regex

import (
	"crypto/sha256"
	"encoding/hex"
)

// fingerprintDomain separates expression fingerprints from every other hash
// in the system and versions the computation. Bump the version on any
// change to the canonical rendering.
const fingerprintDomain = "greb/regex/v1"

// Fingerprint returns a stable content-addressed identity for a canonical
// expression: the hex SHA-256 of the canonical rendering under a domain
// prefix. Structurally equal expressions always share a fingerprint, so
// the run recorder can key match history on it.
func Fingerprint(r Regex) string {
	h := sha256.New()
	h.Write([]byte(fingerprintDomain))
	h.Write([]byte{0})
	h.Write([]byte(r.String()))
	return hex.EncodeToString(h.Sum(nil))
}
