// fingerprint.go generates stable hashes for grouping similar errors.

package faultline

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// fingerprintFrames is the number of top frames that contribute to a fingerprint.
const fingerprintFrames = 3

// Fingerprint hashes the error class and the methods of the first three
// frames of the primary exception. Messages, files and line numbers are
// ignored so that the same failure groups together across builds.
func Fingerprint(p Payload) string {
	var parts []string
	if len(p.Exceptions) > 0 {
		ex := p.Exceptions[0]
		parts = append(parts, ex.ErrorClass)
		for i, f := range ex.Stacktrace {
			if i == fingerprintFrames {
				break
			}
			parts = append(parts, f.Method)
		}
	}

	hash := sha256.Sum256([]byte(strings.Join(parts, "|")))

	// first 16 bytes, 32 hex chars
	return hex.EncodeToString(hash[:16])
}
