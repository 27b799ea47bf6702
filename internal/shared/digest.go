package shared

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// ContentDigest is the hex BLAKE3-256 of body.
func ContentDigest(body []byte) string {
	sum := blake3.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// ETag wraps the content digest as a strong entity tag.
func ETag(body []byte) string {
	return `"` + ContentDigest(body) + `"`
}
