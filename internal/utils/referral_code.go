package utils

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

const codeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateReferralCode builds a shareable invitation handle from the user's
// name plus a random suffix, e.g. "jane-doe-K4TQ". Uniqueness is enforced by
// the database; callers retry on collision.
func GenerateReferralCode(name string) string {
	base := slug.Make(name)
	if base == "" {
		base = "user"
	}
	if len(base) > 20 {
		base = base[:20]
	}
	return fmt.Sprintf("%s-%s", base, randomSuffix(4))
}

func randomSuffix(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken; fall back to a
		// fixed suffix and let the unique index force a retry
		return strings.Repeat("X", length)
	}
	for i := range buf {
		buf[i] = codeCharset[int(buf[i])%len(codeCharset)]
	}
	return string(buf)
}
