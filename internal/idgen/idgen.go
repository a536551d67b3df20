// Package idgen builds identifiers of the form prefix + unix millis + "-" +
// a short base36 fragment.
package idgen

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const fragmentLen = 9

// Generator produces a new identifier with the given prefix.
type Generator func(prefix string) string

// Generate returns prefix + current unix milliseconds + "-" + 9 base36 chars.
// The fragment is drawn from a random (v4) UUID; collisions are not retried.
func Generate(prefix string) string {
	return build(prefix, time.Now(), uuid.New())
}

func build(prefix string, now time.Time, r uuid.UUID) string {
	var b strings.Builder
	b.Grow(len(prefix) + 14 + 1 + fragmentLen)
	b.WriteString(prefix)
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 10))
	b.WriteByte('-')
	b.WriteString(fragment(r))
	return b.String()
}

func fragment(r uuid.UUID) string {
	s := strconv.FormatUint(binary.BigEndian.Uint64(r[8:]), 36)
	if len(s) >= fragmentLen {
		return s[len(s)-fragmentLen:]
	}
	return strings.Repeat("0", fragmentLen-len(s)) + s
}
