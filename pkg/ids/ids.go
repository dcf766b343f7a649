package ids

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// New returns a prefixed identifier combining the current time and a random
// component, e.g. "task_18c2f9a1b20_9f3a01cd". Uniqueness is collision
// resistance for a single-user dataset, not a global guarantee.
func New(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 16)
	return fmt.Sprintf("%s_%s_%s", prefix, ts, randomHex())
}

func randomHex() string {
	if u, err := uuid.NewRandom(); err == nil {
		return strings.ReplaceAll(u.String(), "-", "")[:8]
	}
	// Weaker source when crypto randomness is unavailable.
	return fmt.Sprintf("%08x", rand.Uint32())
}

const dateLayout = "2006-01-02"

// Today returns the current date as YYYY-MM-DD. Dates everywhere in the app
// are UTC-derived, matching how record timestamps are truncated.
func Today() string {
	return time.Now().UTC().Format(dateLayout)
}

// NowISO returns the current instant as an ISO-8601 (RFC 3339) UTC string,
// the format every record's createdAt/updatedAt uses.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
