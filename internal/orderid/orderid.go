package orderid

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// New returns a URL-safe, human-shareable order id: a millisecond timestamp
// in base36 plus a random suffix. Uniqueness is probabilistic; a collision
// surfaces as a document-create failure rather than being checked up front.
func New() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
	return "ORD-" + strings.ToUpper(ts) + "-" + strings.ToUpper(suffix)
}
