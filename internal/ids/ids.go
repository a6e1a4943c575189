package ids

import (
	"fmt"

	"github.com/google/uuid"
)

// New returns a prefixed random identifier, e.g. "order_2c2e7a...".
// The prefix makes identifiers self-describing in logs and foreign keys.
func New(prefix string) string {
	if prefix == "" {
		return uuid.NewString()
	}
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}
