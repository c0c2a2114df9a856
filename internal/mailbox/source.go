// Package mailbox yields raw order messages from a mail store.
package mailbox

import (
	"context"
	"time"

	"github.com/mealtrace/mealtrace/internal/entity"
)

// Source fetches raw messages received after the given time. The zero time
// means no lower bound.
type Source interface {
	Fetch(ctx context.Context, since time.Time) ([]entity.RawMessage, error)
}
