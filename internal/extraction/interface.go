package extraction

import (
	"context"
	"time"
)

// Parser turns free-form task text into structured fields.
type Parser interface {
	// Extract never fails. Any problem with the model reply yields Fallback(rawText).
	Extract(ctx context.Context, rawText string, ownerID int64, referenceDate time.Time) Result
}
