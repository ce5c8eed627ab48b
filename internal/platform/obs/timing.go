package obs

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey string

const RunIDKey ctxKey = "run_id"

// WithRunID tags ctx with the identifier of one CLI invocation.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RunIDKey, id)
}

// Time logs the duration of op when the returned func is called.
// Pass the address of the operation's error to record failures.
func Time(ctx context.Context, log *slog.Logger, op string) func(errp *error) {
	start := time.Now()

	runID, _ := ctx.Value(RunIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.ErrorContext(ctx, "operation failed", "run_id", runID, "op", op, "dur_ms", dur.Milliseconds(), "err", *errp)
			return
		}
		log.DebugContext(ctx, "operation finished", "run_id", runID, "op", op, "dur_ms", dur.Milliseconds())
	}
}
