package session

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/shiseikan/internal/content"
)

// Drive runs effects against provider until none remain, feeding each
// outcome back into c. Advance delays are honoured. It returns early only
// when ctx is cancelled.
func Drive(ctx context.Context, c *Controller, provider content.Provider, effects []Effect) error {
	queue := append([]Effect(nil), effects...)

	for len(queue) > 0 {
		eff := queue[0]
		queue = queue[1:]

		var next []Effect
		switch e := eff.(type) {
		case FetchQuestions:
			callCtx, cancel := c.CallContext(ctx)
			qs, err := provider.FetchQuestions(callCtx)
			cancel()
			next = c.QuestionsLoaded(qs, err)

		case FetchResult:
			callCtx, cancel := c.CallContext(ctx)
			res, err := provider.FetchResult(callCtx, e.Type)
			cancel()
			next = c.ResultLoaded(res, err)

		case Advance:
			if err := sleep(ctx, e.Delay); err != nil {
				return err
			}
			next = c.Advance()

		default:
			return fmt.Errorf("unknown effect %T", eff)
		}

		queue = append(queue, next...)
	}

	return ctx.Err()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
