package notifier

import (
	"context"
	"encoding/json"

	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

type streamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

const auditStreamMaxLen = 100000

// AuditPublisher appends audit events to a Redis stream.
type AuditPublisher struct {
	rdb    streamAdder
	stream string
}

var _ commands.EventPublisher = (*AuditPublisher)(nil)

func NewAuditPublisher(rdb streamAdder, stream string) *AuditPublisher {
	return &AuditPublisher{rdb: rdb, stream: stream}
}

func (p *AuditPublisher) Publish(ctx context.Context, eventType string, payload commands.AuditPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "encoding audit payload")
	}
	err = p.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: auditStreamMaxLen,
		Approx: true,
		Values: map[string]any{
			"event_type": eventType,
			"payload":    string(body),
		},
	}).Err()
	if err != nil {
		return errs.Wrapf(err, "appending %s to %s", eventType, p.stream)
	}
	return nil
}
