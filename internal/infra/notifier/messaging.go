package notifier

import (
	"context"
	"encoding/json"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

type publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// MessagingNotifier publishes rendered notifications on a Redis channel for a mailer to pick up.
type MessagingNotifier struct {
	rdb     publisher
	channel string
}

func NewMessagingNotifier(rdb publisher, channel string) *MessagingNotifier {
	return &MessagingNotifier{rdb: rdb, channel: channel}
}

func (n *MessagingNotifier) SendMessage(ctx context.Context, r *reservation.Reservation, f *flavor.Flavor, event reservation.Event) error {
	msg, err := Render(r, f, event)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return errs.Wrap(err, "encoding message")
	}
	if err := n.rdb.Publish(ctx, n.channel, payload).Err(); err != nil {
		return errs.Wrapf(err, "publishing to %s", n.channel)
	}
	return nil
}
