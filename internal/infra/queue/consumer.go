package queue

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

const (
	FieldEventType = "event_type"
	FieldLeaseID   = "lease_id"

	readBlock      = 5 * time.Second
	readCount      = 16
	failureBackoff = time.Second
)

type streamClient interface {
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
}

// EventConsumer feeds lease provider events from a Redis stream consumer group
// into the lease use case. Messages are acked once handled; a message whose
// handler fails stays pending and is re-read from the start of the backlog.
type EventConsumer struct {
	rdb      streamClient
	leases   commands.LeaseCommands
	stream   string
	group    string
	consumer string

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func NewEventConsumer(rdb streamClient, leases commands.LeaseCommands, cfg config.WorkerConfig) *EventConsumer {
	return &EventConsumer{
		rdb:      rdb,
		leases:   leases,
		stream:   cfg.EventStream,
		group:    cfg.EventGroup,
		consumer: cfg.Consumer,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// EnsureGroup creates the stream and consumer group if they do not exist yet.
func (c *EventConsumer) EnsureGroup(ctx context.Context) error {
	err := c.rdb.XGroupCreateMkStream(ctx, c.stream, c.group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return errs.Wrapf(err, "creating consumer group %s on %s", c.group, c.stream)
	}
	return nil
}

func (c *EventConsumer) Start(ctx context.Context) error {
	if err := c.EnsureGroup(ctx); err != nil {
		return err
	}
	go c.loop(ctx)
	slog.InfoContext(ctx, "lease event consumer started",
		slog.String("stream", c.stream),
		slog.String("group", c.group),
		slog.String("consumer", c.consumer))
	return nil
}

func (c *EventConsumer) Stop() {
	c.once.Do(func() { close(c.stop) })
	<-c.done
}

func (c *EventConsumer) loop(ctx context.Context) {
	defer close(c.done)

	backlog := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stop:
			return
		default:
		}

		n, failed, err := c.Poll(ctx, backlog)
		switch {
		case err != nil:
			slog.ErrorContext(ctx, "reading lease events failed", slog.String("error", err.Error()))
			c.pause(ctx)
		case failed > 0:
			backlog = true
			c.pause(ctx)
		case backlog && n == 0:
			backlog = false
		}
	}
}

func (c *EventConsumer) pause(ctx context.Context) {
	t := time.NewTimer(failureBackoff)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-c.stop:
	case <-t.C:
	}
}

// Poll reads one batch and handles it. With backlog set it re-reads this
// consumer's pending messages instead of new ones. It returns how many
// messages were read and how many were left unacked.
func (c *EventConsumer) Poll(ctx context.Context, backlog bool) (int, int, error) {
	id := ">"
	block := readBlock
	if backlog {
		id = "0"
		block = -1
	}

	streams, err := c.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.group,
		Consumer: c.consumer,
		Streams:  []string{c.stream, id},
		Count:    readCount,
		Block:    block,
	}).Result()
	if errs.Is(err, redis.Nil) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, err
	}

	read, failed := 0, 0
	for _, s := range streams {
		for _, msg := range s.Messages {
			read++
			if !c.handle(ctx, msg) {
				failed++
				continue
			}
			if err := c.rdb.XAck(ctx, c.stream, c.group, msg.ID).Err(); err != nil {
				slog.ErrorContext(ctx, "acking lease event failed",
					slog.String("message_id", msg.ID),
					slog.String("error", err.Error()))
				failed++
			}
		}
	}
	return read, failed, nil
}

// handle reports whether the message can be acked.
func (c *EventConsumer) handle(ctx context.Context, msg redis.XMessage) bool {
	eventType, _ := msg.Values[FieldEventType].(string)
	leaseID, _ := msg.Values[FieldLeaseID].(string)
	log := slog.With(
		slog.String("message_id", msg.ID),
		slog.String("event_type", eventType),
		slog.String("lease_id", leaseID))

	if leaseID == "" {
		log.WarnContext(ctx, "dropping lease event without lease id")
		return true
	}

	err := c.leases.HandleLeaseEvent(ctx, eventType, leaseID)
	switch {
	case err == nil:
		return true
	case errs.Is(err, commands.ErrUnknownLeaseEvent):
		log.WarnContext(ctx, "dropping unknown lease event")
		return true
	default:
		log.ErrorContext(ctx, "handling lease event failed", slog.String("error", err.Error()))
		return false
	}
}
