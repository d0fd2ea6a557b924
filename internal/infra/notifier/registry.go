package notifier

import (
	"log/slog"
	"time"

	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
)

const (
	BackendLogging   = "logging"
	BackendTicketing = "ticketing"
	BackendMessaging = "messaging"
)

const ticketTimeout = 10 * time.Second

var ErrUnknownBackend = errs.New("unknown notifier backend")

// NewUserNotifier picks the delivery backend named by cfg.Backend.
func NewUserNotifier(cfg config.NotifierConfig, rdb *redis.Client, logger *slog.Logger) (commands.UserNotifier, error) {
	switch cfg.Backend {
	case "", BackendLogging:
		return NewLoggingNotifier(logger), nil
	case BackendTicketing:
		if cfg.TicketingURL == "" {
			return nil, errs.New("ticketing notifier requires NOTIFIER_TICKETING_URL")
		}
		return NewTicketingNotifier(cfg.TicketingURL, cfg.TicketingToken, ticketTimeout), nil
	case BackendMessaging:
		return NewMessagingNotifier(rdb, cfg.MessagingChannel), nil
	default:
		return nil, errs.Wrapf(ErrUnknownBackend, "backend %q", cfg.Backend)
	}
}
