package notifier

import (
	"context"
	"log/slog"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/domain/reservation"
)

// LoggingNotifier writes notifications to the log instead of delivering them.
type LoggingNotifier struct {
	logger *slog.Logger
}

func NewLoggingNotifier(logger *slog.Logger) *LoggingNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingNotifier{logger: logger}
}

func (n *LoggingNotifier) SendMessage(ctx context.Context, r *reservation.Reservation, f *flavor.Flavor, event reservation.Event) error {
	msg, err := Render(r, f, event)
	if err != nil {
		return err
	}
	n.logger.InfoContext(ctx, "user notification",
		slog.String("event", msg.Event.String()),
		slog.String("reservation_id", msg.ReservationID),
		slog.String("user_id", msg.UserID),
		slog.String("project_id", msg.ProjectID),
		slog.String("body", msg.Body))
	return nil
}
