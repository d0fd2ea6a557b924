package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/pkg/errs"
)

// TicketingNotifier opens an outbound email ticket addressed to the reservation owner.
type TicketingNotifier struct {
	url   string
	token string
	http  *http.Client
}

func NewTicketingNotifier(url, token string, timeout time.Duration) *TicketingNotifier {
	return &TicketingNotifier{
		url:   url,
		token: token,
		http:  &http.Client{Timeout: timeout},
	}
}

type outboundTicket struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	UserID      string `json:"user_id"`
	ProjectID   string `json:"project_id"`
}

type ticketResponse struct {
	ID json.Number `json:"id"`
}

func (n *TicketingNotifier) SendMessage(ctx context.Context, r *reservation.Reservation, f *flavor.Flavor, event reservation.Event) error {
	msg, err := Render(r, f, event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(outboundTicket{
		Subject:     msg.Subject,
		Description: msg.Body,
		UserID:      msg.UserID,
		ProjectID:   msg.ProjectID,
	})
	if err != nil {
		return errs.Wrap(err, "encoding ticket")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "building ticket request")
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "creating ticket")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return errs.Newf("ticketing returned %d: %s", resp.StatusCode, bytes.TrimSpace(b))
	}

	var ticket ticketResponse
	_ = json.NewDecoder(resp.Body).Decode(&ticket)
	slog.InfoContext(ctx, "created outgoing email ticket",
		slog.String("ticket_id", ticket.ID.String()),
		slog.String("reservation_id", msg.ReservationID),
		slog.String("user_id", msg.UserID))
	return nil
}
