package notifier

import (
	"bytes"
	"embed"
	"text/template"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/pkg/errs"
)

const (
	Subject    = "Reservation System Notification"
	dateLayout = "2006-01-02 15:04 MST"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

var ErrUnhandledEvent = errs.New("event not handled by user notifications")

// Message is the rendered notification for one reservation event.
type Message struct {
	Event         reservation.Event `json:"event"`
	ReservationID string            `json:"reservation_id"`
	UserID        string            `json:"user_id"`
	ProjectID     string            `json:"project_id"`
	Subject       string            `json:"subject"`
	Body          string            `json:"body"`
}

type messageData struct {
	ID            string
	FlavorName    string
	InstanceCount int
	Start         string
	End           string
}

func Render(r *reservation.Reservation, f *flavor.Flavor, event reservation.Event) (Message, error) {
	if !event.IsValid() {
		return Message{}, errs.Wrapf(ErrUnhandledEvent, "event %q", event)
	}

	data := messageData{
		ID:            r.ID().String(),
		FlavorName:    f.Name(),
		InstanceCount: r.InstanceCount(),
		Start:         r.Start().UTC().Format(dateLayout),
		End:           r.End().UTC().Format(dateLayout),
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, event.String()+".tmpl", data); err != nil {
		return Message{}, errs.Wrapf(err, "rendering %s message", event)
	}

	return Message{
		Event:         event,
		ReservationID: data.ID,
		UserID:        r.UserID(),
		ProjectID:     r.ProjectID(),
		Subject:       Subject,
		Body:          buf.String(),
	}, nil
}
