package lease

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/commands"

	"golang.org/x/time/rate"
)

// DateFormat is the minute-resolution layout the lease API expects.
const DateFormat = "2006-01-02 15:04"

const (
	tokenHeader  = "X-Auth-Token"
	resourceType = "virtual:instance"
	maxErrorBody = 4096
)

// ErrUnexpectedStatus marks non-2xx replies from the lease API.
var ErrUnexpectedStatus = errs.New("unexpected lease api status")

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
}

var _ commands.LeaseProvider = (*Client)(nil)

func NewClient(cfg config.LeaseConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Endpoint, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: newLimiter(cfg.RateLimit, cfg.RateBurst),
	}
}

func newLimiter(rps float64, burst int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

type leaseReservation struct {
	ResourceType       string            `json:"resource_type"`
	Amount             int               `json:"amount"`
	VCPUs              int               `json:"vcpus"`
	MemoryMB           int               `json:"memory_mb"`
	DiskGB             int               `json:"disk_gb"`
	EphemeralGB        int               `json:"ephemeral_gb"`
	Affinity           *bool             `json:"affinity"`
	ResourceProperties string            `json:"resource_properties"`
	ExtraSpecs         map[string]string `json:"extra_specs"`
}

type createLeaseRequest struct {
	Name         string             `json:"name"`
	Start        string             `json:"start_date"`
	End          string             `json:"end_date"`
	Reservations []leaseReservation `json:"reservations"`
	Events       []any              `json:"events"`
}

type updateLeaseRequest struct {
	End string `json:"end_date"`
}

type leaseResponse struct {
	Lease struct {
		ID           string `json:"id"`
		Reservations []struct {
			FlavorID *string `json:"flavor_id"`
		} `json:"reservations"`
	} `json:"lease"`
}

func (c *Client) CreateLease(ctx context.Context, r *reservation.Reservation, f *flavor.Flavor) (*commands.Lease, error) {
	extraSpecs := f.ExtraSpecs()
	if extraSpecs == nil {
		extraSpecs = map[string]string{}
	}
	body := createLeaseRequest{
		Name:  fmt.Sprintf("Reservation %s", r.ID()),
		Start: r.Start().UTC().Format(DateFormat),
		End:   r.End().UTC().Format(DateFormat),
		Reservations: []leaseReservation{{
			ResourceType:       resourceType,
			Amount:             r.InstanceCount(),
			VCPUs:              f.VCPU(),
			MemoryMB:           f.MemoryMB(),
			DiskGB:             f.DiskGB(),
			EphemeralGB:        f.EphemeralGB(),
			ResourceProperties: f.Properties(),
			ExtraSpecs:         extraSpecs,
		}},
		Events: []any{},
	}

	var resp leaseResponse
	if err := c.do(ctx, http.MethodPost, "/leases", body, &resp); err != nil {
		return nil, err
	}
	if resp.Lease.ID == "" {
		return nil, errs.New("lease api returned a lease without id")
	}

	lease := &commands.Lease{ID: resp.Lease.ID}
	if len(resp.Lease.Reservations) > 0 {
		lease.ComputeFlavor = resp.Lease.Reservations[0].FlavorID
	}
	return lease, nil
}

func (c *Client) UpdateLease(ctx context.Context, leaseID string, end time.Time) error {
	body := updateLeaseRequest{End: end.UTC().Format(DateFormat)}
	return c.do(ctx, http.MethodPut, "/leases/"+leaseID, body, nil)
}

func (c *Client) DeleteLease(ctx context.Context, leaseID string) error {
	err := c.do(ctx, http.MethodDelete, "/leases/"+leaseID, nil, nil)
	if IsStatus(err, http.StatusNotFound) {
		return nil
	}
	return err
}

// StatusError carries the status and body of a rejected lease API call.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("lease api returned %d", e.Code)
	}
	return fmt.Sprintf("lease api returned %d: %s", e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

func IsStatus(err error, code int) bool {
	var se *StatusError
	return errs.As(err, &se) && se.Code == code
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	return doJSON(ctx, c.http, c.limiter, method, c.baseURL+path, c.token, in, out)
}

func doJSON(ctx context.Context, hc *http.Client, limiter *rate.Limiter, method, url, token string, in, out any) error {
	if err := limiter.Wait(ctx); err != nil {
		return errs.Wrap(err, "waiting for rate limiter")
	}

	var payload io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "encoding request")
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return errs.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return errs.Wrapf(err, "%s %s", method, url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "decoding response")
	}
	return nil
}
