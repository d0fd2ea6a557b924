package lease

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"flavor-reservation/internal/pkg/config"
	"flavor-reservation/internal/usecase/commands"

	"golang.org/x/time/rate"
)

// ComputeClient asks the compute API whether a project runs servers on a flavor.
// With no endpoint configured every lookup reports false.
type ComputeClient struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
}

var _ commands.ResourcePool = (*ComputeClient)(nil)

func NewComputeClient(cfg config.ComputeConfig, lease config.LeaseConfig) *ComputeClient {
	return &ComputeClient{
		baseURL: strings.TrimRight(cfg.Endpoint, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: newLimiter(lease.RateLimit, lease.RateBurst),
	}
}

type serverList struct {
	Servers []struct {
		ID string `json:"id"`
	} `json:"servers"`
}

func (c *ComputeClient) InUse(ctx context.Context, projectID, computeFlavor string) (bool, error) {
	if c.baseURL == "" {
		return false, nil
	}

	q := url.Values{}
	q.Set("all_tenants", "1")
	q.Set("tenant_id", projectID)
	q.Set("flavor", computeFlavor)

	var out serverList
	if err := doJSON(ctx, c.http, c.limiter, http.MethodGet, c.baseURL+"/servers?"+q.Encode(), c.token, nil, &out); err != nil {
		return false, err
	}
	return len(out.Servers) > 0, nil
}
