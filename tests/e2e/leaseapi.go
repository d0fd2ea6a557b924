//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"
)

// ComputeFlavorID is the compute flavor every fake lease reports.
const ComputeFlavorID = "compute-flavor-e2e"

// FakeLeaseAPI stands in for the lease provider. It keeps leases in memory
// and records the calls it served.
type FakeLeaseAPI struct {
	server *httptest.Server

	mu      sync.Mutex
	next    int
	leases  map[string]string // lease id -> end_date
	deleted []string
	failing bool
}

func NewFakeLeaseAPI() *FakeLeaseAPI {
	f := &FakeLeaseAPI{leases: map[string]string{}}

	r := gin.New()
	r.POST("/leases", f.create)
	r.PUT("/leases/:id", f.update)
	r.DELETE("/leases/:id", f.delete)
	f.server = httptest.NewServer(r)
	return f
}

func (f *FakeLeaseAPI) URL() string { return f.server.URL }

func (f *FakeLeaseAPI) Close() { f.server.Close() }

// SetFailing makes every call answer 503 until reset.
func (f *FakeLeaseAPI) SetFailing(failing bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = failing
}

func (f *FakeLeaseAPI) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.leases = map[string]string{}
	f.deleted = nil
	f.failing = false
}

func (f *FakeLeaseAPI) LeaseEnd(id string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	end, ok := f.leases[id]
	return end, ok
}

func (f *FakeLeaseAPI) Deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

func (f *FakeLeaseAPI) create(c *gin.Context) {
	var body struct {
		End string `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "unavailable"})
		return
	}
	f.next++
	id := fmt.Sprintf("lease-%d", f.next)
	f.leases[id] = body.End
	c.JSON(http.StatusCreated, gin.H{"lease": gin.H{
		"id":           id,
		"reservations": []gin.H{{"flavor_id": ComputeFlavorID}},
	}})
}

func (f *FakeLeaseAPI) update(c *gin.Context) {
	var body struct {
		End string `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "unavailable"})
		return
	}
	if _, ok := f.leases[c.Param("id")]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "lease not found"})
		return
	}
	f.leases[c.Param("id")] = body.End
	c.JSON(http.StatusOK, gin.H{"lease": gin.H{"id": c.Param("id")}})
}

func (f *FakeLeaseAPI) delete(c *gin.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "unavailable"})
		return
	}
	id := c.Param("id")
	delete(f.leases, id)
	f.deleted = append(f.deleted, id)
	c.Status(http.StatusNoContent)
}
