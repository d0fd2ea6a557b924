package shared

import "time"

// Metrics records reservation outcomes. Implementations must be safe for concurrent use.
type Metrics interface {
	ObserveAdmission(result string)
	ObserveRejection(reason string)
	ObserveLeaseJob(kind, outcome string)
	ObserveLeaseEvent(event, outcome string)
	ObserveJanitorRun(job, outcome string)
	AddJanitorReservations(job, action string, n int)
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

type NoopMetrics struct{}

func (NoopMetrics) ObserveAdmission(string)                               {}
func (NoopMetrics) ObserveRejection(string)                               {}
func (NoopMetrics) ObserveLeaseJob(string, string)                        {}
func (NoopMetrics) ObserveLeaseEvent(string, string)                      {}
func (NoopMetrics) ObserveJanitorRun(string, string)                      {}
func (NoopMetrics) AddJanitorReservations(string, string, int)            {}
func (NoopMetrics) ObserveHTTPRequest(string, string, int, time.Duration) {}
