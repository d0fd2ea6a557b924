//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"flavor-reservation/internal/handler/api"
	reqdto "flavor-reservation/internal/handler/dto/request"
	resdto "flavor-reservation/internal/handler/dto/response"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/commands"
	"flavor-reservation/internal/usecase/queries"
	"flavor-reservation/tests/common/httptest"
	commandsmock "flavor-reservation/tests/mock/commands"
	queriesmock "flavor-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LimitsAndEventsTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockLimits *queriesmock.MockLimitsQueries
	mockLeases *commandsmock.MockLeaseCommands
}

func (s *LimitsAndEventsTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLimits = queriesmock.NewMockLimitsQueries(s.mockCtrl)
	s.mockLeases = commandsmock.NewMockLeaseCommands(s.mockCtrl)

	s.router.GET("/v1/limits", stubAuth, api.NewLimitsHandler(s.mockLimits).Get)
	s.router.POST("/v1/lease-events", stubAuth, api.NewLeaseEventHandler(s.mockLeases).Handle)
}

func (s *LimitsAndEventsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLimitsAndEventsSuite(t *testing.T) {
	suite.Run(t, new(LimitsAndEventsTestSuite))
}

// ================================================================================
// TestLimits
// ================================================================================

func (s *LimitsAndEventsTestSuite) TestLimits() {
	s.Run("success: usage is wrapped under absolute", func() {
		s.mockLimits.EXPECT().Get(gomock.Any(), member, "").
			Return(&queries.LimitsView{MaxHours: 720, MaxReservations: 2, TotalHoursUsed: 24, TotalReservationsUsed: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/limits", nil, memberToken)

		var body resdto.LimitsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.AbsoluteLimits{MaxHours: 720, MaxReservations: 2, TotalHoursUsed: 24, TotalReservationsUsed: 1}, body.Absolute)
		s.Contains(rec.Body.String(), `"totalHoursUsed":24`)
	})

	s.Run("error: 403 Forbidden for another project", func() {
		s.mockLimits.EXPECT().Get(gomock.Any(), member, "project-2").Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/limits?project_id=project-2", nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})
}

// ================================================================================
// TestLeaseEvents
// ================================================================================

func (s *LimitsAndEventsTestSuite) TestLeaseEvents() {
	url := "/v1/lease-events"

	s.Run("success: returns 202 Accepted", func() {
		s.mockLeases.EXPECT().HandleLeaseEvent(gomock.Any(), "lease.event.start_lease", "lease-1").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.LeaseEventRequest{EventType: "lease.event.start_lease", LeaseID: "lease-1"}, adminToken)
		s.Equal(http.StatusAccepted, rec.Code)
	})

	s.Run("error: 400 Bad Request on unknown event type", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.LeaseEventRequest{EventType: "lease.event.unknown", LeaseID: "lease-1"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request without lease id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"event_type": "lease.event.end_lease"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: use case rejection of the event type", func() {
		s.mockLeases.EXPECT().HandleLeaseEvent(gomock.Any(), "lease.event.before_end", "lease-1").
			Return(commands.ErrUnknownLeaseEvent).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.LeaseEventRequest{EventType: "lease.event.before_end", LeaseID: "lease-1"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown lease event type")
	})
}
