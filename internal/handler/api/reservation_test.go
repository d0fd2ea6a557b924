//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"flavor-reservation/internal/domain/reservation"
	"flavor-reservation/internal/handler/api"
	reqdto "flavor-reservation/internal/handler/dto/request"
	resdto "flavor-reservation/internal/handler/dto/response"
	"flavor-reservation/internal/pkg/errs"
	"flavor-reservation/internal/usecase/commands"
	"flavor-reservation/internal/usecase/queries"
	"flavor-reservation/internal/usecase/shared"
	"flavor-reservation/tests/common/builder"
	"flavor-reservation/tests/common/httptest"
	"flavor-reservation/tests/common/testutil"
	commandsmock "flavor-reservation/tests/mock/commands"
	queriesmock "flavor-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/v1/reservations", stubAuth, s.handler.Create)
	s.router.GET("/v1/reservations", stubAuth, s.handler.List)
	s.router.GET("/v1/reservations/:id", stubAuth, s.handler.Get)
	s.router.PATCH("/v1/reservations/:id", stubAuth, s.handler.Extend)
	s.router.DELETE("/v1/reservations/:id", stubAuth, s.handler.Delete)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/v1/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created with Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), member, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Identity, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
				s.Equal(b.FlavorID, req.FlavorID)
				s.True(b.Start.Equal(req.Start))
				s.True(b.End.Equal(req.End))
				s.Equal(1, req.GetInstanceCount())
				return returnView, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, memberToken)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("PENDING_CREATE", body.Status)
		s.EqualValues(24, body.TotalHours)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/v1/reservations/" + returnView.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing flavor_id", mutate: testutil.Field("flavor_id", nil)},
			{name: "missing start", mutate: testutil.Field("start", nil)},
			{name: "missing end", mutate: testutil.Field("end", nil)},
			{name: "zero instance_count", mutate: testutil.Field("instance_count", 0)},
			{name: "malformed start", mutate: testutil.Field("start", "tomorrow")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, memberToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "no capacity",
				commandsError:  reservation.RejectNoCapacity(),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "No capacity",
			},
			{
				name:           "too long",
				commandsError:  &reservation.Rejection{Reason: reservation.ReasonTooLong, Message: "Reservation is too long, max allowed is 168 hours"},
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "max allowed is 168 hours",
			},
			{
				name:           "flavor inactive",
				commandsError:  &reservation.Rejection{Reason: reservation.ReasonFlavorInactive, Message: "Flavor is not available"},
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Flavor is not available",
			},
			{
				name:           "quota exceeded",
				commandsError:  &commands.QuotaExceededError{Resource: commands.QuotaResourceReservation},
				expectedStatus: http.StatusRequestEntityTooLarge,
				expectedMsg:    "Quota exceeded for resource reservation",
			},
			{
				name:           "flavor not found",
				commandsError:  errs.ErrFlavorNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Flavor not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), member, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, memberToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	views := []*queries.ReservationView{
		builder.NewReservationBuilder().BuildView(),
		builder.NewReservationBuilder().AsActive().BuildView(),
	}

	s.Run("success: member lists own project", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), member, queries.ReservationFilter{}, false).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/reservations", nil, memberToken)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal("ACTIVE", body[1].Status)
	})

	s.Run("success: filters are forwarded", func() {
		project := "project-2"
		status := "ACTIVE"
		s.mockQueries.EXPECT().
			List(gomock.Any(), admin, queries.ReservationFilter{ProjectID: &project, Status: &status, Limit: 10, Offset: 20}, true).
			Return([]*queries.ReservationView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/v1/reservations?all_projects=true&project_id=project-2&status=ACTIVE&limit=10&offset=20", nil, adminToken)

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 400 Bad Request on unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/reservations?status=DONE", nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 400 Bad Request on limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/reservations?limit=5000", nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	reservationID := uuid.New()
	url := "/v1/reservations/" + reservationID.String()
	returnView := builder.NewReservationBuilder().WithID(reservationID).WithLease("lease-1").AsActive().BuildView()

	s.Run("success: returns 200 OK with ReservationResponse", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), member, reservationID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, memberToken)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(reservationID, body.ID)
		s.Require().NotNil(body.LeaseID)
		s.Equal("lease-1", *body.LeaseID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/reservations/invalid-uuid", nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID format")
	})

	s.Run("error: 404 Not Found for missing or foreign reservation", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), member, reservationID).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestExtend
// ================================================================================

func (s *ReservationHandlerTestSuite) TestExtend() {
	reservationID := uuid.New()
	url := "/v1/reservations/" + reservationID.String()
	newEnd := time.Date(2021, 1, 3, 12, 30, 45, 0, time.UTC)
	reqBody := reqdto.ExtendReservationRequest{End: newEnd}

	s.Run("success: returns 200 OK with the extended reservation", func() {
		view := builder.NewReservationBuilder().WithID(reservationID).AsActive().BuildView()
		view.End = newEnd.Truncate(time.Minute)

		s.mockCommands.EXPECT().Extend(gomock.Any(), member, reservationID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Identity, _ uuid.UUID, req reqdto.ExtendReservationRequest) (*queries.ReservationView, error) {
				s.True(newEnd.Truncate(time.Minute).Equal(req.NewEnd()))
				return view, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, memberToken)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(view.End.Equal(body.End))
	})

	s.Run("error: 400 Bad Request without end", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps rejections to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not active",
				commandsError:  &reservation.Rejection{Reason: reservation.ReasonNotActive, Message: "Reservation is not active"},
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Reservation is not active",
			},
			{
				name:           "end not after current end",
				commandsError:  &reservation.Rejection{Reason: reservation.ReasonEndNotAfter, Message: "New end time must be after current end time"},
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "New end time must be after current end time",
			},
			{
				name:           "window taken",
				commandsError:  reservation.RejectNoCapacity(),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "No capacity",
			},
			{
				name:           "provider refused",
				commandsError:  reservation.RejectExtendFailed(),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Failed to extend lease",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Extend(gomock.Any(), member, reservationID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, memberToken)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ReservationHandlerTestSuite) TestDelete() {
	reservationID := uuid.New()
	url := "/v1/reservations/" + reservationID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), member, reservationID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, memberToken)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 502 Bad Gateway when the provider fails", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), member, reservationID).
			Return(errs.Mark(errors.New("connection refused"), errs.ErrProviderUnavailable)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Lease provider unavailable")
	})

	s.Run("error: 404 Not Found for missing reservation", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), member, reservationID).
			Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
