//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"flavor-reservation/internal/domain/flavor"
	"flavor-reservation/internal/handler/api"
	reqdto "flavor-reservation/internal/handler/dto/request"
	resdto "flavor-reservation/internal/handler/dto/response"
	"flavor-reservation/internal/handler/middleware"
	"flavor-reservation/internal/pkg/config"
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

type FlavorHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFlavorCommands
	mockQueries  *queriesmock.MockFlavorQueries
	mockGrants   *queriesmock.MockFlavorProjectQueries
}

func (s *FlavorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFlavorCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFlavorQueries(s.mockCtrl)
	s.mockGrants = queriesmock.NewMockFlavorProjectQueries(s.mockCtrl)

	flavors := api.NewFlavorHandler(s.mockCommands, s.mockQueries)
	grants := api.NewFlavorProjectHandler(s.mockCommands, s.mockGrants)
	requireAdmin := middleware.NewAuthMiddleware(nil, config.Config{}).RequireAdmin()

	s.router.GET("/v1/flavors", stubAuth, flavors.List)
	s.router.POST("/v1/flavors", stubAuth, requireAdmin, flavors.Create)
	s.router.GET("/v1/flavors/:id", stubAuth, flavors.Get)
	s.router.PATCH("/v1/flavors/:id", stubAuth, requireAdmin, flavors.Update)
	s.router.DELETE("/v1/flavors/:id", stubAuth, requireAdmin, flavors.Delete)
	s.router.GET("/v1/flavors/:id/freeslots", stubAuth, flavors.FreeSlots)

	s.router.GET("/v1/flavorprojects", stubAuth, requireAdmin, grants.List)
	s.router.POST("/v1/flavorprojects", stubAuth, requireAdmin, grants.Create)
	s.router.DELETE("/v1/flavorprojects/:id", stubAuth, requireAdmin, grants.Delete)
}

func (s *FlavorHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFlavorHandlerSuite(t *testing.T) {
	suite.Run(t, new(FlavorHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *FlavorHandlerTestSuite) TestList() {
	s.Run("success: filters are forwarded and extra specs rendered", func() {
		category := "baremetal"
		view := builder.NewFlavorBuilder().WithCategory(category).BuildView()
		s.mockQueries.EXPECT().
			List(gomock.Any(), member, queries.FlavorFilter{Category: &category, Limit: 5}).
			Return([]*queries.FlavorView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/flavors?category=baremetal&limit=5", nil, memberToken)

		var body []resdto.FlavorResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("compute_haswell", body[0].Name)
		s.Equal("1", body[0].ExtraSpecs["resources:CUSTOM_BAREMETAL"])
		s.EqualValues(1, body[0].Slots)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/flavors", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *FlavorHandlerTestSuite) TestCreate() {
	url := "/v1/flavors"
	b := builder.NewFlavorBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: admin creates a flavor", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, adminToken)

		var body resdto.FlavorResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/v1/flavors/" + returnView.ID.String()})
	})

	s.Run("error: 403 Forbidden for members", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "zero slots", mutate: testutil.Field("slots", 0)},
			{name: "zero max length", mutate: testutil.Field("max_length_hours", 0)},
			{name: "negative disk", mutate: testutil.Field("disk_gb", -1)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, adminToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 422 Unprocessable Entity on domain validation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("end must be after start"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "end must be after start")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *FlavorHandlerTestSuite) TestGet() {
	flavorID := uuid.New()
	url := "/v1/flavors/" + flavorID.String()

	s.Run("success: returns 200 OK", func() {
		view := builder.NewFlavorBuilder().WithID(flavorID).BuildView()
		s.mockQueries.EXPECT().Get(gomock.Any(), member, flavorID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, memberToken)

		var body resdto.FlavorResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(flavorID, body.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/flavors/not-a-uuid", nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid flavor ID format")
	})

	s.Run("error: 404 Not Found for hidden flavor", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), member, flavorID).Return(nil, errs.ErrFlavorNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Flavor not found")
	})
}

// ================================================================================
// TestUpdate / TestDelete
// ================================================================================

func (s *FlavorHandlerTestSuite) TestUpdate() {
	flavorID := uuid.New()
	url := "/v1/flavors/" + flavorID.String()
	slots := 3
	reqBody := reqdto.UpdateFlavorRequest{Slots: &slots}

	s.Run("success: partial update", func() {
		view := builder.NewFlavorBuilder().WithID(flavorID).WithSlots(3).BuildView()
		s.mockCommands.EXPECT().Update(gomock.Any(), flavorID, reqBody).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, adminToken)

		var body resdto.FlavorResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.EqualValues(3, body.Slots)
	})

	s.Run("error: 409 Conflict while the flavor is in use", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), flavorID, reqBody).Return(nil, flavor.ErrCapacityLocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "cannot change while the flavor is in use")
	})

	s.Run("error: 403 Forbidden for members", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *FlavorHandlerTestSuite) TestDelete() {
	flavorID := uuid.New()
	url := "/v1/flavors/" + flavorID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), flavorID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, adminToken)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict when reservations reference the flavor", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), flavorID).
			Return(&commands.FlavorInUseError{FlavorID: flavorID}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Flavor "+flavorID.String()+" is in use")
	})
}

// ================================================================================
// TestFreeSlots
// ================================================================================

func (s *FlavorHandlerTestSuite) TestFreeSlots() {
	flavorID := uuid.New()
	base := "/v1/flavors/" + flavorID.String() + "/freeslots"
	jan1 := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	feb1 := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)

	s.Run("success: bounds are truncated to the minute", func() {
		s.mockQueries.EXPECT().FreeSlots(gomock.Any(), member, flavorID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ shared.Identity, _ uuid.UUID, start, end *time.Time) ([]queries.SlotView, error) {
				s.Require().NotNil(start)
				s.Require().NotNil(end)
				s.True(jan1.Equal(*start))
				s.True(feb1.Equal(*end))
				return []queries.SlotView{{Start: jan1, End: feb1}}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			base+"?start=2021-01-01T00:00:30Z&end=2021-02-01T00:00:00Z", nil, memberToken)

		var body []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.True(jan1.Equal(body[0].Start))
		s.True(feb1.Equal(body[0].End))
	})

	s.Run("success: missing bounds are left to the query", func() {
		s.mockQueries.EXPECT().FreeSlots(gomock.Any(), member, flavorID, (*time.Time)(nil), (*time.Time)(nil)).
			Return([]queries.SlotView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base, nil, memberToken)

		var body []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("error: 400 Bad Request on malformed start", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=yesterday", nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})
}

// ================================================================================
// TestFlavorProjects
// ================================================================================

func (s *FlavorHandlerTestSuite) TestFlavorProjects() {
	flavorID := uuid.New()
	grant := &queries.FlavorProjectView{ID: uuid.New(), FlavorID: flavorID, ProjectID: "project-2"}

	s.Run("success: grant returns 201 Created", func() {
		s.mockCommands.EXPECT().Grant(gomock.Any(), flavorID, "project-2").Return(grant, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/v1/flavorprojects",
			reqdto.CreateFlavorProjectRequest{FlavorID: flavorID.String(), ProjectID: "project-2"}, adminToken)

		var body resdto.FlavorProjectResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(grant.ID, body.ID)
		s.Equal("project-2", body.ProjectID)
	})

	s.Run("error: 409 Conflict on duplicate grant", func() {
		s.mockCommands.EXPECT().Grant(gomock.Any(), flavorID, "project-2").Return(nil, errs.ErrFlavorProjectExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/v1/flavorprojects",
			reqdto.CreateFlavorProjectRequest{FlavorID: flavorID.String(), ProjectID: "project-2"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already granted")
	})

	s.Run("error: 400 Bad Request on malformed flavor id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/v1/flavorprojects",
			map[string]any{"flavor_id": "nope", "project_id": "project-2"}, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("success: list filters by flavor", func() {
		s.mockGrants.EXPECT().List(gomock.Any(), queries.FlavorProjectFilter{FlavorID: &flavorID}).
			Return([]*queries.FlavorProjectView{grant}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/flavorprojects?flavor_id="+flavorID.String(), nil, adminToken)

		var body []resdto.FlavorProjectResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(flavorID, body[0].FlavorID)
	})

	s.Run("error: 404 Not Found when revoking a missing grant", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Revoke(gomock.Any(), id).Return(errs.ErrFlavorProjectMissing).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/v1/flavorprojects/"+id.String(), nil, adminToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Flavor project not found")
	})

	s.Run("error: 403 Forbidden for members", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/v1/flavorprojects", nil, memberToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})
}
