package api

import (
	"net/http"

	reqdto "flavor-reservation/internal/handler/dto/request"
	resdto "flavor-reservation/internal/handler/dto/response"
	"flavor-reservation/internal/handler/httperr"
	"flavor-reservation/internal/usecase/commands"
	"flavor-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Reserve instances of a flavor for a window. Quota is checked before capacity.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /v1/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), identity, req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/v1/reservations/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description Lists the caller's project. Admins may pass project_id or all_projects.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param all_projects query bool false "Every project (admin only)"
// @Param project_id query string false "Project (admin only)"
// @Param flavor_id query string false "Flavor ID"
// @Param status query string false "Status filter"
// @Param limit query int false "Max items (default 50)"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /v1/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), identity, queries.ReservationFilter{
		ProjectID: query.ProjectID,
		FlavorID:  query.FlavorUUID(),
		Status:    query.Status,
		Limit:     query.Limit,
		Offset:    query.Offset,
	}, query.AllProjects)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /v1/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "Invalid reservation ID format")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), identity, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Extend reservation
// @Description Move the end of an ACTIVE reservation later, if the flavor stays free until then.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ExtendReservationRequest true "New end"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /v1/reservations/{id} [patch]
func (h *ReservationHandler) Extend(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "Invalid reservation ID format")
	if !ok {
		return
	}
	var req reqdto.ExtendReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	view, err := h.cmds.Extend(c.Request.Context(), identity, id, req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Delete reservation
// @Description Deletes the provider lease first, then the reservation.
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /v1/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "Invalid reservation ID format")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), identity, id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
