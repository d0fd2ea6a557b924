package api

import (
	"net/http"
	"time"

	reqdto "flavor-reservation/internal/handler/dto/request"
	resdto "flavor-reservation/internal/handler/dto/response"
	"flavor-reservation/internal/handler/httperr"
	"flavor-reservation/internal/usecase/commands"
	"flavor-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FlavorHandler struct {
	cmds commands.FlavorCommands
	q    queries.FlavorQueries
}

func NewFlavorHandler(cmds commands.FlavorCommands, q queries.FlavorQueries) *FlavorHandler {
	return &FlavorHandler{cmds: cmds, q: q}
}

// @Summary List flavors
// @Description List active flavors that are public or granted to the caller's project
// @Tags flavors
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category filter"
// @Param availability_zone query string false "Availability zone filter"
// @Param all_projects query bool false "Every flavor (admin only)"
// @Param limit query int false "Max items (default 50)"
// @Success 200 {array} resdto.FlavorResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /v1/flavors [get]
func (h *FlavorHandler) List(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	var query reqdto.ListFlavorsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), identity, queries.FlavorFilter{
		Category:         query.Category,
		AvailabilityZone: query.AvailabilityZone,
		AllProjects:      query.AllProjects,
		Limit:            query.Limit,
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlavorViews(views))
}

// @Summary Create flavor
// @Tags flavors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFlavorRequest true "Flavor"
// @Success 201 {object} resdto.FlavorResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /v1/flavors [post]
func (h *FlavorHandler) Create(c *gin.Context) {
	var req reqdto.CreateFlavorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/v1/flavors/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromFlavorView(view))
}

// @Summary Get flavor
// @Description Private flavors are visible to granted projects and admins
// @Tags flavors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flavor ID"
// @Success 200 {object} resdto.FlavorResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /v1/flavors/{id} [get]
func (h *FlavorHandler) Get(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "Invalid flavor ID format")
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), identity, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlavorView(view))
}

// @Summary Update flavor
// @Description Partial update. Slots and shape fields are locked while reservations reference the flavor.
// @Tags flavors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flavor ID"
// @Param request body reqdto.UpdateFlavorRequest true "Changed fields"
// @Success 200 {object} resdto.FlavorResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /v1/flavors/{id} [patch]
func (h *FlavorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "Invalid flavor ID format")
	if !ok {
		return
	}
	var req reqdto.UpdateFlavorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	view, err := h.cmds.Update(c.Request.Context(), id, req)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlavorView(view))
}

// @Summary Delete flavor
// @Tags flavors
// @Security BearerAuth
// @Param id path string true "Flavor ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /v1/flavors/{id} [delete]
func (h *FlavorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid flavor ID format")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Free slots
// @Description Free intervals of a flavor between start (default now) and end (default start + 1 year)
// @Tags flavors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flavor ID"
// @Param start query string false "RFC3339 start"
// @Param end query string false "RFC3339 end"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /v1/flavors/{id}/freeslots [get]
func (h *FlavorHandler) FreeSlots(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "Invalid flavor ID format")
	if !ok {
		return
	}
	var query reqdto.FreeSlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	slots, err := h.q.FreeSlots(c.Request.Context(), identity, id, truncateMinute(query.Start), truncateMinute(query.End))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSlotViews(slots))
}

func parseID(c *gin.Context, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return uuid.Nil, false
	}
	return id, true
}

func truncateMinute(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC().Truncate(time.Minute)
	return &v
}
