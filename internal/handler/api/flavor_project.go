package api

import (
	"net/http"

	reqdto "flavor-reservation/internal/handler/dto/request"
	resdto "flavor-reservation/internal/handler/dto/response"
	"flavor-reservation/internal/handler/httperr"
	"flavor-reservation/internal/usecase/commands"
	"flavor-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FlavorProjectHandler manages the grants that expose private flavors to a project. Admin only.
type FlavorProjectHandler struct {
	cmds commands.FlavorCommands
	q    queries.FlavorProjectQueries
}

func NewFlavorProjectHandler(cmds commands.FlavorCommands, q queries.FlavorProjectQueries) *FlavorProjectHandler {
	return &FlavorProjectHandler{cmds: cmds, q: q}
}

// @Summary List flavor grants
// @Tags flavorprojects
// @Produce json
// @Security BearerAuth
// @Param flavor_id query string false "Flavor ID"
// @Param project_id query string false "Project ID"
// @Success 200 {array} resdto.FlavorProjectResponse
// @Failure 400 {object} httperr.Response
// @Router /v1/flavorprojects [get]
func (h *FlavorProjectHandler) List(c *gin.Context) {
	var query reqdto.ListFlavorProjectsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}
	filter := queries.FlavorProjectFilter{ProjectID: query.ProjectID}
	if query.FlavorID != nil {
		id := uuid.MustParse(*query.FlavorID)
		filter.FlavorID = &id
	}
	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlavorProjectViews(views))
}

// @Summary Grant flavor to project
// @Tags flavorprojects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFlavorProjectRequest true "Grant"
// @Success 201 {object} resdto.FlavorProjectResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /v1/flavorprojects [post]
func (h *FlavorProjectHandler) Create(c *gin.Context) {
	var req reqdto.CreateFlavorProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	view, err := h.cmds.Grant(c.Request.Context(), uuid.MustParse(req.FlavorID), req.ProjectID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromFlavorProjectView(view))
}

// @Summary Revoke flavor grant
// @Tags flavorprojects
// @Security BearerAuth
// @Param id path string true "Grant ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /v1/flavorprojects/{id} [delete]
func (h *FlavorProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "Invalid flavor project ID format")
	if !ok {
		return
	}
	if err := h.cmds.Revoke(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
