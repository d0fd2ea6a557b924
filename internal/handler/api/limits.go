package api

import (
	"net/http"

	resdto "flavor-reservation/internal/handler/dto/response"
	"flavor-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LimitsHandler struct {
	q queries.LimitsQueries
}

func NewLimitsHandler(q queries.LimitsQueries) *LimitsHandler {
	return &LimitsHandler{q: q}
}

// @Summary Project limits
// @Description Quota and current usage. Another project's limits require admin.
// @Tags limits
// @Produce json
// @Security BearerAuth
// @Param project_id query string false "Project ID"
// @Success 200 {object} resdto.LimitsResponse
// @Failure 403 {object} httperr.Response
// @Router /v1/limits [get]
func (h *LimitsHandler) Get(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), identity, c.Query("project_id"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLimitsView(view))
}
