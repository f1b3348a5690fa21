package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/httpresp"
	ucDashboard "github.com/av954416-web/javadrive/internal/usecase/dashboard"
)

type DashboardHandler struct {
	owner *ucDashboard.OwnerDashboard
	admin *ucDashboard.AdminDashboard
}

func NewDashboardHandler(
	owner *ucDashboard.OwnerDashboard,
	admin *ucDashboard.AdminDashboard,
) *DashboardHandler {
	return &DashboardHandler{owner: owner, admin: admin}
}

func (h *DashboardHandler) Owner(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	out, err := h.owner.Execute(c.Request.Context(), p)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *DashboardHandler) Admin(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	out, err := h.admin.Execute(c.Request.Context(), p)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, out)
}
