package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/av954416-web/javadrive/internal/httperr"
	"github.com/av954416-web/javadrive/internal/httpresp"
	ucAccount "github.com/av954416-web/javadrive/internal/usecase/account"
)

type MeHandler struct {
	me      *ucAccount.Me
	setRole *ucAccount.SetRole
}

func NewMeHandler(me *ucAccount.Me, setRole *ucAccount.SetRole) *MeHandler {
	return &MeHandler{me: me, setRole: setRole}
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user owner admin"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	user, err := h.me.Execute(c.Request.Context(), p)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": user})
}

// SetRole is mounted under /admin.
func (h *MeHandler) SetRole(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req SetRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.setRole.Execute(c.Request.Context(), p, userID, req.Role)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, gin.H{"user": user})
}
