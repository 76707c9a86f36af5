package handler

import (
	"net/http"
	"time"

	"github.com/ME-Tii/customer-list/internal/middleware"
	"github.com/ME-Tii/customer-list/internal/presence"
	"github.com/ME-Tii/customer-list/internal/util"

	"github.com/gin-gonic/gin"
)

// PresenceHandler exposes heartbeat and the online-users view.
type PresenceHandler struct {
	Coordinator *presence.Coordinator
}

func NewPresenceHandler(coord *presence.Coordinator) *PresenceHandler {
	return &PresenceHandler{Coordinator: coord}
}

// Heartbeat refreshes the caller's presence session. Heartbeats never emit
// chat notifications; that path belongs to login alone.
func (h *PresenceHandler) Heartbeat(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "no session found")
		return
	}

	stamp, err := h.Coordinator.Heartbeat(user.Username, time.Now())
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"status":    "active",
		"timestamp": stamp,
	})
}

// OnlineUsers evicts stale sessions and lists who is left.
func (h *PresenceHandler) OnlineUsers(c *gin.Context) {
	accounts, err := h.Coordinator.Online(time.Now())
	if err != nil {
		util.Fail(c, err)
		return
	}

	out := make([]gin.H, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, gin.H{
			"username":      a.Username,
			"accessGranted": a.AccessGranted,
		})
	}

	util.Success(c, util.Response{"users": out})
}
