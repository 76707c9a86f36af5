package handler

import (
	"net/http"
	"strings"

	"github.com/ME-Tii/customer-list/internal/chat"
	"github.com/ME-Tii/customer-list/internal/middleware"
	"github.com/ME-Tii/customer-list/internal/upload"
	"github.com/ME-Tii/customer-list/internal/util"

	"github.com/gin-gonic/gin"
)

// PrivateHandler exposes the per-user mailboxes.
type PrivateHandler struct {
	Boxes   *chat.Mailboxes
	Uploads *upload.Saver
}

func NewPrivateHandler(boxes *chat.Mailboxes, uploads *upload.Saver) *PrivateHandler {
	return &PrivateHandler{Boxes: boxes, Uploads: uploads}
}

// List returns the caller's complete conversation history, sent and
// received, sorted by timestamp ascending.
func (h *PrivateHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	util.Success(c, util.Response{"messages": h.Boxes.For(user.Username)})
}

type sendPrivateReq struct {
	ToUser    string `json:"to_user"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Send delivers a private message. The sender is always the authenticated
// account; the request cannot speak for anyone else.
func (h *PrivateHandler) Send(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	pm := chat.PrivateMessage{From: user.Username}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		pm.To = strings.TrimSpace(c.PostForm("to_user"))
		pm.Body = strings.TrimSpace(c.PostForm("content"))
		pm.Timestamp = parseTimestamp(c.PostForm("timestamp"))

		if fh, err := c.FormFile("file"); err == nil && fh != nil {
			att, err := h.Uploads.Save(c, fh)
			if err != nil {
				util.Fail(c, err)
				return
			}
			pm.Attachment = att
		}
	} else {
		var req sendPrivateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid message body")
			return
		}
		pm.To = strings.TrimSpace(req.ToUser)
		pm.Body = req.Content
		pm.Timestamp = parseTimestamp(req.Timestamp)
	}

	stored, err := h.Boxes.Send(pm)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{"message": stored})
}
