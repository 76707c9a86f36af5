package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/ME-Tii/customer-list/internal/chat"
	"github.com/ME-Tii/customer-list/internal/middleware"
	"github.com/ME-Tii/customer-list/internal/upload"
	"github.com/ME-Tii/customer-list/internal/util"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the bounded public message log.
type ChatHandler struct {
	Log     *chat.Log
	Uploads *upload.Saver
}

func NewChatHandler(log *chat.Log, uploads *upload.Saver) *ChatHandler {
	return &ChatHandler{Log: log, Uploads: uploads}
}

// List returns the full bounded history, oldest first. The bound itself is
// the pagination mechanism.
func (h *ChatHandler) List(c *gin.Context) {
	util.Success(c, util.Response{"messages": h.Log.All()})
}

type postMessageReq struct {
	Username  string `json:"username"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Post appends a message, from either a JSON body or a multipart form with
// an optional file.
func (h *ChatHandler) Post(c *gin.Context) {
	var msg chat.Message

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		msg.Sender = strings.TrimSpace(c.PostForm("username"))
		msg.Body = strings.TrimSpace(c.PostForm("content"))
		msg.Timestamp = parseTimestamp(c.PostForm("timestamp"))

		if fh, err := c.FormFile("file"); err == nil && fh != nil {
			att, err := h.Uploads.Save(c, fh)
			if err != nil {
				util.Fail(c, err)
				return
			}
			msg.Attachment = att
		}
	} else {
		var req postMessageReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid message body")
			return
		}
		msg.Sender = strings.TrimSpace(req.Username)
		msg.Body = req.Content
		msg.Timestamp = parseTimestamp(req.Timestamp)
	}

	// the sender identity is the authenticated account, not whatever the
	// form claimed
	if user := middleware.CurrentUser(c); user != nil {
		msg.Sender = user.Username
	}

	stored, err := h.Log.Append(msg)
	if err != nil {
		util.Fail(c, err)
		return
	}

	util.Success(c, util.Response{"message": stored})
}

func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
