package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/babelchat/babelchat-server/internal/service/moderation"
)

// ModerationHandlers provides HTTP handlers for block and report endpoints.
// All of them require the auth middleware.
type ModerationHandlers struct {
	service *moderation.Service
	log     *zerolog.Logger
}

// NewModerationHandlers creates a new moderation handlers instance.
func NewModerationHandlers(service *moderation.Service, logger *zerolog.Logger) *ModerationHandlers {
	return &ModerationHandlers{service: service, log: logger}
}

// BlockRequest names the target of a block or unblock.
type BlockRequest struct {
	Username string `json:"username" binding:"required"`
}

// ReportRequest describes a report against a user.
type ReportRequest struct {
	Username  string `json:"username" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
	MessageID string `json:"message_id"`
}

// Block adds a user to the caller's block list.
// POST /api/block
func (h *ModerationHandlers) Block(c *gin.Context) {
	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	userID, _ := currentUser(c)
	if err := h.service.Block(c.Request.Context(), userID, req.Username); err != nil {
		h.writeModerationError(c, err, "block")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user '" + req.Username + "' has been blocked"})
}

// Unblock removes a user from the caller's block list.
// POST /api/unblock
func (h *ModerationHandlers) Unblock(c *gin.Context) {
	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	userID, _ := currentUser(c)
	if err := h.service.Unblock(c.Request.Context(), userID, req.Username); err != nil {
		h.writeModerationError(c, err, "unblock")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user '" + req.Username + "' has been unblocked"})
}

// Blocked lists the caller's blocked users.
// GET /api/blocked
func (h *ModerationHandlers) Blocked(c *gin.Context) {
	userID, _ := currentUser(c)

	blocked, err := h.service.ListBlocked(c.Request.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Int64("user_id", userID).Msg("failed to list blocked users")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blocked_users": blocked})
}

// Report files a report against a user.
// POST /api/report
func (h *ModerationHandlers) Report(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	userID, _ := currentUser(c)
	reportID, err := h.service.Report(c.Request.Context(), userID, req.Username, req.Reason, req.MessageID)
	if err != nil {
		h.writeModerationError(c, err, "report")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "report submitted", "report_id": reportID})
}

func (h *ModerationHandlers) writeModerationError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, moderation.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
	case errors.Is(err, moderation.ErrSelfTarget):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot target yourself"})
	default:
		h.log.Error().Err(err).Str("action", action).Msg("moderation request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
