package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

// AuditHandler handles HTTP requests for the approval workflow and audit log
type AuditHandler struct {
	auditUseCase domain.AuditUseCase
	logger       *logger.Logger
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditUseCase domain.AuditUseCase, logger *logger.Logger) *AuditHandler {
	return &AuditHandler{
		auditUseCase: auditUseCase,
		logger:       logger,
	}
}

// RejectRequest carries the reviewer's reason for declining
type RejectRequest struct {
	Reason string `json:"reason" binding:"required" example:"amount looks wrong"`
}

// ListPending lists operations awaiting review
// @Summary List pending operations
// @Description Pending grants enriched with operator and player names
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.PendingOperation
// @Failure 401 {object} domain.ErrorResponse
// @Router /audit/pending [get]
func (h *AuditHandler) ListPending(c *gin.Context) {
	pending, err := h.auditUseCase.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pending)
}

// Approve applies a pending operation
// @Summary Approve operation
// @Description Apply a pending grant; the balance changes exactly once
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param log_id path string true "Operation log ID"
// @Success 200 {object} domain.AuditDecision
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Failure 429 {object} domain.ErrorResponse
// @Router /audit/{log_id}/approve [post]
func (h *AuditHandler) Approve(c *gin.Context) {
	approverID, ok := getAuthenticatedAdminID(c)
	if !ok {
		return
	}

	logID := c.Param("log_id")
	decision, err := h.auditUseCase.Approve(c.Request.Context(), logID, approverID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}

// Reject declines a pending operation
// @Summary Reject operation
// @Description Decline a pending grant; the balance is never touched
// @Tags audit
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param log_id path string true "Operation log ID"
// @Param request body RejectRequest true "Rejection reason"
// @Success 200 {object} domain.AuditDecision
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /audit/{log_id}/reject [post]
func (h *AuditHandler) Reject(c *gin.Context) {
	rejecterID, ok := getAuthenticatedAdminID(c)
	if !ok {
		return
	}

	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
		return
	}

	logID := c.Param("log_id")
	decision, err := h.auditUseCase.Reject(c.Request.Context(), logID, req.Reason, rejecterID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}

// ListLogs returns the audit trail
// @Summary List operation logs
// @Description Audit trail filtered by date range and operation type
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param start_date query string false "Start date (2006-01-02)"
// @Param end_date query string false "End date (2006-01-02)"
// @Param operation_type query string false "Operation type filter"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} domain.PagedResult[*domain.OperationLog]
// @Failure 401 {object} domain.ErrorResponse
// @Router /audit/logs [get]
func (h *AuditHandler) ListLogs(c *gin.Context) {
	var query domain.LogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid query parameters", 400, err))
		return
	}

	result, err := h.auditUseCase.ListLogs(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
