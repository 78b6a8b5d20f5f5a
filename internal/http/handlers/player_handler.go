package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
	"github.com/jingjie2002/GM-Tools-Admin/internal/infrastructure/logger"
)

// PlayerHandler handles HTTP requests for player administration
type PlayerHandler struct {
	playerUseCase domain.PlayerUseCase
	banQueue      domain.BanQueue
	maxBatchSize  int
	logger        *logger.Logger
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerUseCase domain.PlayerUseCase, banQueue domain.BanQueue, maxBatchSize int, logger *logger.Logger) *PlayerHandler {
	return &PlayerHandler{
		playerUseCase: playerUseCase,
		banQueue:      banQueue,
		maxBatchSize:  maxBatchSize,
		logger:        logger,
	}
}

// BatchBanResponse acknowledges an accepted batch
type BatchBanResponse struct {
	BatchID string `json:"batch_id" example:"V1StGXR8"`
	Count   int    `json:"count" example:"237"`
	Status  string `json:"status" example:"queued"`
}

// Search lists players
// @Summary Search players
// @Description List players filtered by nickname keyword, paginated
// @Tags players
// @Produce json
// @Security BearerAuth
// @Param keyword query string false "Nickname keyword"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} domain.PagedResult[*domain.Player]
// @Failure 401 {object} domain.ErrorResponse
// @Router /players [get]
func (h *PlayerHandler) Search(c *gin.Context) {
	var query domain.PlayerQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid query parameters", 400, err))
		return
	}

	result, err := h.playerUseCase.SearchPlayers(query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GiveItem grants currency to a player
// @Summary Give item
// @Description Grant currency to a player; large amounts go to approval
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.GiveItemRequest true "Grant details"
// @Success 200 {object} domain.GrantResult
// @Failure 400 {object} domain.ErrorResponse
// @Failure 429 {object} domain.ErrorResponse
// @Router /players/give-item [post]
func (h *PlayerHandler) GiveItem(c *gin.Context) {
	operatorID, ok := getAuthenticatedAdminID(c)
	if !ok {
		return
	}

	var req domain.GiveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
		return
	}

	result, err := h.playerUseCase.GiveItem(c.Request.Context(), req, operatorID)
	if err != nil {
		h.logger.Warn("Give item failed",
			zap.String("operator_id", operatorID),
			zap.String("player_id", req.PlayerID),
			zap.Int64("amount", req.Amount),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeductGold removes currency from a player
// @Summary Deduct gold
// @Description Remove currency from a player if the balance is sufficient
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.DeductGoldRequest true "Deduction details"
// @Success 200 {object} domain.GrantResult
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Router /players/deduct-gold [post]
func (h *PlayerHandler) DeductGold(c *gin.Context) {
	operatorID, ok := getAuthenticatedAdminID(c)
	if !ok {
		return
	}

	var req domain.DeductGoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
		return
	}

	result, err := h.playerUseCase.DeductGold(c.Request.Context(), req, operatorID)
	if err != nil {
		h.logger.Warn("Deduct gold failed",
			zap.String("operator_id", operatorID),
			zap.String("player_id", req.PlayerID),
			zap.Int64("amount", req.Amount),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Ban bans a single player
// @Summary Ban player
// @Description Ban a player and force their sessions offline
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.BanPlayerRequest true "Ban details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /players/ban [post]
func (h *PlayerHandler) Ban(c *gin.Context) {
	operatorID, ok := getAuthenticatedAdminID(c)
	if !ok {
		return
	}

	var req domain.BanPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
		return
	}

	if err := h.playerUseCase.BanPlayer(c.Request.Context(), req, operatorID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "banned", "player_id": req.PlayerID})
}

// Unban lifts a ban
// @Summary Unban player
// @Description Lift a player's ban ahead of its expiry
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.UnbanPlayerRequest true "Unban details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /players/unban [post]
func (h *PlayerHandler) Unban(c *gin.Context) {
	operatorID, ok := getAuthenticatedAdminID(c)
	if !ok {
		return
	}

	var req domain.UnbanPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
		return
	}

	if err := h.playerUseCase.UnbanPlayer(c.Request.Context(), req, operatorID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unbanned", "player_id": req.PlayerID})
}

// BatchBan submits a batch of players for asynchronous banning
// @Summary Batch ban
// @Description Queue a batch of player ids for rate-limited banning
// @Tags players
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.BatchBanRequest true "Batch details"
// @Success 202 {object} BatchBanResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 429 {object} domain.ErrorResponse
// @Router /players/batch-ban [post]
func (h *PlayerHandler) BatchBan(c *gin.Context) {
	operatorID, ok := getAuthenticatedAdminID(c)
	if !ok {
		return
	}

	var req domain.BatchBanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid request body", 400, err))
		return
	}

	if len(req.PlayerIDs) > h.maxBatchSize {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeBatchTooLarge,
			"Too many player ids in a single batch", 400, nil))
		return
	}

	batchID, err := h.banQueue.Enqueue(c.Request.Context(), req, operatorID)
	if err != nil {
		h.logger.Warn("Batch ban rejected",
			zap.String("operator_id", operatorID),
			zap.Int("count", len(req.PlayerIDs)),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, BatchBanResponse{
		BatchID: batchID,
		Count:   len(req.PlayerIDs),
		Status:  "queued",
	})
}

// Stats returns the daily dashboard numbers
// @Summary Daily statistics
// @Description Aggregate operational numbers for the dashboard
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.DailyStats
// @Failure 401 {object} domain.ErrorResponse
// @Router /stats/daily [get]
func (h *PlayerHandler) Stats(c *gin.Context) {
	stats, err := h.playerUseCase.GetDailyStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
