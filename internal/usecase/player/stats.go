package player

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
)

const topAdminLimit = 10

// getDailyStats aggregates the dashboard numbers over the last 24 hours
func (uc *PlayerUseCase) getDailyStats(ctx context.Context) (*domain.DailyStats, error) {
	stats := &domain.DailyStats{TopAdmins: []domain.TopAdmin{}}

	online, err := uc.sessions.OnlineCount(ctx)
	if err != nil {
		// The dashboard still renders without the live count.
		uc.logger.Warn("Failed to read online count", zap.Error(err))
	} else {
		stats.OnlineCount = online
	}

	pending, err := uc.logRepo.CountPending()
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to count pending operations", 500, err)
	}
	stats.PendingCount = pending

	banned, err := uc.playerRepo.CountBanned()
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to count banned players", 500, err)
	}
	stats.BannedCount = banned

	since := time.Now().Add(-24 * time.Hour)

	grants, err := uc.logRepo.ListSuccessfulGrantsSince(since)
	if err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list recent grants", 500, err)
	}

	perAdmin := make(map[string]*domain.TopAdmin)
	for _, g := range grants {
		amount := g.Details.Int64("amount")
		stats.TotalGoldIssued += amount

		entry, ok := perAdmin[g.OperatorID]
		if !ok {
			entry = &domain.TopAdmin{AdminID: g.OperatorID}
			perAdmin[g.OperatorID] = entry
		}
		entry.TotalAmount += amount
		entry.OperationCount++
	}

	if len(perAdmin) > 0 {
		ids := make([]string, 0, len(perAdmin))
		for id := range perAdmin {
			ids = append(ids, id)
		}

		names, err := uc.adminRepo.GetUsernames(ids)
		if err != nil {
			uc.logger.Warn("Failed to resolve admin names", zap.Error(err))
			names = map[string]string{}
		}

		top := make([]domain.TopAdmin, 0, len(perAdmin))
		for _, entry := range perAdmin {
			entry.AdminName = names[entry.AdminID]
			top = append(top, *entry)
		}
		sort.Slice(top, func(i, j int) bool {
			if top[i].TotalAmount != top[j].TotalAmount {
				return top[i].TotalAmount > top[j].TotalAmount
			}
			return top[i].AdminID < top[j].AdminID
		})
		if len(top) > topAdminLimit {
			top = top[:topAdminLimit]
		}
		stats.TopAdmins = top
	}

	return stats, nil
}
