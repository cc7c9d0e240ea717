package goalsync

import (
	"math"

	"github.com/finwell/team-finance-app/models"
)

type GoalStats struct {
	Total              int     `json:"total"`
	Active             int     `json:"active"`
	Completed          int     `json:"completed"`
	AverageAchievement float64 `json:"average_achievement"`
}

// computeStats counts goals by status and averages their achievement rates.
// Negative rates clamp to zero; the average is rounded to one decimal.
func computeStats(goals []models.FinancialGoal) GoalStats {
	stats := GoalStats{Total: len(goals)}
	if len(goals) == 0 {
		return stats
	}

	var sum float64
	for i := range goals {
		switch goals[i].Status {
		case models.GoalStatusActive:
			stats.Active++
		case models.GoalStatusCompleted:
			stats.Completed++
		}
		rate := goals[i].AchievementRate()
		if rate < 0 {
			rate = 0
		}
		sum += rate
	}

	stats.AverageAchievement = math.Round(sum/float64(len(goals))*10) / 10
	return stats
}
