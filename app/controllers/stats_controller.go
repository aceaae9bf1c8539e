package controllers

import (
	"net/http"

	"github.com/truethari/SocialMedia-API/app/repositories"
)

// StatsController exposes the operation counters
type StatsController struct {
	statsRepo repositories.StatsRepository
}

// NewStatsController creates a new StatsController
func NewStatsController(statsRepo repositories.StatsRepository) *StatsController {
	return &StatsController{statsRepo: statsRepo}
}

// Show returns a snapshot of all counters
func (sc *StatsController) Show(w http.ResponseWriter, r *http.Request) {
	snapshot, err := sc.statsRepo.Snapshot()
	if err != nil {
		mapError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, snapshot)
}
