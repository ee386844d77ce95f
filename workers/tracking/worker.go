// Package tracking refreshes the remaining-time estimate on order tracking
// rows while their order is en route.
package tracking

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Worker struct {
	logger *zap.Logger
	repo   *repository
	busy   atomic.Bool
}

func NewWorker(logger *zap.Logger, db *gorm.DB) *Worker {
	return &Worker{
		logger: logger,
		repo:   newRepository(db),
	}
}

func (w *Worker) Schedule() string {
	return "*/5 * * * *"
}

func (w *Worker) Ready(time.Time) bool {
	return !w.busy.Load()
}

func (w *Worker) Execute() {
	if !w.busy.CompareAndSwap(false, true) {
		return
	}
	defer w.busy.Store(false)

	trackings, err := w.repo.enRouteTrackings()
	if err != nil {
		w.logger.Error("Failed to load en-route trackings", zap.Error(err))
		return
	}

	if len(trackings) == 0 {
		w.logger.Info("No en-route orders to refresh")
		return
	}

	now := time.Now()
	for i := range trackings {
		t := &trackings[i]

		remaining := t.EstimatedTime - now.Sub(t.UpdatedAt)
		if remaining < 0 {
			remaining = 0
		}
		t.EstimatedTime = remaining

		if err := w.repo.save(t); err != nil {
			w.logger.Error("Failed to save tracking",
				zap.Uint("order_id", t.OrderID),
				zap.Error(err),
			)
			continue
		}
	}

	w.logger.Info("Tracking refresh completed", zap.Int("rows", len(trackings)))
}
