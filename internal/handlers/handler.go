package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// CycleRunner runs one full birthday cycle for the given date.
type CycleRunner interface {
	Run(ctx context.Context, today time.Time) error
}

// Handler exposes the operational HTTP surface: a health check and a
// manual trigger for the daily cycle.
type Handler struct {
	cycle CycleRunner
}

func New(cycle CycleRunner) *Handler {
	return &Handler{cycle: cycle}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

// HandleRunCycle kicks off one cycle for today. The cycle runs in the
// background: invitation loops are paced and can take minutes.
func (h *Handler) HandleRunCycle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	go func() {
		if err := h.cycle.Run(context.Background(), time.Now()); err != nil {
			slog.Error("manually triggered cycle failed", "error", err)
		}
	}()

	w.WriteHeader(http.StatusAccepted)
	fmt.Fprintf(w, "cycle started")
}
