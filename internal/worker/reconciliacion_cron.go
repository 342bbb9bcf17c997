package worker

// reconciliacion_cron.go
// Background goroutine that periodically recomputes every team's cached
// aggregates from the event ledger. Catches anything the inline recompute
// and the retry queue both missed (e.g. a config change to puntos_para_gol
// that shifts every team's goles at once).

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Reconciliador recomputes the cached aggregates of every team.
type Reconciliador interface {
	RecalcularTodos(ctx context.Context) (int, error)
}

// StartReconciliacionCron launches a goroutine that ticks every `interval`
// and runs a full recompute. It respects the context for graceful shutdown.
func StartReconciliacionCron(ctx context.Context, reconciliador Reconciliador, interval time.Duration) {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Info().Dur("interval", interval).Msg("reconciliacion_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("reconciliacion_cron: shutting down")
				return
			case <-ticker.C:
				procesados, err := reconciliador.RecalcularTodos(ctx)
				if err != nil {
					log.Error().Err(err).Int("procesados", procesados).
						Msg("reconciliacion_cron: recompute finished with errors")
					continue
				}
				log.Debug().Int("procesados", procesados).Msg("reconciliacion_cron: recompute done")
			}
		}
	}()
}
