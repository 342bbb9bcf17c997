package worker

// email_worker.go
// Processes email jobs from QueueEmail (penalty notifications, ranking
// reports). All deliveries go through the SMTP circuit breaker so a downed
// mail server fast-fails instead of blocking the pool.

import (
	"context"
	"encoding/json"

	"superganaderia/internal/infra"

	"github.com/rs/zerolog/log"
)

type EmailWorker struct {
	mailer *infra.Mailer
	cb     *infra.CircuitBreaker
}

func NewEmailWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker) *EmailWorker {
	return &EmailWorker{mailer: mailer, cb: cb}
}

// Process sends one email. Returns an error to trigger a retry, except for
// payloads that can never succeed (malformed JSON, empty recipient).
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload EmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return nil
	}
	if payload.To == "" {
		log.Warn().Msg("email_worker: empty recipient — skipping")
		return nil
	}

	err := w.cb.Execute(func() error {
		return w.mailer.Send(payload.To, payload.Subject, payload.Body, payload.PDFPath)
	})
	if err != nil {
		log.Error().Err(err).Str("to", payload.To).Msg("email_worker: failed to send email")
		return err
	}
	log.Info().Str("to", payload.To).Msg("email_worker: email sent")
	return nil
}
