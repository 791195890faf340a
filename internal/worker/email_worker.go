package worker

// Processes notification jobs from QueueEmail. Delivery is best-effort:
// a failed send is parked in the DLQ and never reported to the caller.

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Mailer is the SMTP surface the worker needs (infra.Mailer in production).
type Mailer interface {
	Send(to, subject, body string) error
}

// EmailJobPayload is the job envelope pushed to QueueEmail.
type EmailJobPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	FactNum int    `json:"fact_num"`
}

type EmailWorker struct {
	mailer Mailer
	rdb    *redis.Client
}

func NewEmailWorker(mailer Mailer, rdb *redis.Client) *EmailWorker {
	return &EmailWorker{mailer: mailer, rdb: rdb}
}

func (w *EmailWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Int("fact_num", payload.FactNum).Msg("email_worker: empty to_email, skipping")
		return
	}

	if err := w.mailer.Send(payload.ToEmail, payload.Subject, payload.Body); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Int("fact_num", payload.FactNum).
			Msg("email_worker: send failed")
		if w.rdb != nil {
			SendToDLQ(ctx, w.rdb, QueueEmail, "email", raw, err.Error(), 1)
		}
		return
	}
	log.Info().Str("to", payload.ToEmail).Int("fact_num", payload.FactNum).
		Msg("email_worker: notification sent")
}
