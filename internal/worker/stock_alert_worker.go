package worker

// stock_alert_worker.go
// Processes low-stock alert jobs from QueueStockAlert: one email per product
// that a sale pushed below the configured threshold. Delivery is best-effort;
// jobs that cannot be delivered land in the DLQ for manual inspection.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// AlertSender delivers an alert message. Satisfied by infra.Mailer; tests
// substitute a capturing stub.
type AlertSender interface {
	Send(to, subject, body string) error
}

// StockAlertWorker emails the configured address whenever a product falls
// below the low-stock threshold.
type StockAlertWorker struct {
	sender AlertSender
	to     string
}

func NewStockAlertWorker(sender AlertSender, to string) *StockAlertWorker {
	return &StockAlertWorker{sender: sender, to: to}
}

// Process handles one alert job.
func (w *StockAlertWorker) Process(ctx context.Context, rdb *redis.Client, raw json.RawMessage) {
	var payload StockAlertPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("stock_alert: invalid payload")
		return
	}
	if w.to == "" {
		log.Debug().Str("product", payload.Name).Msg("stock_alert: no alert email configured — skipping")
		return
	}

	subject := fmt.Sprintf("Low stock: %s", payload.Name)
	body := fmt.Sprintf("Product %q is down to %d units. Consider restocking.\nProduct ID: %s\n",
		payload.Name, payload.Stock, payload.ProductID)

	if err := w.sender.Send(w.to, subject, body); err != nil {
		log.Error().Err(err).Str("product", payload.Name).Msg("stock_alert: failed to send email")
		if rdb != nil {
			SendToDLQ(ctx, rdb, QueueStockAlert, "stock_alert", raw, err.Error(), 1)
		}
		return
	}
	log.Info().Str("product", payload.Name).Int("stock", payload.Stock).Msg("stock_alert: alert sent")
}
