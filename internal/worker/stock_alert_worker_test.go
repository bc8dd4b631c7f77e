package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSender captures sent alerts.
type stubSender struct {
	sent []struct{ to, subject, body string }
	err  error
}

func (s *stubSender) Send(to, subject, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, struct{ to, subject, body string }{to, subject, body})
	return nil
}

var _ AlertSender = (*stubSender)(nil)

func rawPayload(t *testing.T, p StockAlertPayload) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	return raw
}

func TestStockAlertSendsEmail(t *testing.T) {
	sender := &stubSender{}
	w := NewStockAlertWorker(sender, "ops@example.com")

	w.Process(context.Background(), nil, rawPayload(t, StockAlertPayload{
		ProductID: "abc", Name: "Soda", Stock: 3,
	}))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "ops@example.com", sender.sent[0].to)
	assert.Equal(t, "Low stock: Soda", sender.sent[0].subject)
	assert.Contains(t, sender.sent[0].body, "down to 3 units")
}

func TestStockAlertSkipsWhenNoRecipientConfigured(t *testing.T) {
	sender := &stubSender{}
	w := NewStockAlertWorker(sender, "")

	w.Process(context.Background(), nil, rawPayload(t, StockAlertPayload{Name: "Soda", Stock: 3}))

	assert.Empty(t, sender.sent)
}

func TestStockAlertIgnoresInvalidPayload(t *testing.T) {
	sender := &stubSender{}
	w := NewStockAlertWorker(sender, "ops@example.com")

	w.Process(context.Background(), nil, json.RawMessage(`{not json`))

	assert.Empty(t, sender.sent)
}

func TestStockAlertSendFailureDoesNotPanicWithoutRedis(t *testing.T) {
	sender := &stubSender{err: errors.New("smtp down")}
	w := NewStockAlertWorker(sender, "ops@example.com")

	// nil redis client means no DLQ; the failure is logged and dropped.
	w.Process(context.Background(), nil, rawPayload(t, StockAlertPayload{Name: "Soda", Stock: 3}))

	assert.Empty(t, sender.sent)
}
