package pos

import "github.com/rs/zerolog/log"

// Notifier is the terminal's user-facing notification channel. The real
// terminal shows toasts; tests substitute a capturing stub.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the structured log. It is the default
// when no UI notifier is wired in.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { log.Info().Str("kind", "success").Msg(msg) }
func (LogNotifier) Info(msg string)    { log.Info().Str("kind", "info").Msg(msg) }
func (LogNotifier) Error(msg string)   { log.Error().Str("kind", "error").Msg(msg) }
