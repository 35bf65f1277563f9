package alarm

import "github.com/rs/zerolog/log"

// LogPublisher writes reminders to the log instead of a broker. Used when no
// broker is configured, so scheduling still behaves identically in dev.
type LogPublisher struct{}

func (LogPublisher) Publish(clientID string, payload []byte) error {
	log.Info().Str("client", clientID).RawJSON("reminder", payload).Msg("reminder fired")
	return nil
}
