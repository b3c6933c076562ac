package store

import "go.uber.org/zap"

// Open returns the durable store when a DSN is configured and reachable, and
// otherwise degrades to the in-memory store with a warning. Degraded mode is
// an accepted state, not a startup failure: data will not survive a restart.
func Open(dsn string, log *zap.Logger) Store {
	if dsn == "" {
		log.Warn("DATABASE_URL not set, using in-memory store (data will be lost on restart)")
		return NewMemory()
	}

	pg, err := NewPostgres(dsn, log)
	if err != nil {
		log.Warn("durable store unavailable, using in-memory store (data will be lost on restart)",
			zap.Error(err))
		return NewMemory()
	}

	log.Info("document store ready", zap.String("backend", "postgres"))
	return pg
}
