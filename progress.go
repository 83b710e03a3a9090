package coloring

import "golang.org/x/time/rate"

// progressReporter throttles ingest progress logging through a token
// bucket so a tight AddSet loop over millions of sets never logs more
// often than the configured rate, regardless of how fast the caller
// drives ingest.
type progressReporter struct {
	limiter *rate.Limiter
	logger  *Logger
}

// defaultProgressEventsPerSecond caps unthrottled ingest logging at one
// line per two seconds, matching the cadence a human watching a
// long-running build would want.
const defaultProgressEventsPerSecond = 0.5

func newProgressReporter(logger *Logger, eventsPerSecond float64) *progressReporter {
	return &progressReporter{
		limiter: rate.NewLimiter(rate.Limit(eventsPerSecond), 1),
		logger:  logger,
	}
}

func (p *progressReporter) tick(added int) {
	if p == nil || p.logger == nil {
		return
	}
	if p.limiter.Allow() {
		p.logger.logProgress(added)
	}
}
