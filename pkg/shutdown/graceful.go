package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/honeycarbs/job-tracker/pkg/logging"
)

type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Graceful blocks until one of signals arrives, then stops every s in order
func Graceful(signals []os.Signal, timeout time.Duration, log *logging.Logger, s ...Stoppable) {
	sigCtx, stop := signal.NotifyContext(context.Background(), signals...)
	defer stop()

	<-sigCtx.Done()
	log.Info("shutdown signal received")

	if err := StopAll(timeout, log, s...); err != nil {
		log.Warn("graceful shutdown completed with error", "err", err)
	} else {
		log.Info("graceful shutdown completed successfully")
	}
}

// StopAll shuts down each Stoppable under one shared timeout; a failure does not
// prevent the rest from stopping
func StopAll(timeout time.Duration, log *logging.Logger, s ...Stoppable) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	for i, st := range s {
		if st == nil {
			continue
		}
		if err := st.Shutdown(ctx); err != nil {
			log.Warn("component shutdown failed", "index", i, "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
