package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/adokuru/affordaily-api/config"
	"github.com/adokuru/affordaily-api/internal/domains/booking/service"
	"github.com/adokuru/affordaily-api/shared/constant"
	"github.com/adokuru/affordaily-api/shared/timezone"
)

// Scheduler drives the two daily lifecycle sweeps: midnight moves due
// bookings to pending checkout, noon force-closes the ones still open.
type Scheduler struct {
	bookingSvc service.Booking
	cfg        *config.Config
	midnight   *semaphore.Weighted
	noon       *semaphore.Weighted
	now        func() time.Time
	cancel     context.CancelFunc
}

func New(bookingSvc service.Booking, cfg *config.Config) *Scheduler {
	return &Scheduler{
		bookingSvc: bookingSvc,
		cfg:        cfg,
		midnight:   semaphore.NewWeighted(1),
		noon:       semaphore.NewWeighted(1),
		now:        timezone.Now,
	}
}

// Start launches the sweep loops. It is a no-op when the scheduler is
// disabled, which is how deployments driven by an external cron run.
func (s *Scheduler) Start() {
	if !s.cfg.Checkout.SchedulerEnable {
		log.Info().Msg("Checkout scheduler disabled, sweeps must be triggered via the internal endpoints")

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx, 0, s.midnight, s.runMidnight)
	go s.loop(ctx, constant.CheckoutHour, s.noon, s.runNoon)

	log.Info().Msg("Checkout scheduler started")
}

func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

// loop fires once a day at the given hour. The semaphore skips a tick when
// the previous run of the same sweep is still going.
func (s *Scheduler) loop(ctx context.Context, hour int, sem *semaphore.Weighted, run func(ctx context.Context, asOf time.Time)) {
	for {
		timer := time.NewTimer(s.untilNext(hour))

		select {
		case <-ctx.Done():
			timer.Stop()

			return
		case <-timer.C:
		}

		if !sem.TryAcquire(1) {
			log.Warn().Int("hour", hour).Msg("previous sweep still running, skipping tick")

			continue
		}

		run(ctx, s.now())
		sem.Release(1)
	}
}

func (s *Scheduler) untilNext(hour int) time.Duration {
	now := s.now()

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next.Sub(now)
}

func (s *Scheduler) runMidnight(ctx context.Context, asOf time.Time) {
	if _, err := s.bookingSvc.RunMidnightSweep(ctx, asOf); err != nil {
		log.Error().Err(err).Msg("scheduled midnight sweep failed")
	}
}

func (s *Scheduler) runNoon(ctx context.Context, asOf time.Time) {
	if _, err := s.bookingSvc.RunNoonSweep(ctx, asOf); err != nil {
		log.Error().Err(err).Msg("scheduled noon sweep failed")
	}
}
