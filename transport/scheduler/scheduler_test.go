package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adokuru/affordaily-api/config"
	"github.com/adokuru/affordaily-api/shared/constant"
)

func TestSchedulerUntilNext(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		hour int
		want time.Duration
	}{
		{
			name: "before the hour fires the same day",
			now:  time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
			hour: constant.CheckoutHour,
			want: 2*time.Hour + 30*time.Minute,
		},
		{
			name: "past the hour rolls over to tomorrow",
			now:  time.Date(2025, 3, 10, 13, 0, 0, 0, time.UTC),
			hour: constant.CheckoutHour,
			want: 23 * time.Hour,
		},
		{
			name: "exactly on the hour waits a full day",
			now:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			hour: 0,
			want: 24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil, &config.Config{})
			s.now = func() time.Time { return tt.now }

			assert.Equal(t, tt.want, s.untilNext(tt.hour))
		})
	}
}

func TestSchedulerStartDisabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Checkout.SchedulerEnable = false

	s := New(nil, cfg)
	s.Start()
	s.Stop()

	assert.Nil(t, s.cancel)
}
