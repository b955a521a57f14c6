package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-autonav/internal/adapter"
	"github.com/MKhiriev/go-autonav/internal/config"
	"github.com/MKhiriev/go-autonav/internal/logger"
	"github.com/MKhiriev/go-autonav/models"
)

// PositionReporter plays one positioning tag: it reports a position, moves
// by a fixed step and repeats until the configured number of reports is sent.
type PositionReporter struct {
	adapter adapter.PositioningAdapter

	address      string
	posX, posY   float64
	stepX, stepY float64
	interval     time.Duration
	count        int

	logger *logger.Logger
}

func NewPositionReporter(a adapter.PositioningAdapter, cfg config.TagSimConfig, logger *logger.Logger) *PositionReporter {
	return &PositionReporter{
		adapter:  a,
		address:  cfg.Address,
		posX:     cfg.PosX,
		posY:     cfg.PosY,
		stepX:    cfg.StepX,
		stepY:    cfg.StepY,
		interval: cfg.Interval,
		count:    cfg.Count,
		logger:   logger,
	}
}

// Run sends the reports. Rejections by the backend (unknown tag, bad
// signature) stop the worker; unavailability is logged and the next report
// is attempted on schedule.
func (p *PositionReporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	x, y := p.posX, p.posY
	for i := 0; i < p.count; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}

		report := models.TagPositionReport{Address: p.address, PosX: x, PosY: y}
		tag, err := p.adapter.ReportPosition(ctx, report)
		switch {
		case err == nil:
			p.logger.Info().
				Str("tag", tag.Name).
				Str("address", p.address).
				Float64("pos_x", x).
				Float64("pos_y", y).
				Msg("position accepted")
		case isPermanent(err):
			return fmt.Errorf("tag %s: %w", p.address, err)
		default:
			p.logger.Warn().Err(err).Str("address", p.address).Msg("position report failed")
		}

		x += p.stepX
		y += p.stepY
	}

	return nil
}

func isPermanent(err error) bool {
	return errors.Is(err, adapter.ErrNotFound) ||
		errors.Is(err, adapter.ErrBadRequest) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
