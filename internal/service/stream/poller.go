package stream

import (
	"context"
	"fmt"
	"time"

	"CryptoAPI/internal/domain/models"
	drepo "CryptoAPI/internal/domain/repository"
	xlogger "CryptoAPI/pkg/logger"
	"CryptoAPI/pkg/util"

	"github.com/robfig/cron/v3"
)

const pollTimeout = 15 * time.Second

// Poller periodically fetches prices for tracked assets and feeds the hub.
type Poller struct {
	source  drepo.MarketSource
	hub     *Hub
	assets  []string
	spec    string
	cron    *cron.Cron
	metrics drepo.Metrics
	logger  *xlogger.Logger
}

// NewPoller creates a poller with a cron spec like "@every 30s".
func NewPoller(source drepo.MarketSource, hub *Hub, assets []string, spec string, metrics drepo.Metrics, logger *xlogger.Logger) *Poller {
	if spec == "" {
		spec = "@every 30s"
	}
	return &Poller{
		source:  source,
		hub:     hub,
		assets:  assets,
		spec:    spec,
		cron:    cron.New(),
		metrics: metrics,
		logger:  logger,
	}
}

// Start schedules polling and performs an immediate first poll.
func (p *Poller) Start() error {
	if _, err := p.cron.AddFunc(p.spec, p.poll); err != nil {
		return fmt.Errorf("schedule price poll: %w", err)
	}
	p.cron.Start()
	go p.poll()

	p.logger.Info("price poller started",
		xlogger.String("schedule", p.spec),
		xlogger.Strings("assets", p.assets),
	)
	return nil
}

// Stop halts the schedule and waits for a running poll to finish.
func (p *Poller) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
	p.logger.Info("price poller stopped")
}

func (p *Poller) poll() {
	ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
	defer cancel()

	assets, err := p.source.Markets(ctx, p.assets)
	if err != nil {
		p.metrics.RecordError("stream_poll")
		p.logger.Warn("price poll failed", xlogger.Error(err))
		return
	}

	now := time.Now().UTC()
	ticks := make([]models.PriceTick, 0, len(assets))
	for _, a := range assets {
		p.metrics.RecordLastPrice(a.ID, a.CurrentPrice)
		ticks = append(ticks, models.PriceTick{
			ID:        a.ID,
			Symbol:    a.Symbol,
			Price:     util.Round2(a.CurrentPrice),
			Change24h: util.Round2(a.PriceChangePct24h),
			At:        now,
		})
	}

	p.hub.Broadcast(ticks)
}
