package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"epic-relay-api/internal/metrics"
	"epic-relay-api/internal/upstream"
)

// KeepAliveConfig holds configuration for the self-ping scheduler.
type KeepAliveConfig struct {
	// URL is pinged on every tick. Usually the relay's own public address.
	URL string

	// Interval is how often the ping runs.
	// Default: 5 minutes
	Interval time.Duration

	// Timeout bounds a single ping.
	// Default: 30 seconds
	Timeout time.Duration
}

// KeepAlive pings a URL on a fixed interval so the hosting platform does not
// suspend the process for inactivity. Failures are logged and never escalate.
type KeepAlive struct {
	client    *upstream.Client
	config    KeepAliveConfig
	ticker    *time.Ticker
	stopCh    chan struct{}
	stopOnce  sync.Once
	isRunning bool
	mu        sync.Mutex
}

// NewKeepAlive creates a new keep-alive scheduler.
func NewKeepAlive(client *upstream.Client, config KeepAliveConfig) *KeepAlive {
	if config.Interval == 0 {
		config.Interval = 5 * time.Minute
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &KeepAlive{
		client: client,
		config: config,
		stopCh: make(chan struct{}),
	}
}

// Start begins the ping loop.
func (k *KeepAlive) Start() {
	k.mu.Lock()
	if k.isRunning {
		k.mu.Unlock()
		return
	}
	k.isRunning = true
	k.ticker = time.NewTicker(k.config.Interval)
	k.mu.Unlock()

	log.Printf("[KeepAlive] Started - URL: %s, Interval: %v", k.config.URL, k.config.Interval)

	go k.run()
}

// run is the main ping loop.
func (k *KeepAlive) run() {
	for {
		select {
		case <-k.ticker.C:
			k.runPing()
		case <-k.stopCh:
			log.Printf("[KeepAlive] Stopped")
			return
		}
	}
}

// runPing performs one ping and logs the outcome.
func (k *KeepAlive) runPing() {
	ctx, cancel := context.WithTimeout(context.Background(), k.config.Timeout)
	defer cancel()

	status, err := k.PingNow(ctx)
	if err != nil {
		log.Printf("[KeepAlive] Error in self-ping: %v", err)
		return
	}
	log.Printf("[KeepAlive] processed %d", status)
}

// PingNow issues a single ping and returns the status it got back.
func (k *KeepAlive) PingNow(ctx context.Context) (int, error) {
	resp, err := k.client.Do(ctx, upstream.Request{
		Service: "keepalive",
		Method:  http.MethodGet,
		URL:     k.config.URL,
	})
	if err != nil {
		metrics.KeepAlivePings.WithLabelValues("error").Inc()
		return 0, err
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		metrics.KeepAlivePings.WithLabelValues("error").Inc()
		return resp.StatusCode, fmt.Errorf("keep-alive target responded with status %d", resp.StatusCode)
	}

	metrics.KeepAlivePings.WithLabelValues("ok").Inc()
	return resp.StatusCode, nil
}

// Stop stops the ping loop.
func (k *KeepAlive) Stop() {
	k.stopOnce.Do(func() {
		k.mu.Lock()
		defer k.mu.Unlock()

		if k.ticker != nil {
			k.ticker.Stop()
		}
		close(k.stopCh)
		k.isRunning = false
	})
}
