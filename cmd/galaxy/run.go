package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/galaxy/audio"
	"github.com/lixenwraith/galaxy/engine"
	"github.com/lixenwraith/galaxy/graph"
	"github.com/lixenwraith/galaxy/metrics"
	"github.com/lixenwraith/galaxy/render"
	"github.com/lixenwraith/galaxy/terminal"
)

// errQuit ends the run group when the view asks to quit
var errQuit = errors.New("quit")

func runInteractive(ctx context.Context, o *options) error {
	log, closer, err := setupLogging(o.debug)
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	ds, err := o.loadDataset()
	if err != nil {
		return err
	}

	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	screen, err := terminal.NewScreen(terminal.WithPauseOnBlur(cfg.Engine.PauseOnBlur))
	if err != nil {
		return err
	}
	defer screen.Close()

	w, h := screen.Viewport()
	g := graph.Build(ds, cfg.Layout, graph.Viewport{Width: w, Height: h}, o.graphOptions()...)

	viewOpts := []engine.ViewOption{
		engine.WithRenderer(render.NewCellRenderer(screen, screen.CellW, screen.CellH)),
		engine.WithObserver(collector),
		engine.WithLogger(log.With().Str("component", "view").Logger()),
		engine.WithReducedMotion(o.motion()),
		engine.WithNavigator(func(id string) {
			log.Info().Str("domain", id).Msg("navigate")
		}),
	}
	if player := startAudio(o, log); player != nil {
		defer player.Close()
		viewOpts = append(viewOpts, engine.WithCues(player))
	}
	view := engine.NewView(g, cfg, viewOpts...)

	sched := engine.NewScheduler(view,
		engine.WithRegistry(engine.NewRegistry(), ds.Name),
		engine.WithSchedulerLogger(log.With().Str("component", "scheduler").Logger()),
	)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	if o.tour {
		sched.Do(func(v *engine.View) { v.TourNext() })
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return screen.Pump(ctx, sched.Post)
	})
	eg.Go(func() error {
		select {
		case <-sched.Quit():
			return errQuit
		case <-ctx.Done():
			return nil
		}
	})
	if o.metricsAddr != "" {
		eg.Go(func() error {
			return serveMetrics(ctx, o.metricsAddr, collector, log)
		})
	}

	err = eg.Wait()
	log.Info().Uint64("frames", sched.Frames()).Uint64("parks", sched.Parks()).Msg("galaxy exiting")
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// startAudio returns a running player, or nil when audio is off or unavailable
func startAudio(o *options, log zerolog.Logger) *audio.Player {
	if o.noAudio {
		return nil
	}
	cfg := audio.LoadConfig()
	if !cfg.Enabled {
		return nil
	}
	player := audio.NewPlayer(cfg)
	if err := player.Start(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing without cues")
		return nil
	}
	return player
}

// serveMetrics serves /metrics until ctx is cancelled
func serveMetrics(ctx context.Context, addr string, collector *metrics.Collector, log zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("serving prometheus metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("metrics server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
