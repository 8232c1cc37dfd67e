package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"hotel_booking/internal/adapters/console"
	server "hotel_booking/internal/adapters/http_server"
	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/app"
	"hotel_booking/internal/shared"
	"hotel_booking/internal/storage/memory"
)

func main() {
	cfg := shared.Load()

	// stdout carries the prompts, so logs go to stderr
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// the metrics server lives exactly as long as the session
	srvCtx, stopSrv := context.WithCancel(ctx)
	var g errgroup.Group
	if cfg.MetricsAddr != "" {
		srv := server.New()
		srv.MountHandlers(observability.MetricsHandler(observability.InitRegistry()))
		g.Go(func() error { return srv.Run(srvCtx, cfg.MetricsAddr) })
	}

	// deps
	rooms := memory.New(memory.DefaultRooms())
	svc := app.NewBookingService(rooms, app.Pricing{
		ServiceFee:    cfg.ServiceFee,
		PaymentMethod: cfg.PaymentMethod,
	})
	term := console.New(os.Stdin, os.Stdout)
	sess := app.NewSession(svc, term, observability.Recorder{}, log.Logger)

	// failures are already shown to the guest; the run still exits 0
	_, _ = sess.Run(ctx)

	stopSrv()
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("metrics server failed")
	}
}
