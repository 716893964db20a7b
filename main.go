package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/kanade-k-1228/traj/api"
	"github.com/kanade-k-1228/traj/internal/config"
	"github.com/kanade-k-1228/traj/internal/session"
	"github.com/kanade-k-1228/traj/internal/version"
)

var (
	listen     = flag.String("listen", "", "Listen address (overrides config)")
	configPath = flag.String("config", "", "Path to a .json or .yaml config file")
	verbose    = flag.Bool("v", false, "Log every HTTP request")
)

func main() {
	flag.Parse()
	log.Printf("traj %s (%s, built %s)", version.Version, version.GitSHA, version.BuildTime)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	addr := cfg.GetListen()
	if *listen != "" {
		addr = *listen
	}

	sess := session.New(cfg.GetTimeSteps(), cfg.GetDt())
	log.Printf("session %s: %d steps at dt=%gs, mode=%s",
		sess.ID(), sess.TimeSteps(), sess.Dt(), sess.Mode())

	mux := http.NewServeMux()
	apiMux := api.NewServer(sess).ServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiMux))

	var handler http.Handler = mux
	if *verbose {
		handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("got request %q", r.URL.Path)
			mux.ServeHTTP(w, r)
		})
	}

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Printf("graceful shutdown complete")
}
