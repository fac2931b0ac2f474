package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"authgrid.org/api/authv1"
	"authgrid.org/internal/adminauth"
	"authgrid.org/internal/assignment"
	"authgrid.org/internal/authz"
	"authgrid.org/internal/cache"
	"authgrid.org/internal/config"
	"authgrid.org/internal/grpcapi"
	"authgrid.org/internal/mfa"
	"authgrid.org/internal/obs"
	"authgrid.org/internal/outbox"
	"authgrid.org/internal/sanction"
	"authgrid.org/internal/session"
	"authgrid.org/internal/store/pg"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	obs.Init()
	obs.InitBuildInfo(cfg.Version, cfg.Commit)

	store, err := pg.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer store.Close()

	redis := cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer redis.Close()

	sessions := session.NewService(store.Sessions(), cfg.JWTSecret, cfg.JWTIssuer,
		cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	mfaSvc := mfa.NewService(store.Admins(), cfg.JWTIssuer)
	events := outbox.NewPublisher(store.Outbox())
	admins := adminauth.NewService(store.Admins(), redis, sessions, mfaSvc, events,
		adminauth.WithLockout(cfg.LockoutThreshold, cfg.LockoutDuration),
		adminauth.WithChallengeTTL(cfg.MFAChallengeTTL),
	)

	srv := grpcapi.NewServer(
		authz.NewResolver(store.Authz()),
		authz.NewReader(store.Authz()),
		sanction.NewEvaluator(store.Sanctions()),
		admins,
		sessions,
		mfaSvc,
		assignment.NewManager(store.Assignments()),
	)

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		grpcapi.MetricsInterceptor(),
		grpcapi.NewLoginLimiter(cfg.LoginRatePerMinute).Interceptor(),
	))
	authv1.RegisterAuthServiceServer(grpcServer, srv)

	listener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatalf("listen %s: %v", cfg.GRPCAddr, err)
	}

	ops := &http.Server{
		Addr:              cfg.OpsAddr,
		Handler:           opsHandler(store, redis),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting authgrid-api %s: grpc %s, ops %s", cfg.Version, cfg.GRPCAddr, cfg.OpsAddr)

	go func() {
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()
	go func() {
		if err := ops.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ops listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	_ = ops.Shutdown(ctx)
	log.Println("Stopped")
}

func opsHandler(store *pg.Store, redis *cache.Redis) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", obs.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		if err := redis.Ping(ctx); err != nil {
			http.Error(w, "cache not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	return obs.Instrument(mux)
}
