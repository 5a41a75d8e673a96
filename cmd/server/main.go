package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"wellnest/wellness-service/internal/config"
	"wellnest/wellness-service/internal/handler"
	"wellnest/wellness-service/internal/repository"
	"wellnest/wellness-service/internal/service"
	"wellnest/wellness-service/pkg/db"
	"wellnest/wellness-service/pkg/helpers"
	"wellnest/wellness-service/pkg/logger"
	"wellnest/wellness-service/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

func main() {
	// Initialize logger
	log := logger.NewLogger("wellness-service")
	log.Info("Starting Wellness Service...")

	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment variables")
	}

	cfg := config.LoadConfig()

	// Initialize database connection
	conn, err := db.NewConnection(db.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.Database,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer conn.Close()

	// Validate schema
	schemaGuard := db.NewSchemaGuard(conn.DB)
	if err := schemaGuard.ValidateTables(db.WellnessTables()); err != nil {
		log.WithError(err).Warn("Schema validation warning")
	}

	log.Info("Database connected and schema validated")

	// Initialize repositories
	userRepo := repository.NewUserRepository(conn.DB)
	moduleRepo := repository.NewModuleRepository(conn.DB)
	challengeRepo := repository.NewChallengeRepository(conn.DB)
	awardRepo := repository.NewAwardRepository(conn.DB)
	redeemableRepo := repository.NewRedeemableRepository(conn.DB)
	participationRepo := repository.NewParticipationRepository(conn.DB)

	// Initialize services
	ids := helpers.NewIDGenerator()
	userService := service.NewUserService(userRepo, ids)
	moduleService := service.NewModuleService(moduleRepo, challengeRepo)
	challengeService := service.NewChallengeService(challengeRepo, moduleRepo, redeemableRepo)
	awardService := service.NewAwardService(awardRepo)
	redeemableService := service.NewRedeemableService(redeemableRepo, challengeRepo, awardRepo)
	participationService := service.NewParticipationService(userRepo, challengeRepo, participationRepo)

	// Initialize HTTP handlers
	validate := helpers.NewCustomValidator()
	userHandler := handler.NewUserHandler(userService, validate)
	moduleHandler := handler.NewModuleHandler(moduleService, validate)
	challengeHandler := handler.NewChallengeHandler(challengeService, participationService, validate)
	awardHandler := handler.NewAwardHandler(awardService, validate)
	redeemableHandler := handler.NewRedeemableHandler(redeemableService, validate)

	serviceMetrics := metrics.NewMetrics("wellness")

	mux := http.NewServeMux()
	userHandler.RegisterRoutes(mux)
	moduleHandler.RegisterRoutes(mux)
	challengeHandler.RegisterRoutes(mux)
	awardHandler.RegisterRoutes(mux)
	redeemableHandler.RegisterRoutes(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := conn.Ping(); err != nil {
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.HTTPPort,
		Handler:      metricsMiddleware(serviceMetrics, mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// Metrics endpoint on its own port
	metricsServer := &http.Server{
		Addr:    ":" + cfg.Server.MetricsPort,
		Handler: promhttp.Handler(),
	}

	// gRPC server carries health checks and reflection for probes and
	// debugging tools
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logger.UnaryServerInterceptor(log),
			metrics.UnaryServerInterceptor(serviceMetrics),
		),
		grpc.ChainStreamInterceptor(
			logger.StreamServerInterceptor(log),
			metrics.StreamServerInterceptor(serviceMetrics),
		),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("wellness-service", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sample connection pool stats for Prometheus
	go serviceMetrics.CollectDBPoolStats(ctx, conn.DB, 15*time.Second)

	go func() {
		lis, err := net.Listen("tcp", ":"+cfg.Server.GRPCPort)
		if err != nil {
			log.WithError(err).Fatal("Failed to listen on gRPC port")
		}
		log.WithField("port", cfg.Server.GRPCPort).Info("gRPC server started")
		if err := grpcServer.Serve(lis); err != nil {
			log.WithError(err).Fatal("gRPC server failed")
		}
	}()

	go func() {
		log.WithField("port", cfg.Server.MetricsPort).Info("Metrics server started")
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Metrics server failed")
		}
	}()

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		log.Info("Shutting down gracefully...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		healthServer.SetServingStatus("wellness-service", healthpb.HealthCheckResponse_NOT_SERVING)
		grpcServer.GracefulStop()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("HTTP server shutdown failed")
		}
		metricsServer.Shutdown(shutdownCtx)
		log.Info("Shutdown complete")
	}()

	log.WithField("port", cfg.Server.HTTPPort).Info("Wellness Service started")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("Failed to serve")
	}
}

// statusRecorder captures the response status for metrics
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// metricsMiddleware records request counts and latencies per method
func metricsMiddleware(m *metrics.Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		m.RequestsInFlight.WithLabelValues(method).Inc()
		defer m.RequestsInFlight.WithLabelValues(method).Dec()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(recorder, r)

		m.ObserveHTTPRequest(method, strconv.Itoa(recorder.status), time.Since(start))
	})
}
