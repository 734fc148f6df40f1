package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catering/config"
	"catering/cron"
	"catering/database/repository"
	"catering/handlers"
	"catering/middleware"
	"catering/routes"
	"catering/services/account"
	"catering/services/auth"
	"catering/services/calendar"
	"catering/services/dashboard"
	"catering/services/offer"
	"catering/services/online"
	"catering/services/report"
	"catering/services/reservation"
	"catering/services/storage"
	"catering/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	utils.InitializeLogger(cfg)
	logger := utils.GetLogger()
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		logger.Fatal("main: JWT_SECRET must be set")
	}
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	loc := cfg.Location()

	// repositories.
	repos, err := repository.Open(cfg)
	if err != nil {
		logger.Fatal("main: failed to open database", zap.String("driver", cfg.DatabaseDriver), zap.Error(err))
	}
	probes := map[string]utils.Probe{"database": repos.Ping}

	// session token store.
	var tokens auth.TokenStore
	switch cfg.SessionDriver {
	case "memory":
		logger.Warn("Using in-process session store; sessions end on restart")
		tokens = auth.NewMemoryTokenStore()
	default:
		client, err := utils.NewAuthCacheClient(cfg)
		if err != nil {
			logger.Fatal("main: failed to connect session store", zap.Error(err))
		}
		defer client.Close()
		tokens = &auth.RedisTokenStore{Client: client}
		probes["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	}

	store, closeStore, err := storage.Open(context.Background(), cfg)
	if err != nil {
		logger.Fatal("main: failed to initialize storage service", zap.Error(err))
	}
	defer closeStore()

	// services.
	authService := &auth.DefaultAuthService{
		Users:    repos.Users,
		Tokens:   tokens,
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: cfg.TokenTTL,
	}
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.SeedAdmin(seedCtx, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminDisplayName); err != nil {
		logger.Error("main: failed to seed admin account", zap.Error(err))
	}
	cancelSeed()

	reservationService := reservation.NewReservationService(repos.Reservations, loc)
	onlineService := &online.DefaultOnlineService{
		Official: repos.Reservations,
		Staged:   repos.Staged,
		Location: loc,
	}
	calendarService := &calendar.DefaultCalendarService{Repo: repos.Reservations, Location: loc}
	dashboardService := &dashboard.DefaultDashboardService{Repo: repos.Reservations, Location: loc}
	catalogService := offer.NewCatalogService(repos.Packages, repos.MenuItems, store, cfg.SignedURLTTL)
	accountService := &account.DefaultAccountService{Auth: authService}
	reportService := &report.DefaultReportService{Reservations: reservationService}

	// background jobs.
	purgeJob, err := cron.StartPurgeJob(cfg.PurgeSchedule, loc, onlineService)
	if err != nil {
		logger.Fatal("main: invalid PURGE_SCHEDULE", zap.String("schedule", cfg.PurgeSchedule), zap.Error(err))
	}
	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, probes, 30*time.Second)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:               authService,
		AuthHandler:        handlers.NewAuthHandler(authService),
		ReservationHandler: handlers.NewReservationHandler(reservationService, reportService),
		OnlineHandler:      handlers.NewOnlineHandler(onlineService),
		CalendarHandler:    handlers.NewCalendarHandler(calendarService, loc),
		DashboardHandler:   handlers.NewDashboardHandler(dashboardService),
		CatalogHandler:     handlers.NewCatalogHandler(catalogService),
		AccountHandler:     handlers.NewAccountHandler(accountService),
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	if purgeJob != nil {
		<-purgeJob.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if err := repos.CloseWithTimeout(5 * time.Second); err != nil {
		logger.Sugar().Errorf("main: failed to close database: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
