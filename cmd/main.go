package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/skilltrack/internal/handlers"

	appjwt "github.com/sbilibin2017/skilltrack/internal/jwt"
	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/middlewares"
	"github.com/sbilibin2017/skilltrack/internal/migrations"
	"github.com/sbilibin2017/skilltrack/internal/repositories"
	"github.com/sbilibin2017/skilltrack/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title skilltrack API
// @version 1.0.0
// @description Service for tracking employee skills, peer endorsements and project staffing
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		cacheTTLSecond,
		kafkaBroker, kafkaTopic,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		cacheTTLSecond,
		kafkaBroker, kafkaTopic,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	cacheTTLSecond int,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "skilltrack")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if cacheTTLSecond, err = strconv.Atoi(getEnv("ANALYTICS_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config
	kafkaBroker = getEnv("KAFKA_BROKER", "localhost:9092")
	kafkaTopic = getEnv("KAFKA_TOPIC_EVENTS", "skilltrack.events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cacheTTLSecond int,
	kafkaBroker, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply schema migrations
	if err := migrations.Up(dsn); err != nil {
		logger.Log.Fatal("migrations failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for notification/email fan-out events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBroker),
		Topic:    kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	jwt := appjwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext

	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	skillReadRepo := repositories.NewSkillReadRepository(db, txGetter)
	skillWriteRepo := repositories.NewSkillWriteRepository(db, txGetter)
	historyReadRepo := repositories.NewSkillHistoryReadRepository(db)
	historyWriteRepo := repositories.NewSkillHistoryWriteRepository(db, txGetter)
	pendingReadRepo := repositories.NewPendingUpdateReadRepository(db)
	pendingWriteRepo := repositories.NewPendingUpdateWriteRepository(db, txGetter)
	endorsementReadRepo := repositories.NewEndorsementReadRepository(db)
	endorsementWriteRepo := repositories.NewEndorsementWriteRepository(db, txGetter)
	notificationReadRepo := repositories.NewNotificationReadRepository(db)
	notificationWriteRepo := repositories.NewNotificationWriteRepository(db, txGetter)
	clientReadRepo := repositories.NewClientReadRepository(db)
	clientWriteRepo := repositories.NewClientWriteRepository(db, txGetter)
	projectReadRepo := repositories.NewProjectReadRepository(db)
	projectWriteRepo := repositories.NewProjectWriteRepository(db, txGetter)
	resourceReadRepo := repositories.NewResourceReadRepository(db, txGetter)
	resourceWriteRepo := repositories.NewResourceWriteRepository(db, txGetter)
	resourceHistoryReadRepo := repositories.NewResourceHistoryReadRepository(db)
	resourceHistoryWriteRepo := repositories.NewResourceHistoryWriteRepository(db, txGetter)
	projectSkillReadRepo := repositories.NewProjectSkillReadRepository(db)
	projectSkillWriteRepo := repositories.NewProjectSkillWriteRepository(db, txGetter)
	templateReadRepo := repositories.NewTemplateReadRepository(db)
	templateWriteRepo := repositories.NewTemplateWriteRepository(db, txGetter)
	targetReadRepo := repositories.NewTargetReadRepository(db)
	targetWriteRepo := repositories.NewTargetWriteRepository(db, txGetter)
	analyticsReadRepo := repositories.NewAnalyticsReadRepository(db)
	reportCacheRepo := repositories.NewReportCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)

	// Initialize services
	eventService := services.NewEventService(kafkaWriter)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwt)
	approvalService := services.NewApprovalService(
		pendingReadRepo, pendingWriteRepo,
		skillReadRepo, skillWriteRepo,
		historyWriteRepo, notificationWriteRepo,
		eventService, middlewares.OnCommit,
	)
	skillService := services.NewSkillService(skillReadRepo, skillWriteRepo, historyReadRepo, historyWriteRepo)
	endorsementService := services.NewEndorsementService(
		skillReadRepo, endorsementReadRepo, endorsementWriteRepo,
		skillWriteRepo, notificationWriteRepo,
		eventService, middlewares.OnCommit,
	)
	notificationService := services.NewNotificationService(notificationReadRepo, notificationWriteRepo)
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	taxonomyService := services.NewTaxonomyService(templateReadRepo, templateWriteRepo, targetReadRepo, targetWriteRepo)
	projectService := services.NewProjectService(
		clientReadRepo, clientWriteRepo,
		projectReadRepo, projectWriteRepo,
		resourceReadRepo, resourceWriteRepo,
		resourceHistoryReadRepo, resourceHistoryWriteRepo,
		projectSkillReadRepo, projectSkillWriteRepo,
	)
	analyticsService := services.NewAnalyticsService(analyticsReadRepo, reportCacheRepo)

	// Setup router
	authMW := middlewares.AuthMiddleware(jwt)
	adminMW := middlewares.AdminMiddleware()
	txMW := middlewares.TxMiddleware(db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware())

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMW)

			r.Get("/users/me", handlers.NewGetProfileHandler(userService))
			r.Patch("/users/me", handlers.NewUpdateProfileHandler(userService))

			r.Get("/skills", handlers.NewListSkillsHandler(skillService))
			r.Post("/skills/pending", handlers.NewSubmitSkillHandler(approvalService))
			r.Get("/skills/pending", handlers.NewListOwnPendingHandler(approvalService))
			r.Patch("/skills/{skillID}", handlers.NewUpdateSkillHandler(skillService))
			r.Delete("/skills/{skillID}", handlers.NewDeleteSkillHandler(skillService))
			r.Get("/skills/{skillID}/history", handlers.NewSkillHistoryHandler(skillService))
			r.With(txMW).Post("/skills/{skillID}/endorse", handlers.NewEndorseSkillHandler(endorsementService))
			r.Get("/skills/{skillID}/endorsements", handlers.NewListEndorsementsHandler(endorsementService))

			r.Get("/notifications", handlers.NewListNotificationsHandler(notificationService))
			r.Post("/notifications/{notificationID}/read", handlers.NewMarkNotificationReadHandler(notificationService))
			r.Post("/notifications/read-all", handlers.NewMarkAllNotificationsReadHandler(notificationService))

			r.Get("/templates", handlers.NewListTemplatesHandler(taxonomyService))

			r.Get("/clients", handlers.NewListClientsHandler(projectService))
			r.Get("/projects", handlers.NewListProjectsHandler(projectService))
			r.Get("/projects/{projectID}", handlers.NewGetProjectHandler(projectService))
			r.Get("/projects/{projectID}/resources", handlers.NewListResourcesHandler(projectService))
			r.Get("/projects/{projectID}/skills", handlers.NewListProjectSkillsHandler(projectService))
			r.Get("/projects/{projectID}/history", handlers.NewResourceHistoryHandler(projectService))

			// Admin routes
			r.Route("/admin", func(r chi.Router) {
				r.Use(adminMW)

				r.Get("/pending-skills", handlers.NewListReviewQueueHandler(approvalService))
				r.With(txMW).Post("/pending-skills/{pendingID}/approve", handlers.NewApproveSkillHandler(approvalService))
				r.With(txMW).Post("/pending-skills/{pendingID}/reject", handlers.NewRejectSkillHandler(approvalService))

				r.Get("/skill-templates", handlers.NewListTemplatesHandler(taxonomyService))
				r.Post("/skill-templates", handlers.NewCreateTemplateHandler(taxonomyService))
				r.Patch("/skill-templates/{templateID}", handlers.NewUpdateTemplateHandler(taxonomyService))
				r.Delete("/skill-templates/{templateID}", handlers.NewDeleteTemplateHandler(taxonomyService))

				r.Get("/skill-targets", handlers.NewListTargetsHandler(taxonomyService))
				r.Post("/skill-targets", handlers.NewCreateTargetHandler(taxonomyService))
				r.Patch("/skill-targets/{targetID}", handlers.NewUpdateTargetHandler(taxonomyService))
				r.Delete("/skill-targets/{targetID}", handlers.NewDeleteTargetHandler(taxonomyService))

				r.Get("/users", handlers.NewListUsersHandler(userService))
				r.With(txMW).Delete("/users/{userID}", handlers.NewDeleteUserHandler(userService))

				r.Get("/analytics/skill-gaps", handlers.NewSkillGapsHandler(analyticsService))
				r.Get("/analytics/certifications", handlers.NewCertificationsHandler(analyticsService))

				r.Post("/clients", handlers.NewCreateClientHandler(projectService))
				r.Patch("/clients/{clientID}", handlers.NewUpdateClientHandler(projectService))
				r.With(txMW).Delete("/clients/{clientID}", handlers.NewDeleteClientHandler(projectService))

				r.With(txMW).Post("/projects", handlers.NewCreateProjectHandler(projectService))
				r.Patch("/projects/{projectID}", handlers.NewUpdateProjectHandler(projectService))
				r.With(txMW).Delete("/projects/{projectID}", handlers.NewDeleteProjectHandler(projectService))
				r.With(txMW).Put("/projects/{projectID}/skills", handlers.NewSetProjectSkillsHandler(projectService))
				r.With(txMW).Post("/projects/{projectID}/resources", handlers.NewAddResourceHandler(projectService))
				r.With(txMW).Patch("/projects/{projectID}/resources/{resourceID}", handlers.NewUpdateResourceHandler(projectService))
				r.With(txMW).Delete("/projects/{projectID}/resources/{resourceID}", handlers.NewRemoveResourceHandler(projectService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
