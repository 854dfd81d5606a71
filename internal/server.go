package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/coachshot/internal/auth"
	"github.com/2beens/coachshot/internal/config"
	"github.com/2beens/coachshot/internal/db"
	"github.com/2beens/coachshot/internal/extraction"
	"github.com/2beens/coachshot/internal/gymcost"
	"github.com/2beens/coachshot/internal/mcp"
	"github.com/2beens/coachshot/internal/middleware"
	"github.com/2beens/coachshot/internal/musclemeta"
	"github.com/2beens/coachshot/internal/quota"
	"github.com/2beens/coachshot/internal/screenshots"
	"github.com/2beens/coachshot/internal/telemetry/metrics"
	"github.com/2beens/coachshot/internal/telemetry/tracing"
	"github.com/2beens/coachshot/internal/uploads"
	"github.com/2beens/coachshot/internal/vision"
	"github.com/2beens/coachshot/internal/workouts"
	"github.com/2beens/coachshot/pkg"
)

const serviceName = "coachshot"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	verifier    *auth.Verifier

	workoutsRepo *workouts.Repo
	analyzer     *workouts.Analyzer
	screenshots  screenshots.Store
	uploads      *uploads.Service
	gymCost      *gymcost.Service
	muscleMeta   *musclemeta.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
	ModelAPIKey             string
	JWTSecret               string
	S3AccessKeyID           string
	S3SecretAccessKey       string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbParams := db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.PostgresPassword,
		SSLMode:        cfg.PostgresSSLMode,
		MaxConns:       cfg.PostgresMaxConns,
		TracingEnabled: params.HoneycombTracingEnabled,
	}
	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if cfg.RunDBMigrations {
		if err := db.RunMigrations(db.ConnString(dbParams)); err != nil {
			return nil, fmt.Errorf("run db migrations: %w", err)
		}
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager(serviceName, "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, serviceName, rdb)
	if err != nil {
		return nil, err
	}

	visionClient, err := vision.NewClient(ctx, vision.NewClientParams{
		APIKey:   params.ModelAPIKey,
		Model:    cfg.ModelName,
		Endpoint: cfg.ModelEndpoint,
		Metrics:  metricsManager,
	})
	if err != nil {
		return nil, fmt.Errorf("new vision client: %w", err)
	}
	if !visionClient.Configured() {
		log.Warnln("model api key not set, screenshot extraction is disabled")
	}

	store, err := newScreenshotStore(ctx, cfg, params)
	if err != nil {
		return nil, fmt.Errorf("new screenshot store: %w", err)
	}

	quotaGate := quota.NewGate(quota.NewRepo(dbPool), cfg.DailyExtractionLimit, metricsManager)
	extractor := extraction.NewExtractor(extraction.NewExtractorParams{
		Model:          visionClient,
		Quota:          quotaGate,
		Metrics:        metricsManager,
		RetryAttempts:  cfg.RetryAttempts,
		RetryBaseDelay: cfg.RetryBaseDelay.Duration,
	})

	workoutsRepo := workouts.NewRepo(dbPool)

	s := &Server{
		config:      cfg,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,
		redisClient: rdb,
		verifier:    auth.NewVerifier(params.JWTSecret, cfg.AuthIssuer, auth.NewRevocationList(rdb)),

		workoutsRepo: workoutsRepo,
		analyzer:     workouts.NewAnalyzer(workoutsRepo),
		screenshots:  store,
		uploads: uploads.NewService(uploads.NewServiceParams{
			Extractor:      extractor,
			Screenshots:    store,
			Workouts:       workoutsRepo,
			Quota:          quotaGate,
			InterFileDelay: cfg.InterFileDelay.Duration,
		}),
		gymCost: gymcost.NewService(gymcost.NewRepo(dbPool), workoutsRepo),
		muscleMeta: musclemeta.NewService(
			musclemeta.NewRepo(dbPool),
			visionClient,
			cfg.MetadataCacheSizeMB,
			metricsManager,
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func newScreenshotStore(ctx context.Context, cfg *config.Config, params NewServerParams) (screenshots.Store, error) {
	switch cfg.ScreenshotStore {
	case "s3":
		log.Debugf("storing screenshots in s3 bucket [%s]", cfg.S3Bucket)
		return screenshots.NewS3Store(ctx, screenshots.NewS3StoreParams{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     params.S3AccessKeyID,
			SecretAccessKey: params.S3SecretAccessKey,
			PresignExpires:  cfg.S3PresignExpires.Duration,
		})
	case "inline", "":
		return screenshots.NewInlineStore(), nil
	default:
		return nil, fmt.Errorf("unknown screenshot store: %s", cfg.ScreenshotStore)
	}
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", s.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	r.HandleFunc("/health", s.handleHealth).Methods("GET", "OPTIONS").Name("health")
	r.HandleFunc("/version", s.handleVersion).Methods("GET", "OPTIONS").Name("version")

	workoutsHandler := workouts.NewHandler(s.workoutsRepo, s.gymCost)
	uploadsHandler := uploads.NewHandler(s.uploads, s.config.MergeUploadsDefault)
	screenshotsHandler := screenshots.NewHandler(s.workoutsRepo, s.screenshots)

	uploadRateLimit := middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		s.metricsManager,
		"upload",
		s.config.UploadsPerMinute,
	)

	// fixed paths first, {id} would swallow them otherwise
	r.Handle("/workouts/upload", uploadRateLimit(http.HandlerFunc(uploadsHandler.HandleUpload))).Methods("POST", "OPTIONS").Name("upload-workouts")
	r.HandleFunc("/workouts/export", workoutsHandler.HandleExport).Methods("GET", "OPTIONS").Name("export-workouts")
	r.HandleFunc("/workouts/import", workoutsHandler.HandleImport).Methods("POST", "OPTIONS").Name("import-workouts")
	r.HandleFunc("/workouts/cleanup-duplicates", workoutsHandler.HandleCleanupDuplicates).Methods("POST", "OPTIONS").Name("cleanup-duplicates")
	r.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/workouts/{id}/screenshots", screenshotsHandler.HandleURLs).Methods("GET", "OPTIONS").Name("workout-screenshots")

	r.HandleFunc("/stats/overview", workoutsHandler.HandleOverview).Methods("GET", "OPTIONS").Name("stats-overview")
	r.HandleFunc("/exercises/{name}/history", workoutsHandler.HandleExerciseHistory).Methods("GET", "OPTIONS").Name("exercise-history")

	muscleMetaHandler := musclemeta.NewHandler(s.muscleMeta)
	r.HandleFunc("/exercises/{name}/muscles", muscleMetaHandler.HandleGetMuscles).Methods("GET", "OPTIONS").Name("exercise-muscles")

	gymCostHandler := gymcost.NewHandler(s.gymCost)
	r.HandleFunc("/gym-cost/settings", gymCostHandler.HandleGetSettings).Methods("GET", "OPTIONS").Name("get-gym-cost-settings")
	r.HandleFunc("/gym-cost/settings", gymCostHandler.HandleUpdateSettings).Methods("PUT", "OPTIONS").Name("update-gym-cost-settings")
	r.HandleFunc("/gym-cost/stats", gymCostHandler.HandleStats).Methods("GET", "OPTIONS").Name("gym-cost-stats")

	if s.config.MCPEnabled {
		mcpServer := mcp.New(mcp.Deps{
			Workouts: s.workoutsRepo,
			Analyzer: s.analyzer,
			GymCost:  s.gymCost,
		}, s.versionInfo)
		r.Handle("/mcp", mcp.NewHTTPHandler(mcpServer)).Methods("GET", "POST", "DELETE", "OPTIONS").Name("mcp")
	}

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.verifier)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest(middleware.MaxBodyDrain))

	return r, nil
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, s.versionInfo)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if s.dbPool != nil {
		if err := s.dbPool.Ping(ctx); err != nil {
			log.Errorf("health: db ping: %s", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Ping(ctx).Err(); err != nil {
			log.Errorf("health: redis ping: %s", err)
			http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	pkg.WriteTextResponseOK(w, "ok")
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler: router,
		Addr:    ipAndPort,
		// uploads of several screenshots wait on the model between files
		WriteTimeout: 10 * time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the backing stores go away
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
