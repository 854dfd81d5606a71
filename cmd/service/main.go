package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/2beens/coachshot/internal"
	"github.com/2beens/coachshot/internal/config"
	"github.com/2beens/coachshot/internal/logging"
	"github.com/2beens/coachshot/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "coachshot-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	modelAPIKey := os.Getenv("GEMINI_API_KEY")
	if modelAPIKey == "" {
		log.Errorf("model API key not set, use GEMINI_API_KEY env var to set it")
	}

	jwtSecret := os.Getenv("COACHSHOT_JWT_SECRET")
	if jwtSecret == "" {
		log.Fatalf("jwt secret not set. use COACHSHOT_JWT_SECRET")
	}

	redisPassword := os.Getenv("COACHSHOT_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use COACHSHOT_REDIS_PASS")
	}

	dbPassword := os.Getenv("COACHSHOT_DB_PASS")
	if dbPassword == "" {
		log.Warnln("db password not set. use COACHSHOT_DB_PASS")
	}

	s3AccessKeyID := os.Getenv("AWS_ACCESS_KEY_ID")
	s3SecretAccessKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if cfg.ScreenshotStore == "s3" && (s3AccessKeyID == "" || s3SecretAccessKey == "") {
		log.Warnln("AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY not set, falling back to the default aws credentials chain")
	}

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			RedisPassword:           redisPassword,
			PostgresPassword:        dbPassword,
			HoneycombTracingEnabled: honeycombEnabled,
			ModelAPIKey:             modelAPIKey,
			JWTSecret:               jwtSecret,
			S3AccessKeyID:           s3AccessKeyID,
			S3SecretAccessKey:       s3SecretAccessKey,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(pkg.BytesToString(stdout)), nil
}
