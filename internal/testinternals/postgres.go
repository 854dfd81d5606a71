package testinternals

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/coachshot/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	log "github.com/sirupsen/logrus"
)

const (
	testDBName     = "coachshot_test"
	testDBPassword = "postgres"
)

// Postgres is a throwaway database container with the service schema applied.
type Postgres struct {
	Pool       *pgxpool.Pool
	ConnString string
	Host       string
	Port       string
	DBName     string
	User       string
	Password   string

	dockerPool *dockertest.Pool
	resource   *dockertest.Resource
}

// StartPostgres runs a postgres container and migrates it. Returns
// ErrDockerUnavailable when there is no docker daemon to talk to, so callers can
// skip instead of fail.
func StartPostgres(ctx context.Context) (*Postgres, error) {
	dockerPool, err := newDockerPool()
	if err != nil {
		return nil, err
	}

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=" + testDBPassword,
			"POSTGRES_DB=" + testDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, fmt.Errorf("dockerpool run postgres: %w", err)
	}
	// hard stop in case the test binary dies before Close
	_ = resource.Expire(containerExpireSeconds)

	p := &Postgres{
		dockerPool: dockerPool,
		resource:   resource,
		Host:       "localhost",
		Port:       resource.GetPort("5432/tcp"),
		DBName:     testDBName,
		User:       "postgres",
		Password:   testDBPassword,
	}
	p.ConnString = db.ConnString(db.NewDBPoolParams{
		DBHost:     p.Host,
		DBPort:     p.Port,
		DBName:     p.DBName,
		DBUser:     p.User,
		DBPassword: p.Password,
		SSLMode:    "disable",
	})

	if err := dockerPool.Retry(func() error {
		pool, err := pgxpool.New(ctx, p.ConnString)
		if err != nil {
			return err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return err
		}
		p.Pool = pool
		return nil
	}); err != nil {
		p.Close()
		return nil, fmt.Errorf("wait for postgres: %w", err)
	}

	if err := db.RunMigrations(p.ConnString); err != nil {
		p.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	log.Debugf("test postgres ready at %s", resource.GetHostPort("5432/tcp"))
	return p, nil
}

// Truncate empties the given tables between tests.
func (p *Postgres) Truncate(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	_, err := p.Pool.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", ")+";")
	return err
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
	if p.resource != nil {
		if err := p.dockerPool.Purge(p.resource); err != nil {
			log.Errorf("purge postgres container: %s", err)
		}
	}
}
