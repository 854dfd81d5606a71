package testinternals

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ory/dockertest/v3"
)

const containerExpireSeconds = 300

var ErrDockerUnavailable = errors.New("docker unavailable")

func newDockerPool() (*dockertest.Pool, error) {
	if os.Getenv("COACHSHOT_SKIP_DOCKER_TESTS") != "" {
		return nil, ErrDockerUnavailable
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDockerUnavailable, err)
	}
	if err := dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDockerUnavailable, err)
	}
	dockerPool.MaxWait = 90 * time.Second

	return dockerPool, nil
}
