package testinternals

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	log "github.com/sirupsen/logrus"
)

type Redis struct {
	Client *redis.Client
	Host   string
	Port   string

	dockerPool *dockertest.Pool
	resource   *dockertest.Resource
}

// StartRedis runs a redis container and waits until it answers a ping.
func StartRedis(ctx context.Context) (*Redis, error) {
	dockerPool, err := newDockerPool()
	if err != nil {
		return nil, err
	}

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return nil, fmt.Errorf("run redis: %w", err)
	}
	_ = resource.Expire(containerExpireSeconds)

	r := &Redis{
		Host:       "localhost",
		Port:       resource.GetPort("6379/tcp"),
		dockerPool: dockerPool,
		resource:   resource,
	}
	r.Client = redis.NewClient(&redis.Options{
		Addr: resource.GetHostPort("6379/tcp"),
	})

	if err := dockerPool.Retry(func() error {
		return r.Client.Ping(ctx).Err()
	}); err != nil {
		r.Close()
		return nil, fmt.Errorf("wait for redis: %w", err)
	}

	log.Debugf("test redis ready at %s", resource.GetHostPort("6379/tcp"))
	return r, nil
}

func (r *Redis) Close() {
	if r.Client != nil {
		if err := r.Client.Close(); err != nil {
			log.Errorf("close test redis client: %s", err)
		}
	}
	if r.resource != nil {
		if err := r.dockerPool.Purge(r.resource); err != nil {
			log.Errorf("purge redis container: %s", err)
		}
	}
}
