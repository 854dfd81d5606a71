package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedTokenKeyPrefix = "auth:revoked:"

// RevocationList keeps ids of revoked tokens in redis until they would have expired anyway.
type RevocationList struct {
	redisClient *redis.Client
}

func NewRevocationList(redisClient *redis.Client) *RevocationList {
	return &RevocationList{
		redisClient: redisClient,
	}
}

func (l *RevocationList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return l.redisClient.Set(ctx, revokedTokenKeyPrefix+tokenID, time.Now().Unix(), ttl).Err()
}

func (l *RevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.redisClient.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
