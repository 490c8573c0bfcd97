package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Vierra-Digital/Vierra-Website-sub000/config"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/model"
	"github.com/Vierra-Digital/Vierra-Website-sub000/internal/util"
	"github.com/redis/go-redis/v9"
)

// CacheRepository : redis cache of signing sessions keyed by token
type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetSession(ctx context.Context, session *model.SigningSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return util.LogError("[CacheRepo] session encoding failed", err)
	}

	cmd := r.client.Client.Set(ctx, key(session.Token), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("[CacheRepo] redis set failed", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("unexpected redis reply: %s", cmd.Val())
	}

	return nil
}

// GetSession returns nil, nil on a cache miss
func (r *CacheRepository) GetSession(ctx context.Context, token string) (*model.SigningSession, error) {
	val, err := r.client.Client.Get(ctx, key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, util.LogError("[CacheRepo] redis get failed", err)
	}

	var session model.SigningSession
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, util.LogError("[CacheRepo] session decoding failed", err)
	}
	return &session, nil
}

func (r *CacheRepository) DeleteSession(ctx context.Context, token string) error {
	if err := r.client.Client.Del(ctx, key(token)).Err(); err != nil {
		return util.LogError("[CacheRepo] redis delete failed", err)
	}
	return nil
}

func key(token string) string {
	return fmt.Sprintf("signing_session:%s", token)
}
