package loadout

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/Two-Ocean/armory/internal/errors"
	"github.com/Two-Ocean/armory/internal/pkg/clock"
	redisclient "github.com/Two-Ocean/armory/internal/redis"
)

const (
	loadoutKeyPrefix = "loadout:owner:"

	errOwnerIDEmpty = "owner ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis loadout repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed loadout repository. Clock defaults
// to the real clock when unset.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  clk,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	key := loadoutKeyPrefix + input.OwnerID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("loadout for owner %s not found", input.OwnerID)
		}
		return nil, errors.Wrapf(err, "failed to get loadout for owner %s", input.OwnerID)
	}

	var data Data
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal loadout data")
	}

	return &GetOutput{Loadout: &data}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	data := Data{
		OwnerID:   input.OwnerID,
		Items:     input.Items,
		UpdatedAt: r.clock.Now().UTC(),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal loadout data")
	}

	key := loadoutKeyPrefix + input.OwnerID
	if err := r.client.Set(ctx, key, jsonData, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save loadout for owner %s", input.OwnerID)
	}

	return &SaveOutput{Loadout: &data}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	key := loadoutKeyPrefix + input.OwnerID

	// Check if exists first to return proper error
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check loadout existence")
	}

	if exists == 0 {
		return nil, errors.NotFoundf("loadout for owner %s not found", input.OwnerID)
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete loadout for owner %s", input.OwnerID)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for an owner's loadout
// Exposed for testing purposes
func GetKey(ownerID string) string {
	return fmt.Sprintf("%s%s", loadoutKeyPrefix, ownerID)
}
