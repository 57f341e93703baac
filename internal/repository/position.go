package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
	"github.com/samber/lo"
)

var ErrPositionNotFound = errors.New("position not found")

// positionsKey is the Redis hash holding exact minimax values, one field per
// Board.Key.
const positionsKey = "positions:minimax"

type PositionRepository interface {
	SaveAll(ctx context.Context, values map[uint32]tictactoe.Score) error
	GetAll(ctx context.Context) (map[uint32]tictactoe.Score, error)
	GetByKey(ctx context.Context, key uint32) (tictactoe.Score, error)
	Count(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
}

type dbPosition struct {
	client *redis.Client
}

func NewPositionRepository(client *redis.Client) PositionRepository {
	return &dbPosition{
		client: client,
	}
}

func (that *dbPosition) SaveAll(ctx context.Context, values map[uint32]tictactoe.Score) error {
	if len(values) == 0 {
		return nil
	}

	fields := lo.MapEntries(values, func(key uint32, score tictactoe.Score) (string, interface{}) {
		return strconv.FormatUint(uint64(key), 10), int(score)
	})

	if err := that.client.HSet(ctx, positionsKey, fields).Err(); err != nil {
		return fmt.Errorf("failed to save positions: %w", err)
	}

	return nil
}

func (that *dbPosition) GetAll(ctx context.Context) (map[uint32]tictactoe.Score, error) {
	response, err := that.client.HGetAll(ctx, positionsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get positions: %w", err)
	}

	values := make(map[uint32]tictactoe.Score, len(response))
	for field, raw := range response {
		key, err := strconv.ParseUint(field, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("failed to parse position key %q: %w", field, err)
		}

		score, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse score of position %d: %w", key, err)
		}

		values[uint32(key)] = tictactoe.Score(score)
	}

	return values, nil
}

func (that *dbPosition) GetByKey(ctx context.Context, key uint32) (tictactoe.Score, error) {
	field := strconv.FormatUint(uint64(key), 10)

	score, err := that.client.HGet(ctx, positionsKey, field).Int()
	if errors.Is(err, redis.Nil) {
		return 0, ErrPositionNotFound
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get position by key: %w", err)
	}

	return tictactoe.Score(score), nil
}

func (that *dbPosition) Count(ctx context.Context) (int64, error) {
	count, err := that.client.HLen(ctx, positionsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count positions: %w", err)
	}

	return count, nil
}

func (that *dbPosition) Clear(ctx context.Context) error {
	if err := that.client.Del(ctx, positionsKey).Err(); err != nil {
		return fmt.Errorf("failed to clear positions: %w", err)
	}

	return nil
}
