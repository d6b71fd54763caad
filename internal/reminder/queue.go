package reminder

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	defaultKey   = "reminders"
	memberPrefix = "appointment:"
)

// RedisQueue keeps one member per appointment, scored by the unix time
// the reminder is due.
type RedisQueue struct {
	rdb         *redis.Client
	key         string
	attemptsKey string
}

func NewRedisQueue(rdb *redis.Client) *RedisQueue {
	return &RedisQueue{
		rdb:         rdb,
		key:         defaultKey,
		attemptsKey: defaultKey + ":attempts",
	}
}

func member(appointmentID uint) string {
	return memberPrefix + strconv.FormatUint(uint64(appointmentID), 10)
}

func parseMember(m string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(m, memberPrefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("reminder member %q: %w", m, err)
	}
	return uint(id), nil
}

// Schedule sets the due time for an appointment's reminder.
func (q *RedisQueue) Schedule(ctx context.Context, appointmentID uint, due time.Time) error {
	return q.rdb.ZAdd(ctx, q.key, &redis.Z{
		Score:  float64(due.Unix()),
		Member: member(appointmentID),
	}).Err()
}

// Due lists up to limit appointment ids whose reminder is due at now.
func (q *RedisQueue) Due(ctx context.Context, now time.Time, limit int64) ([]uint, error) {
	members, err := q.rdb.ZRangeByScore(ctx, q.key, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: limit,
	}).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(members))
	for _, m := range members {
		id, err := parseMember(m)
		if err != nil {
			// junk member, drop it so it does not block the queue
			_ = q.rdb.ZRem(ctx, q.key, m).Err()
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Claim removes the reminder and reports whether this caller won it.
// Concurrent workers never deliver the same reminder twice.
func (q *RedisQueue) Claim(ctx context.Context, appointmentID uint) (bool, error) {
	n, err := q.rdb.ZRem(ctx, q.key, member(appointmentID)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Attempt records a failed delivery and returns the attempt count so far.
func (q *RedisQueue) Attempt(ctx context.Context, appointmentID uint) (int64, error) {
	return q.rdb.HIncrBy(ctx, q.attemptsKey, member(appointmentID), 1).Result()
}

// Forget clears the retry bookkeeping of an appointment.
func (q *RedisQueue) Forget(ctx context.Context, appointmentID uint) error {
	return q.rdb.HDel(ctx, q.attemptsKey, member(appointmentID)).Err()
}

func (q *RedisQueue) Len(ctx context.Context) (int64, error) {
	return q.rdb.ZCard(ctx, q.key).Result()
}
