package cache

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/actuallystonmai/program-finder/internal/domain"
	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Fingerprint hashes an answer set independent of map order. Every key and
// string is length-prefixed so no two distinct sets share an encoding.
func Fingerprint(answers domain.AnswerSet) string {
	d := xxhash.New()
	var buf []byte
	writeString := func(s string) {
		buf = binary.AppendUvarint(buf[:0], uint64(len(s)))
		d.Write(buf)
		d.WriteString(s)
	}

	for _, key := range answers.Keys() {
		answer := answers[key]
		writeString(key)
		d.Write([]byte{byte(answer.Kind())})
		switch answer.Kind() {
		case domain.AnswerText:
			v, _ := answer.Text()
			writeString(v)
		case domain.AnswerList:
			values, _ := answer.List()
			buf = binary.AppendUvarint(buf[:0], uint64(len(values)))
			d.Write(buf)
			for _, v := range values {
				writeString(v)
			}
		case domain.AnswerNumber:
			v, _ := answer.Number()
			buf = binary.BigEndian.AppendUint64(buf[:0], math.Float64bits(v))
			d.Write(buf)
		}
	}
	return strconv.FormatUint(d.Sum64(), 16)
}

func buildKey(version string, answers domain.AnswerSet) string {
	return fmt.Sprintf("rec:%s:%s", version, Fingerprint(answers))
}

// Get recommendations from cache
func (c *Cache) Get(ctx context.Context, version string, answers domain.AnswerSet) (*domain.Recommendations, bool, error) {
	key := buildKey(version, answers)
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get recommendations %s: %w", key, err)
	}

	var recs domain.Recommendations
	if err := json.Unmarshal(val, &recs); err != nil {
		return nil, false, fmt.Errorf("unmarshal recommendations %s: %w", key, err)
	}
	return &recs, true, nil
}

// Store recommendations in cache
func (c *Cache) Set(ctx context.Context, version string, answers domain.AnswerSet, recs domain.Recommendations) error {
	key := buildKey(version, answers)
	val, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("set recommendations %s: %w", key, err)
	}
	return nil
}

// Clear drops every entry computed against a catalog version.
func (c *Cache) Clear(ctx context.Context, version string) error {
	pattern := fmt.Sprintf("rec:%s:*", version)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
