package quotestore

import (
	"context"
	"encoding/json"
	"time"

	"railbook/internal/pkg/clock"
	"railbook/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	ErrQuoteNotFound = errs.New("quote token does not exist or has expired")
	ErrQuoteConsumed = errs.New("quote token was already consumed")
)

// Record is the payload held behind a quote token for its TTL.
type Record struct {
	Token        uuid.UUID `json:"token"`
	TrainNumber  string    `json:"train_number"`
	ServiceDate  time.Time `json:"service_date"`
	Class        string    `json:"class"`
	Quota        string    `json:"quota"`
	FromStation  string    `json:"from_station"`
	ToStation    string    `json:"to_station"`
	Passengers   int32     `json:"passengers"`
	FarePaise    int64     `json:"fare_paise"`
	FareVersion  string    `json:"fare_version"`
	Availability string    `json:"availability"`
	UserID       uuid.UUID `json:"user_id"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type Store interface {
	Save(ctx context.Context, rec *Record) error
	Consume(ctx context.Context, token uuid.UUID) (*Record, error)
	Restore(ctx context.Context, rec *Record) error
}

// consumeScript deletes the quote and plants a consumed marker in one
// atomic step, so exactly one booking can ever redeem a token. The
// marker outlives the quote TTL to tell "expired" apart from "already
// used".
//
// Returns {2, payload} on success, {1, ''} when already consumed and
// {0, ''} when the token is unknown or expired.
var consumeScript = redis.NewScript(`
local payload = redis.call('GET', KEYS[1])
if payload then
	redis.call('DEL', KEYS[1])
	redis.call('SET', KEYS[2], '1', 'EX', ARGV[1])
	return {2, payload}
end
if redis.call('EXISTS', KEYS[2]) == 1 then
	return {1, ''}
end
return {0, ''}
`)

type RedisStore struct {
	client    *redis.Client
	ttl       time.Duration
	markerTTL time.Duration
	clock     clock.Clock
}

func NewRedisStore(client *redis.Client, ttl, markerTTL time.Duration, clk clock.Clock) *RedisStore {
	return &RedisStore{
		client:    client,
		ttl:       ttl,
		markerTTL: markerTTL,
		clock:     clk,
	}
}

func quoteKey(token uuid.UUID) string    { return "quote:" + token.String() }
func consumedKey(token uuid.UUID) string { return "quote:consumed:" + token.String() }

func (s *RedisStore) Save(ctx context.Context, rec *Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "failed to marshal quote record")
	}

	if err := s.client.Set(ctx, quoteKey(rec.Token), payload, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to save quote")
	}
	return nil
}

func (s *RedisStore) Consume(ctx context.Context, token uuid.UUID) (*Record, error) {
	markerSec := int64(s.markerTTL / time.Second)
	result, err := consumeScript.Run(ctx, s.client,
		[]string{quoteKey(token), consumedKey(token)}, markerSec,
	).Slice()
	if err != nil {
		return nil, errs.Wrap(err, "failed to consume quote")
	}
	if len(result) != 2 {
		return nil, errs.Newf("unexpected consume script reply of length %d", len(result))
	}

	code, ok := result[0].(int64)
	if !ok {
		return nil, errs.New("unexpected consume script status type")
	}
	switch code {
	case 0:
		return nil, ErrQuoteNotFound
	case 1:
		return nil, ErrQuoteConsumed
	}

	payload, ok := result[1].(string)
	if !ok {
		return nil, errs.New("unexpected consume script payload type")
	}

	var rec Record
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, errs.Wrap(err, "failed to unmarshal quote record")
	}
	return &rec, nil
}

// Restore puts a consumed quote back with its remaining TTL after a
// failed booking, so the client can retry with the same token. Best
// effort: an already-expired quote stays gone.
func (s *RedisStore) Restore(ctx context.Context, rec *Record) error {
	remaining := rec.ExpiresAt.Sub(s.clock.Now())
	if remaining <= 0 {
		return nil
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return errs.Wrap(err, "failed to marshal quote record")
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, quoteKey(rec.Token), payload, remaining)
	pipe.Del(ctx, consumedKey(rec.Token))
	if _, err := pipe.Exec(ctx); err != nil {
		return errs.Wrap(err, "failed to restore quote")
	}
	return nil
}
