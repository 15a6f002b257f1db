//go:build unit

package quotestore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"railbook/internal/pkg/clock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(token uuid.UUID, expiresAt time.Time) *Record {
	return &Record{
		Token:        token,
		TrainNumber:  "12556",
		ServiceDate:  time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Class:        "SL",
		Quota:        "GN",
		FromStation:  "NDLS",
		ToStation:    "GKP",
		Passengers:   2,
		FarePaise:    84000,
		FareVersion:  "2024.2",
		Availability: "AVAILABLE",
		UserID:       uuid.New(),
		ExpiresAt:    expiresAt,
	}
}

func newTestStore(t *testing.T) (*RedisStore, redismock.ClientMock, *clock.MockClock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	store := NewRedisStore(client, 5*time.Minute, 24*time.Hour, clk)
	return store, mock, clk
}

func TestRedisStore_Save(t *testing.T) {
	store, mock, clk := newTestStore(t)

	token := uuid.New()
	rec := testRecord(token, clk.Now().Add(5*time.Minute))
	payload, err := json.Marshal(rec)
	require.NoError(t, err)

	mock.ExpectSet("quote:"+token.String(), payload, 5*time.Minute).SetVal("OK")

	err = store.Save(context.Background(), rec)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Consume(t *testing.T) {
	keysFor := func(token uuid.UUID) []string {
		return []string{"quote:" + token.String(), "quote:consumed:" + token.String()}
	}
	markerSec := int64((24 * time.Hour) / time.Second)

	t.Run("returns the record exactly once", func(t *testing.T) {
		store, mock, clk := newTestStore(t)

		token := uuid.New()
		rec := testRecord(token, clk.Now().Add(5*time.Minute))
		payload, err := json.Marshal(rec)
		require.NoError(t, err)

		mock.ExpectEvalSha(consumeScript.Hash(), keysFor(token), markerSec).
			SetVal([]any{int64(2), string(payload)})

		got, err := store.Consume(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, rec.Token, got.Token)
		assert.Equal(t, rec.TrainNumber, got.TrainNumber)
		assert.Equal(t, rec.FarePaise, got.FarePaise)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already consumed", func(t *testing.T) {
		store, mock, _ := newTestStore(t)

		token := uuid.New()
		mock.ExpectEvalSha(consumeScript.Hash(), keysFor(token), markerSec).
			SetVal([]any{int64(1), ""})

		_, err := store.Consume(context.Background(), token)
		assert.ErrorIs(t, err, ErrQuoteConsumed)
	})

	t.Run("unknown or expired", func(t *testing.T) {
		store, mock, _ := newTestStore(t)

		token := uuid.New()
		mock.ExpectEvalSha(consumeScript.Hash(), keysFor(token), markerSec).
			SetVal([]any{int64(0), ""})

		_, err := store.Consume(context.Background(), token)
		assert.ErrorIs(t, err, ErrQuoteNotFound)
	})

	t.Run("garbage payload", func(t *testing.T) {
		store, mock, _ := newTestStore(t)

		token := uuid.New()
		mock.ExpectEvalSha(consumeScript.Hash(), keysFor(token), markerSec).
			SetVal([]any{int64(2), "{not json"})

		_, err := store.Consume(context.Background(), token)
		assert.Error(t, err)
	})
}

func TestRedisStore_Restore(t *testing.T) {
	t.Run("puts the quote back with its remaining ttl", func(t *testing.T) {
		store, mock, clk := newTestStore(t)

		token := uuid.New()
		rec := testRecord(token, clk.Now().Add(3*time.Minute))
		payload, err := json.Marshal(rec)
		require.NoError(t, err)

		mock.ExpectTxPipeline()
		mock.ExpectSet("quote:"+token.String(), payload, 3*time.Minute).SetVal("OK")
		mock.ExpectDel("quote:consumed:" + token.String()).SetVal(1)
		mock.ExpectTxPipelineExec()

		err = store.Restore(context.Background(), rec)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("expired quotes stay gone", func(t *testing.T) {
		store, mock, clk := newTestStore(t)

		rec := testRecord(uuid.New(), clk.Now().Add(-time.Second))

		err := store.Restore(context.Background(), rec)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
