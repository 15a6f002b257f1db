//go:build unit

package commands_test

import (
	"context"
	"time"

	"railbook/internal/domain/booking"
	"railbook/internal/domain/inventory"
	"railbook/internal/domain/train"
	"railbook/internal/infra"
	"railbook/internal/infra/db"
	"railbook/internal/infra/quotestore"

	"github.com/google/uuid"
)

// In-memory fakes for the write-side ports. The unit of work passes a
// nil DBTX through; the fakes never touch it.

type fakeUoW struct{}

func (fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTrainRepo struct {
	trains map[string]*train.Train
}

func newFakeTrainRepo(trains ...*train.Train) *fakeTrainRepo {
	m := make(map[string]*train.Train, len(trains))
	for _, t := range trains {
		m[t.Number()] = t
	}
	return &fakeTrainRepo{trains: m}
}

func (r *fakeTrainRepo) FindByNumber(_ context.Context, _ db.DBTX, number string) (*train.Train, error) {
	t, ok := r.trains[number]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "train not found", nil)
	}
	return t, nil
}

type fakeInventoryRepo struct {
	units map[string]*inventory.Unit

	lockErr      error
	updateCalls  int
	createdUnits int
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{units: map[string]*inventory.Unit{}}
}

func (r *fakeInventoryRepo) seed(key inventory.UnitKey, caps inventory.Capacities) *inventory.Unit {
	u := inventory.NewUnit(key, caps)
	r.units[key.String()] = u
	return u
}

func (r *fakeInventoryRepo) GetOrCreate(_ context.Context, _ db.DBTX, key inventory.UnitKey, caps inventory.Capacities) (*inventory.Unit, error) {
	if u, ok := r.units[key.String()]; ok {
		return u, nil
	}
	r.createdUnits++
	return r.seed(key, caps), nil
}

func (r *fakeInventoryRepo) LockForUpdate(_ context.Context, _ db.DBTX, key inventory.UnitKey) (*inventory.Unit, error) {
	if r.lockErr != nil {
		return nil, r.lockErr
	}
	u, ok := r.units[key.String()]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "inventory unit not found", nil)
	}
	return u, nil
}

func (r *fakeInventoryRepo) UpdateCounts(_ context.Context, _ db.DBTX, _ *inventory.Unit) error {
	r.updateCalls++
	return nil
}

type fakeReservationRepo struct {
	reservations map[string]*booking.Reservation
	racQueue     []inventory.QueueEntry
	waitQueue    []inventory.QueueEntry

	statusUpdates map[string]booking.Status
	failCreates   int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		reservations:  map[string]*booking.Reservation{},
		statusUpdates: map[string]booking.Status{},
	}
}

func (r *fakeReservationRepo) Create(_ context.Context, _ db.DBTX, res *booking.Reservation) error {
	if r.failCreates > 0 {
		r.failCreates--
		return infra.WrapRepoErr(infra.KindDuplicateKey, "pnr already exists", nil)
	}
	if _, ok := r.reservations[res.PNR()]; ok {
		return infra.WrapRepoErr(infra.KindDuplicateKey, "pnr already exists", nil)
	}
	r.reservations[res.PNR()] = res
	return nil
}

func (r *fakeReservationRepo) FindByPNR(_ context.Context, _ db.DBTX, pnr string, _ bool) (*booking.Reservation, error) {
	res, ok := r.reservations[pnr]
	if !ok {
		return nil, infra.WrapRepoErr(infra.KindNotFound, "reservation not found", nil)
	}
	return res, nil
}

func (r *fakeReservationRepo) QueueFor(_ context.Context, _ db.DBTX, _ inventory.UnitKey, tier inventory.Tier) ([]inventory.QueueEntry, error) {
	if tier == inventory.TierRAC {
		return r.racQueue, nil
	}
	return r.waitQueue, nil
}

func (r *fakeReservationRepo) UpdateStatus(_ context.Context, _ db.DBTX, pnr string, status booking.Status) error {
	r.statusUpdates[pnr] = status
	return nil
}

func (r *fakeReservationRepo) MarkCancelled(_ context.Context, _ db.DBTX, pnr string, _ time.Time) error {
	if _, ok := r.reservations[pnr]; !ok {
		return infra.WrapRepoErr(infra.KindConflict, "reservation already cancelled", nil)
	}
	return nil
}

type fakeQuoteStore struct {
	quotes   map[uuid.UUID]*quotestore.Record
	consumed map[uuid.UUID]bool

	saveErr error
}

func newFakeQuoteStore() *fakeQuoteStore {
	return &fakeQuoteStore{
		quotes:   map[uuid.UUID]*quotestore.Record{},
		consumed: map[uuid.UUID]bool{},
	}
}

func (s *fakeQuoteStore) Save(_ context.Context, rec *quotestore.Record) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.quotes[rec.Token] = rec
	return nil
}

func (s *fakeQuoteStore) Consume(_ context.Context, token uuid.UUID) (*quotestore.Record, error) {
	if rec, ok := s.quotes[token]; ok {
		delete(s.quotes, token)
		s.consumed[token] = true
		return rec, nil
	}
	if s.consumed[token] {
		return nil, quotestore.ErrQuoteConsumed
	}
	return nil, quotestore.ErrQuoteNotFound
}

func (s *fakeQuoteStore) Restore(_ context.Context, rec *quotestore.Record) error {
	s.quotes[rec.Token] = rec
	delete(s.consumed, rec.Token)
	return nil
}

type publishedEvent struct {
	eventType string
	pnr       string
	promoted  []string
}

type recordingPublisher struct {
	events []publishedEvent
}

func (p *recordingPublisher) BookingConfirmed(_ context.Context, res *booking.Reservation) error {
	p.events = append(p.events, publishedEvent{eventType: "confirmed", pnr: res.PNR()})
	return nil
}

func (p *recordingPublisher) BookingCancelled(_ context.Context, res *booking.Reservation, promoted []string) error {
	p.events = append(p.events, publishedEvent{eventType: "cancelled", pnr: res.PNR(), promoted: promoted})
	return nil
}
