package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	dbm "wanderly/internal/models/db_models"
)

var errFakeDB = errors.New("fake db down")

type fakeItineraryRepo struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]dbm.Itinerary
	clock   int64
	failAll bool
	saves   int
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{rows: make(map[uuid.UUID]dbm.Itinerary), clock: 1700000000}
}

func (f *fakeItineraryRepo) tick() int64 {
	f.clock++
	return f.clock
}

func (f *fakeItineraryRepo) ListByAccount(_ context.Context, accountID uuid.UUID, page, pageSize int) ([]dbm.Itinerary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errFakeDB
	}
	var out []dbm.Itinerary
	for _, r := range f.rows {
		if r.AccountID == accountID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt > out[j].UpdatedAt })
	start := (page - 1) * pageSize
	if start >= len(out) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], nil
}

func (f *fakeItineraryRepo) Create(_ context.Context, it *dbm.Itinerary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errFakeDB
	}
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	now := f.tick()
	it.CreatedAt, it.UpdatedAt = now, now
	f.rows[it.ID] = *it
	return nil
}

func (f *fakeItineraryRepo) FindForAccount(_ context.Context, id, accountID uuid.UUID) (*dbm.Itinerary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errFakeDB
	}
	r, ok := f.rows[id]
	if !ok || r.AccountID != accountID {
		return nil, nil
	}
	r.Days = r.Days.Clone()
	return &r, nil
}

func (f *fakeItineraryRepo) UpdateForAccount(_ context.Context, it *dbm.Itinerary) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[it.ID]
	if !ok || r.AccountID != it.AccountID {
		return false, nil
	}
	it.UpdatedAt = f.tick()
	f.rows[it.ID] = *it
	return true, nil
}

func (f *fakeItineraryRepo) UpdateDays(_ context.Context, it *dbm.Itinerary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errFakeDB
	}
	r := f.rows[it.ID]
	r.Days = it.Days.Clone()
	r.UpdatedAt = f.tick()
	f.rows[it.ID] = r
	f.saves++
	return nil
}

func (f *fakeItineraryRepo) DeleteForAccount(_ context.Context, id, accountID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rows[id]
	if !ok || r.AccountID != accountID {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages []dbm.AssistantMessage
	fail     bool
}

func (f *fakeMessageRepo) Append(_ context.Context, messages []*dbm.AssistantMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errFakeDB
	}
	for _, m := range messages {
		m.ID = uuid.New()
		m.CreatedAt = time.Now().Unix()
		f.messages = append(f.messages, *m)
	}
	return nil
}

func (f *fakeMessageRepo) ListByItinerary(_ context.Context, itineraryID uuid.UUID, limit int) ([]dbm.AssistantMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []dbm.AssistantMessage
	for _, m := range f.messages {
		if m.ItineraryID == itineraryID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence < out[j].Sequence })
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (f *fakeMessageRepo) PurgeOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.messages[:0]
	var n int64
	for _, m := range f.messages {
		if m.CreatedAt < cutoff.Unix() {
			n++
			continue
		}
		kept = append(kept, m)
	}
	f.messages = kept
	return n, nil
}

type fakeAccountRepo struct {
	byEmail map[string]*dbm.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]*dbm.Account)}
}

func (f *fakeAccountRepo) InsertTx(account *dbm.Account, _ context.Context) error {
	account.ID = uuid.New()
	f.byEmail[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindById(_ context.Context, id string) (*dbm.Account, error) {
	for _, a := range f.byEmail {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*dbm.Account, error) {
	return f.byEmail[email], nil
}

type fakeGenerator struct {
	mu    sync.Mutex
	calls int
	text  string
	err   error
}

func (f *fakeGenerator) Provider() string { return "Fake API" }

func (f *fakeGenerator) GenerateText(context.Context, string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.text, f.err
}
