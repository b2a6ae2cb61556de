package openingservice

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/drop"
	"github.com/caseforge/caseforge/internal/pg"
	"github.com/caseforge/caseforge/internal/service/ledgerservice"
)

type fixedSource struct {
	roll int64
}

func (s fixedSource) Int64n(max int64) (int64, error) {
	return s.roll, nil
}

type failingSource struct{}

func (failingSource) Int64n(max int64) (int64, error) {
	return 0, errors.New("entropy exhausted")
}

type mocks struct {
	ledger    *MockLedger
	catalog   *MockCatalog
	inventory *MockInventoryRepo
	openRepo  *MockOpenRequestRepo
	txManager *pg.MockTXManager
	notifier  *MockNotifier
}

func NewMock(t *testing.T, source drop.Source) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		ledger:    NewMockLedger(ctrl),
		catalog:   NewMockCatalog(ctrl),
		inventory: NewMockInventoryRepo(ctrl),
		openRepo:  NewMockOpenRequestRepo(ctrl),
		txManager: pg.NewMockTXManager(ctrl),
		notifier:  NewMockNotifier(ctrl),
	}
	service := New(m.ledger, m.catalog, m.inventory, m.openRepo, m.txManager, source, m.notifier)
	service.SetRecordRetry(2, 0)
	defer ctrl.Finish()
	return service, m
}

func armoryCase(t *testing.T) (*domain.Case, *drop.Table) {
	t.Helper()
	c := &domain.Case{
		ID:      1,
		Name:    "Armory Case",
		Price:   250,
		Version: 1,
		Drops: []domain.DropEntry{
			{ItemID: 1, Rarity: "common", Weight: 70},
			{ItemID: 2, Rarity: "rare", Weight: 30},
		},
	}
	table, err := drop.NewTable([]drop.Entry{
		{ItemID: 1, Rarity: "common", Weight: 70},
		{ItemID: 2, Rarity: "rare", Weight: 30},
	})
	assert.NoError(t, err)
	return c, table
}

func passthroughBegin(m *mocks) *gomock.Call {
	return m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestOpenSuccess(t *testing.T) {
	service, m := NewMock(t, fixedSource{roll: 0})
	c, table := armoryCase(t)
	key := uuid.New()

	m.openRepo.EXPECT().FindByKey(gomock.Any(), key).Return(nil, nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), 1).Return(c, table, nil)
	m.openRepo.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(true, nil, nil)
	passthroughBegin(m).Times(2)
	m.ledger.EXPECT().TryCharge(gomock.Any(), 1, int64(250), key.String()).
		Return(&domain.Balance{UserID: 1, CurrentBalance: 750}, nil)
	m.openRepo.EXPECT().MarkCharged(gomock.Any(), key, int64(750)).Return(nil)
	m.openRepo.EXPECT().MarkResolved(gomock.Any(), key, 1, "common", int64(0), int64(100)).Return(nil)
	m.inventory.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(&domain.InventoryEntry{ID: 1}, nil)
	m.inventory.EXPECT().BumpStats(gomock.Any(), 1, "common", int64(250)).Return(nil)
	m.openRepo.EXPECT().MarkCompleted(gomock.Any(), key, int64(750)).Return(nil)
	m.catalog.EXPECT().GetItem(gomock.Any(), 1).Return(&domain.Item{ID: 1, Name: "Field Knife", Rarity: "common"}, nil)
	m.notifier.EXPECT().Publish(domain.DropEvent{UserID: 1, ItemID: 1, Rarity: "common", CaseID: 1})

	result, err := service.Open(context.Background(), 1, 1, key)
	assert.NoError(t, err)
	assert.Equal(t, domain.Item{ID: 1, Name: "Field Knife", Rarity: "common"}, result.Item)
	assert.Equal(t, int64(750), result.NewBalance)
}

func TestOpenCaseNotFound(t *testing.T) {
	service, m := NewMock(t, fixedSource{})
	key := uuid.New()

	m.openRepo.EXPECT().FindByKey(gomock.Any(), key).Return(nil, nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), 99).Return(nil, nil, errors.New("case not found"))

	result, err := service.Open(context.Background(), 1, 99, key)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestOpenInsufficientBalance(t *testing.T) {
	service, m := NewMock(t, fixedSource{})
	c, table := armoryCase(t)
	key := uuid.New()

	m.openRepo.EXPECT().FindByKey(gomock.Any(), key).Return(nil, nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), 1).Return(c, table, nil)
	m.openRepo.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(true, nil, nil)
	passthroughBegin(m)
	m.ledger.EXPECT().TryCharge(gomock.Any(), 1, int64(250), key.String()).
		Return(nil, &ledgerservice.InsufficientFundsError{Required: 250, Available: 100})
	m.openRepo.EXPECT().MarkDenied(gomock.Any(), key, int64(100)).Return(nil)

	result, err := service.Open(context.Background(), 1, 1, key)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ledgerservice.ErrInsufficientBalance)

	var denied *ledgerservice.InsufficientFundsError
	assert.ErrorAs(t, err, &denied)
	assert.Equal(t, int64(250), denied.Required)
	assert.Equal(t, int64(100), denied.Available)
}

func TestOpenResolveFailureRefunds(t *testing.T) {
	service, m := NewMock(t, failingSource{})
	c, table := armoryCase(t)
	key := uuid.New()

	m.openRepo.EXPECT().FindByKey(gomock.Any(), key).Return(nil, nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), 1).Return(c, table, nil)
	m.openRepo.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(true, nil, nil)
	passthroughBegin(m).Times(2)
	m.ledger.EXPECT().TryCharge(gomock.Any(), 1, int64(250), key.String()).
		Return(&domain.Balance{UserID: 1, CurrentBalance: 750}, nil)
	m.openRepo.EXPECT().MarkCharged(gomock.Any(), key, int64(750)).Return(nil)
	m.openRepo.EXPECT().UpdateState(gomock.Any(), key,
		[]string{domain.OpenStateCharged, domain.OpenStateResolved}, domain.OpenStateRefunded).Return(nil)
	m.ledger.EXPECT().Credit(gomock.Any(), 1, int64(250), domain.TxReasonRefund, key.String()).
		Return(&domain.Balance{UserID: 1, CurrentBalance: 1000}, nil)

	result, err := service.Open(context.Background(), 1, 1, key)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestOpenRecordFailureReturnsPending(t *testing.T) {
	service, m := NewMock(t, fixedSource{roll: 0})
	c, table := armoryCase(t)
	key := uuid.New()

	m.openRepo.EXPECT().FindByKey(gomock.Any(), key).Return(nil, nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), 1).Return(c, table, nil)
	m.openRepo.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(true, nil, nil)
	passthroughBegin(m).Times(3)
	m.ledger.EXPECT().TryCharge(gomock.Any(), 1, int64(250), key.String()).
		Return(&domain.Balance{UserID: 1, CurrentBalance: 750}, nil)
	m.openRepo.EXPECT().MarkCharged(gomock.Any(), key, int64(750)).Return(nil)
	m.openRepo.EXPECT().MarkResolved(gomock.Any(), key, 1, "common", int64(0), int64(100)).Return(nil)
	m.inventory.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error")).Times(2)
	m.openRepo.EXPECT().MarkRecordFailed(gomock.Any(), key).Return(nil)

	result, err := service.Open(context.Background(), 1, 1, key)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrRecordPending)
}

func TestOpenRecordCededToReconciler(t *testing.T) {
	service, m := NewMock(t, fixedSource{roll: 0})
	c, table := armoryCase(t)
	key := uuid.New()

	// MarkCompleted losing its guard means the reconciliation worker already
	// recorded the result; the open still succeeds.
	m.openRepo.EXPECT().FindByKey(gomock.Any(), key).Return(nil, nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), 1).Return(c, table, nil)
	m.openRepo.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(true, nil, nil)
	passthroughBegin(m).Times(2)
	m.ledger.EXPECT().TryCharge(gomock.Any(), 1, int64(250), key.String()).
		Return(&domain.Balance{UserID: 1, CurrentBalance: 750}, nil)
	m.openRepo.EXPECT().MarkCharged(gomock.Any(), key, int64(750)).Return(nil)
	m.openRepo.EXPECT().MarkResolved(gomock.Any(), key, 1, "common", int64(0), int64(100)).Return(nil)
	m.inventory.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).Return(&domain.InventoryEntry{ID: 1}, nil)
	m.inventory.EXPECT().BumpStats(gomock.Any(), 1, "common", int64(250)).Return(nil)
	m.openRepo.EXPECT().MarkCompleted(gomock.Any(), key, int64(750)).Return(domain.ErrStaleTransition)
	m.catalog.EXPECT().GetItem(gomock.Any(), 1).Return(&domain.Item{ID: 1, Name: "Field Knife", Rarity: "common"}, nil)
	m.notifier.EXPECT().Publish(gomock.Any())

	result, err := service.Open(context.Background(), 1, 1, key)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Item.ID)
}

func TestOpenReplay(t *testing.T) {
	itemID := 2

	tests := []struct {
		name          string
		existing      *domain.OpenRequest
		prepareMock   func(m *mocks)
		expectResult  bool
		expectedError error
	}{
		{
			name: "Completed request returns the stored result",
			existing: &domain.OpenRequest{
				Key: uuid.New(), UserID: 1, CaseID: 1,
				State: domain.OpenStateCompleted, ItemID: &itemID, ResultingBalance: 750,
			},
			prepareMock: func(m *mocks) {
				m.catalog.EXPECT().GetItem(gomock.Any(), 2).Return(&domain.Item{ID: 2, Name: "Storm Rifle", Rarity: "rare"}, nil)
			},
			expectResult: true,
		},
		{
			name: "Denied request replays the denial",
			existing: &domain.OpenRequest{
				Key: uuid.New(), UserID: 1, CaseID: 1,
				State: domain.OpenStateDenied, Cost: 250, ResultingBalance: 100,
			},
			expectedError: &ledgerservice.InsufficientFundsError{Required: 250, Available: 100},
		},
		{
			name: "Refunded request reports the abort",
			existing: &domain.OpenRequest{
				Key: uuid.New(), UserID: 1, CaseID: 1, State: domain.OpenStateRefunded,
			},
			expectedError: ErrOpenAborted,
		},
		{
			name: "Expired request reports the abort",
			existing: &domain.OpenRequest{
				Key: uuid.New(), UserID: 1, CaseID: 1, State: domain.OpenStateExpired,
			},
			expectedError: ErrOpenAborted,
		},
		{
			name: "Unfinished request reports in-flight",
			existing: &domain.OpenRequest{
				Key: uuid.New(), UserID: 1, CaseID: 1, State: domain.OpenStateCharged,
			},
			expectedError: ErrOpenInFlight,
		},
		{
			name: "Key reused by another user is a conflict",
			existing: &domain.OpenRequest{
				Key: uuid.New(), UserID: 7, CaseID: 1, State: domain.OpenStateCompleted,
			},
			expectedError: ErrIdempotencyConflict,
		},
		{
			name: "Key reused for another case is a conflict",
			existing: &domain.OpenRequest{
				Key: uuid.New(), UserID: 1, CaseID: 3, State: domain.OpenStateCompleted,
			},
			expectedError: ErrIdempotencyConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t, fixedSource{})

			// Replays never touch the catalog: the stored request answers on
			// its own, even when the case has since been disabled or removed.
			m.openRepo.EXPECT().FindByKey(gomock.Any(), tt.existing.Key).Return(tt.existing, nil)
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			result, err := service.Open(context.Background(), 1, 1, tt.existing.Key)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			if tt.expectResult {
				assert.Equal(t, 2, result.Item.ID)
				assert.Equal(t, int64(750), result.NewBalance)
			}
		})
	}
}

func TestOpenReplayLostClaimRace(t *testing.T) {
	// The key lookup can miss a request another caller claims a moment later;
	// the claim conflict then serves the replay.
	service, m := NewMock(t, fixedSource{})
	c, table := armoryCase(t)
	itemID := 2
	existing := &domain.OpenRequest{
		Key: uuid.New(), UserID: 1, CaseID: 1,
		State: domain.OpenStateCompleted, ItemID: &itemID, ResultingBalance: 750,
	}

	m.openRepo.EXPECT().FindByKey(gomock.Any(), existing.Key).Return(nil, nil)
	m.catalog.EXPECT().GetCase(gomock.Any(), 1).Return(c, table, nil)
	m.openRepo.EXPECT().Claim(gomock.Any(), gomock.Any()).Return(false, existing, nil)
	m.catalog.EXPECT().GetItem(gomock.Any(), 2).Return(&domain.Item{ID: 2, Name: "Storm Rifle", Rarity: "rare"}, nil)

	result, err := service.Open(context.Background(), 1, 1, existing.Key)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Item.ID)
	assert.Equal(t, int64(750), result.NewBalance)
}

// In-memory fakes for behavior that mocks cannot express: concurrent charges
// against one shared balance and end-to-end idempotent replays.

type fakeTxManager struct{}

func (fakeTxManager) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	return fn(ctx)
}

type fakeLedger struct {
	mu      sync.Mutex
	balance int64
	charges int
}

func (l *fakeLedger) TryCharge(ctx context.Context, userID int, amount int64, reference string) (*domain.Balance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balance < amount {
		return nil, &ledgerservice.InsufficientFundsError{Required: amount, Available: l.balance}
	}
	l.balance -= amount
	l.charges++
	return &domain.Balance{UserID: userID, CurrentBalance: l.balance}, nil
}

func (l *fakeLedger) Credit(ctx context.Context, userID int, amount int64, reason, reference string) (*domain.Balance, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance += amount
	return &domain.Balance{UserID: userID, CurrentBalance: l.balance}, nil
}

type fakeCatalog struct {
	c     *domain.Case
	table *drop.Table
}

func (f *fakeCatalog) GetCase(ctx context.Context, caseID int) (*domain.Case, *drop.Table, error) {
	return f.c, f.table, nil
}

func (f *fakeCatalog) GetItem(ctx context.Context, itemID int) (*domain.Item, error) {
	return &domain.Item{ID: itemID, Name: "Field Knife", Rarity: "common"}, nil
}

type fakeInventory struct {
	mu      sync.Mutex
	entries []domain.InventoryEntry
}

func (f *fakeInventory) CreateEntry(ctx context.Context, entry *domain.InventoryEntry) (*domain.InventoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry.ID = int64(len(f.entries) + 1)
	f.entries = append(f.entries, *entry)
	return entry, nil
}

func (f *fakeInventory) BumpStats(ctx context.Context, userID int, rarity string, cost int64) error {
	return nil
}

type fakeOpenRepo struct {
	mu       sync.Mutex
	requests map[uuid.UUID]*domain.OpenRequest
}

func newFakeOpenRepo() *fakeOpenRepo {
	return &fakeOpenRepo{requests: make(map[uuid.UUID]*domain.OpenRequest)}
}

func (f *fakeOpenRepo) FindByKey(ctx context.Context, key uuid.UUID) (*domain.OpenRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.requests[key]
	if !ok {
		return nil, nil
	}
	snapshot := *existing
	return &snapshot, nil
}

func (f *fakeOpenRepo) Claim(ctx context.Context, req *domain.OpenRequest) (bool, *domain.OpenRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.requests[req.Key]; ok {
		snapshot := *existing
		return false, &snapshot, nil
	}
	stored := *req
	f.requests[req.Key] = &stored
	return true, nil, nil
}

func (f *fakeOpenRepo) set(key uuid.UUID, mutate func(r *domain.OpenRequest)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[key]
	if !ok {
		return domain.ErrStaleTransition
	}
	mutate(r)
	return nil
}

func (f *fakeOpenRepo) MarkCharged(ctx context.Context, key uuid.UUID, resultingBalance int64) error {
	return f.set(key, func(r *domain.OpenRequest) {
		r.State = domain.OpenStateCharged
		r.ResultingBalance = resultingBalance
	})
}

func (f *fakeOpenRepo) MarkDenied(ctx context.Context, key uuid.UUID, available int64) error {
	return f.set(key, func(r *domain.OpenRequest) {
		r.State = domain.OpenStateDenied
		r.ResultingBalance = available
	})
}

func (f *fakeOpenRepo) MarkResolved(ctx context.Context, key uuid.UUID, itemID int, rarity string, roll, totalWeight int64) error {
	return f.set(key, func(r *domain.OpenRequest) {
		r.State = domain.OpenStateResolved
		r.ItemID = &itemID
		r.Rarity = rarity
		r.Roll = roll
		r.TotalWeight = totalWeight
	})
}

func (f *fakeOpenRepo) MarkCompleted(ctx context.Context, key uuid.UUID, resultingBalance int64) error {
	return f.set(key, func(r *domain.OpenRequest) {
		r.State = domain.OpenStateCompleted
		r.ResultingBalance = resultingBalance
	})
}

func (f *fakeOpenRepo) MarkRecordFailed(ctx context.Context, key uuid.UUID) error {
	return f.set(key, func(r *domain.OpenRequest) {
		r.State = domain.OpenStateRecordFailed
		r.Attempts++
	})
}

func (f *fakeOpenRepo) UpdateState(ctx context.Context, key uuid.UUID, from []string, to string) error {
	return f.set(key, func(r *domain.OpenRequest) {
		r.State = to
	})
}

type nopNotifier struct{}

func (nopNotifier) Publish(event domain.DropEvent) {}

func newFakeService(t *testing.T, balance int64) (*Service, *fakeLedger, *fakeInventory) {
	t.Helper()
	c := &domain.Case{
		ID:      1,
		Name:    "Armory Case",
		Price:   250,
		Version: 1,
	}
	table, err := drop.NewTable([]drop.Entry{{ItemID: 1, Rarity: "common", Weight: 100}})
	assert.NoError(t, err)

	ledger := &fakeLedger{balance: balance}
	inventory := &fakeInventory{}
	service := New(ledger, &fakeCatalog{c: c, table: table}, inventory, newFakeOpenRepo(),
		fakeTxManager{}, fixedSource{roll: 0}, nopNotifier{})
	service.SetRecordRetry(1, 0)
	return service, ledger, inventory
}

func TestOpenConcurrentChargesNeverOverspend(t *testing.T) {
	// 100 concurrent opens against a balance that covers exactly one.
	service, ledger, inventory := newFakeService(t, 250)

	const attempts = 100
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded, denied := 0, 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Open(context.Background(), 1, 1, uuid.New())
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ledgerservice.ErrInsufficientBalance):
				denied++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, denied)
	assert.Equal(t, 1, ledger.charges)
	assert.Equal(t, int64(0), ledger.balance)
	assert.Len(t, inventory.entries, 1)
}

func TestOpenReplaySameKeyChargesOnce(t *testing.T) {
	service, ledger, inventory := newFakeService(t, 1000)
	key := uuid.New()

	first, err := service.Open(context.Background(), 1, 1, key)
	assert.NoError(t, err)

	second, err := service.Open(context.Background(), 1, 1, key)
	assert.NoError(t, err)

	assert.Equal(t, first.Item.ID, second.Item.ID)
	assert.Equal(t, first.NewBalance, second.NewBalance)
	assert.Equal(t, 1, ledger.charges)
	assert.Equal(t, int64(750), ledger.balance)
	assert.Len(t, inventory.entries, 1)
}

func TestOpenReplayDeniedSameKey(t *testing.T) {
	service, ledger, _ := newFakeService(t, 100)
	key := uuid.New()

	_, err := service.Open(context.Background(), 1, 1, key)
	assert.ErrorIs(t, err, ledgerservice.ErrInsufficientBalance)

	_, err = service.Open(context.Background(), 1, 1, key)
	var denied *ledgerservice.InsufficientFundsError
	assert.ErrorAs(t, err, &denied)
	assert.Equal(t, int64(250), denied.Required)
	assert.Equal(t, int64(100), denied.Available)
	assert.Equal(t, 0, ledger.charges)
}
