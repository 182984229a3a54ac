package ledger

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"videoserver/internal/domain"
)

type fakeUserRepo struct {
	users   []domain.User
	listErr error
}

func (f *fakeUserRepo) Create(context.Context, *domain.User) error { return nil }
func (f *fakeUserRepo) GetByID(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeUserRepo) ListAll(context.Context) ([]domain.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.users, nil
}

type fakeCreditRepo struct {
	accounts map[string]*domain.CreditAccount
	getErr   map[string]error
	grantErr map[string]error
	clock    domain.Clock
}

func newFakeCreditRepo(clock domain.Clock) *fakeCreditRepo {
	return &fakeCreditRepo{
		accounts: map[string]*domain.CreditAccount{},
		getErr:   map[string]error{},
		grantErr: map[string]error{},
		clock:    clock,
	}
}

func (f *fakeCreditRepo) Get(_ context.Context, userID string) (*domain.CreditAccount, error) {
	if err := f.getErr[userID]; err != nil {
		return nil, err
	}
	if acct, ok := f.accounts[userID]; ok {
		copied := *acct
		return &copied, nil
	}
	// create-on-read
	f.accounts[userID] = &domain.CreditAccount{UserID: userID}
	copied := *f.accounts[userID]
	return &copied, nil
}

func (f *fakeCreditRepo) GrantGift(_ context.Context, userID string, amount int, _ string) error {
	if err := f.grantErr[userID]; err != nil {
		return err
	}
	acct, ok := f.accounts[userID]
	if !ok {
		acct = &domain.CreditAccount{UserID: userID}
		f.accounts[userID] = acct
	}
	acct.GiftCredit += amount
	now := f.clock()
	acct.LastGiftReset = &now
	return nil
}

func (f *fakeCreditRepo) GrantPaid(_ context.Context, userID string, amount int, _, _ string) error {
	acct, ok := f.accounts[userID]
	if !ok {
		acct = &domain.CreditAccount{UserID: userID}
		f.accounts[userID] = acct
	}
	acct.PaidCredit += amount
	return nil
}

func entitledUser(id string, expiresAt time.Time) domain.User {
	return domain.User{
		ID: id,
		Entitlements: domain.EntitlementSet{
			"pro": {ExpiresAt: &expiresAt, Source: "revenuecat"},
		},
	}
}

func newTestRefresher(users *fakeUserRepo, credits *fakeCreditRepo, now time.Time) *Refresher {
	return NewRefresher(users, credits, zerolog.New(io.Discard)).
		WithClock(func() time.Time { return now })
}

func TestFirstGrantWhenNeverReset(t *testing.T) {
	now := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	users := &fakeUserRepo{users: []domain.User{entitledUser("u1", now.Add(time.Hour))}}
	credits := newFakeCreditRepo(func() time.Time { return now })

	summary, err := newTestRefresher(users, credits, now).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Granted != 1 || summary.Errors != 0 {
		t.Fatalf("summary = %+v, want one grant", summary)
	}
	acct := credits.accounts["u1"]
	if acct.GiftCredit != domain.WeeklyGiftCredit {
		t.Fatalf("gift credit = %d, want %d", acct.GiftCredit, domain.WeeklyGiftCredit)
	}
	if acct.LastGiftReset == nil || !acct.LastGiftReset.Equal(now) {
		t.Fatalf("last reset = %v, want %v", acct.LastGiftReset, now)
	}
	if acct.PaidCredit != 0 {
		t.Fatalf("paid credit mutated: %d", acct.PaidCredit)
	}
}

func TestNoGrantInsideSevenDayWindow(t *testing.T) {
	now := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	users := &fakeUserRepo{users: []domain.User{entitledUser("u1", now.Add(time.Hour))}}
	credits := newFakeCreditRepo(func() time.Time { return now })
	sixDaysAgo := now.Add(-6 * 24 * time.Hour)
	credits.accounts["u1"] = &domain.CreditAccount{UserID: "u1", GiftCredit: 1, LastGiftReset: &sixDaysAgo}

	summary, err := newTestRefresher(users, credits, now).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Granted != 0 || summary.Skipped != 1 {
		t.Fatalf("summary = %+v, want skip", summary)
	}
	if credits.accounts["u1"].GiftCredit != 1 {
		t.Fatalf("gift credit changed inside window: %d", credits.accounts["u1"].GiftCredit)
	}
	if !credits.accounts["u1"].LastGiftReset.Equal(sixDaysAgo) {
		t.Fatal("last reset must not move on a skipped user")
	}
}

func TestGrantAtExactlySevenDays(t *testing.T) {
	now := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	users := &fakeUserRepo{users: []domain.User{entitledUser("u1", now.Add(time.Hour))}}
	credits := newFakeCreditRepo(func() time.Time { return now })
	sevenDaysAgo := now.Add(-7 * 24 * time.Hour)
	credits.accounts["u1"] = &domain.CreditAccount{UserID: "u1", GiftCredit: 3, PaidCredit: 10, LastGiftReset: &sevenDaysAgo}

	summary, err := newTestRefresher(users, credits, now).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Granted != 1 {
		t.Fatalf("summary = %+v, want one grant", summary)
	}
	acct := credits.accounts["u1"]
	if acct.GiftCredit != 3+domain.WeeklyGiftCredit {
		t.Fatalf("gift credit = %d", acct.GiftCredit)
	}
	if acct.PaidCredit != 10 {
		t.Fatalf("paid credit must never change, got %d", acct.PaidCredit)
	}
}

func TestLapsedEntitlementNeverGrants(t *testing.T) {
	now := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	users := &fakeUserRepo{users: []domain.User{entitledUser("u1", now.Add(-time.Hour))}}
	credits := newFakeCreditRepo(func() time.Time { return now })
	longAgo := now.Add(-30 * 24 * time.Hour)
	credits.accounts["u1"] = &domain.CreditAccount{UserID: "u1", PaidCredit: 7, LastGiftReset: &longAgo}

	summary, err := newTestRefresher(users, credits, now).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Granted != 0 || summary.Skipped != 1 {
		t.Fatalf("summary = %+v, want skip for lapsed user", summary)
	}
	acct := credits.accounts["u1"]
	if acct.GiftCredit != 0 || acct.PaidCredit != 7 {
		t.Fatalf("balances changed for lapsed user: %+v", acct)
	}
}

func TestRerunGrantsAtMostOnce(t *testing.T) {
	now := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	users := &fakeUserRepo{users: []domain.User{entitledUser("u1", now.Add(time.Hour))}}
	credits := newFakeCreditRepo(func() time.Time { return now })
	refresher := newTestRefresher(users, credits, now)

	for i := 0; i < 2; i++ {
		if _, err := refresher.Run(context.Background()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	if got := credits.accounts["u1"].GiftCredit; got != domain.WeeklyGiftCredit {
		t.Fatalf("gift credit after double run = %d, want %d", got, domain.WeeklyGiftCredit)
	}
}

func TestPerUserFailureDoesNotAbortRun(t *testing.T) {
	now := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	users := &fakeUserRepo{users: []domain.User{
		entitledUser("broken", now.Add(time.Hour)),
		entitledUser("ok", now.Add(time.Hour)),
	}}
	credits := newFakeCreditRepo(func() time.Time { return now })
	credits.getErr["broken"] = errors.New("store flaked")

	summary, err := newTestRefresher(users, credits, now).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Errors != 1 || summary.Granted != 1 {
		t.Fatalf("summary = %+v, want one error and one grant", summary)
	}
	if credits.accounts["ok"].GiftCredit != domain.WeeklyGiftCredit {
		t.Fatal("healthy user should still be granted")
	}
}

func TestListUsersFailureIsFatal(t *testing.T) {
	users := &fakeUserRepo{listErr: errors.New("store unreachable")}
	credits := newFakeCreditRepo(time.Now)

	if _, err := newTestRefresher(users, credits, time.Now()).Run(context.Background()); err == nil {
		t.Fatal("expected error when user listing fails")
	}
}
