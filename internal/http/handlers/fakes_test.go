package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"videoserver/internal/domain"
	"videoserver/internal/middleware"
	"videoserver/internal/reconcile"
)

type fakeUserRepo struct {
	users   map[string]*domain.User
	created []*domain.User
	getErr  error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if f.users == nil {
		f.users = make(map[string]*domain.User)
	}
	f.users[user.ID] = user
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) ListAll(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

type paidGrant struct {
	userID     string
	amount     int
	productID  string
	purchaseID string
}

type fakeCreditRepo struct {
	accounts map[string]*domain.CreditAccount
	paid     []paidGrant
	getErr   error
	grantErr error
}

func (f *fakeCreditRepo) Get(ctx context.Context, userID string) (*domain.CreditAccount, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.accounts == nil {
		f.accounts = make(map[string]*domain.CreditAccount)
	}
	if acc, ok := f.accounts[userID]; ok {
		return acc, nil
	}
	acc := &domain.CreditAccount{UserID: userID}
	f.accounts[userID] = acc
	return acc, nil
}

func (f *fakeCreditRepo) GrantGift(ctx context.Context, userID string, amount int, reason string) error {
	if f.grantErr != nil {
		return f.grantErr
	}
	acc, _ := f.Get(ctx, userID)
	acc.GiftCredit += amount
	now := time.Now()
	acc.LastGiftReset = &now
	return nil
}

func (f *fakeCreditRepo) GrantPaid(ctx context.Context, userID string, amount int, productID, purchaseID string) error {
	if f.grantErr != nil {
		return f.grantErr
	}
	acc, _ := f.Get(ctx, userID)
	acc.PaidCredit += amount
	f.paid = append(f.paid, paidGrant{userID: userID, amount: amount, productID: productID, purchaseID: purchaseID})
	return nil
}

type fakeFeedbackRepo struct {
	stored    []*domain.Feedback
	createErr error
}

func (f *fakeFeedbackRepo) Create(ctx context.Context, fb *domain.Feedback) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.stored = append(f.stored, fb)
	return nil
}

type fakeProductRepo struct {
	products []domain.Product
	listErr  error
}

func (f *fakeProductRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.Product
	for _, p := range f.products {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeVideoRepo struct {
	tasks   []domain.VideoTask
	listErr error
}

func (f *fakeVideoRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.VideoTask, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.VideoTask
	for _, t := range f.tasks {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeVideoRepo) ApplyRefresh(ctx context.Context, videoID string, refresh domain.VideoRefresh) error {
	return nil
}

func newTestApp(videos domain.VideoRepository) (*App, *fakeUserRepo, *fakeCreditRepo, *fakeFeedbackRepo) {
	users := &fakeUserRepo{}
	credits := &fakeCreditRepo{}
	feedback := &fakeFeedbackRepo{}
	logger := zerolog.New(io.Discard)
	app := &App{
		Logger:     logger,
		Users:      users,
		Credits:    credits,
		Feedback:   feedback,
		Products:   &fakeProductRepo{},
		Reconciler: reconcile.NewEngine(videos, nil, logger, reconcile.Config{}),
	}
	return app, users, credits, feedback
}

func authedRequest(r *http.Request, userID string) *http.Request {
	return r.WithContext(middleware.ContextWithUserID(r.Context(), userID))
}
