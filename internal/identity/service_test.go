package identity

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

/* ---------------- in-memory fakes ---------------- */

type fakeStore struct {
	users    map[string]User // by email
	profiles map[string]Profile
	userErr  error // forced error for GetUserByEmail
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]User{}, profiles: map[string]Profile{}}
}

func (s *fakeStore) CreateUser(_ context.Context, u User) error {
	if _, exists := s.users[u.Email]; exists {
		return ErrDuplicateEmail
	}
	s.users[u.Email] = u
	return nil
}

func (s *fakeStore) GetUserByEmail(_ context.Context, email string) (User, error) {
	if s.userErr != nil {
		return User{}, s.userErr
	}
	u, ok := s.users[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (s *fakeStore) GetUserByID(_ context.Context, id string) (User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (s *fakeStore) CreateProfile(_ context.Context, p Profile) error {
	s.profiles[p.UserID] = p
	return nil
}

func (s *fakeStore) GetProfile(_ context.Context, userID string) (Profile, error) {
	p, ok := s.profiles[userID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (s *fakeStore) UpdateProfile(_ context.Context, p Profile) error {
	s.profiles[p.UserID] = p
	return nil
}

type fakePurchasers struct {
	names     map[string]string
	lookupErr error // forced error for GetPurchaser
}

func (f *fakePurchasers) GetPurchaser(_ context.Context, email string) (string, error) {
	if f.lookupErr != nil {
		return "", f.lookupErr
	}
	n, ok := f.names[email]
	if !ok {
		return "", ErrNotFound
	}
	return n, nil
}

/* ---------------- tests ---------------- */

func newTestService(store *fakeStore, p *fakePurchasers) *Service {
	if p == nil {
		p = &fakePurchasers{names: map[string]string{}}
	}
	return NewService(store, p, zap.NewNop().Sugar())
}

func TestRegisterAndSignIn(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, nil)
	ctx := context.Background()

	u, err := svc.Register(ctx, "a@b.co", "hunter22", "Ada")
	if err != nil {
		t.Fatal(err)
	}
	if !u.EmailVerified {
		t.Fatal("payment-provisioned accounts are pre-verified")
	}

	got, err := svc.SignIn(ctx, "a@b.co", "hunter22")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != u.ID {
		t.Fatalf("signed in as %s, want %s", got.ID, u.ID)
	}

	if _, err := svc.SignIn(ctx, "a@b.co", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want invalid credentials", err)
	}
}

func TestSignInFallbackProvisionsPurchaser(t *testing.T) {
	store := newFakeStore()
	purch := &fakePurchasers{names: map[string]string{"paid@b.co": "Paying Customer"}}
	svc := newTestService(store, purch)
	ctx := context.Background()

	// No identity exists, but the email paid. Sign-in must lazily create
	// the account with the supplied password and succeed.
	u, err := svc.SignIn(ctx, "paid@b.co", "chosen-pass")
	if err != nil {
		t.Fatalf("fallback sign-in failed: %v", err)
	}
	if u.Name != "Paying Customer" {
		t.Fatalf("name = %q", u.Name)
	}
	// And it must stick.
	if _, err := svc.SignIn(ctx, "paid@b.co", "chosen-pass"); err != nil {
		t.Fatalf("second sign-in failed: %v", err)
	}
}

func TestSignInFallbackOnlyOnInvalidCredentials(t *testing.T) {
	store := newFakeStore()
	store.userErr = errors.New("connection refused")
	purch := &fakePurchasers{names: map[string]string{"paid@b.co": "Paying Customer"}}
	svc := newTestService(store, purch)

	// A transient store failure must propagate, never trigger provisioning.
	_, err := svc.SignIn(context.Background(), "paid@b.co", "pw")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want the store failure", err)
	}
	if len(store.users) != 0 {
		t.Fatal("fallback provisioned an identity on a non-credential failure")
	}
}

func TestSignInPurchaserLookupFailurePropagates(t *testing.T) {
	store := newFakeStore()
	outage := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	purch := &fakePurchasers{lookupErr: outage}
	svc := newTestService(store, purch)

	// The purchasers table being down says nothing about the password; the
	// caller must see the outage, not "invalid credentials".
	_, err := svc.SignIn(context.Background(), "paid@b.co", "pw")
	if !errors.Is(err, outage) {
		t.Fatalf("err = %v, want the lookup outage", err)
	}
	if len(store.users) != 0 {
		t.Fatal("fallback provisioned an identity during a lookup outage")
	}
}

func TestSignInNoPurchaserKeepsInvalidCredentials(t *testing.T) {
	svc := newTestService(newFakeStore(), nil)
	_, err := svc.SignIn(context.Background(), "stranger@b.co", "pw")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want invalid credentials", err)
	}
}

func TestEnsureProfileLazyCreate(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, nil)
	ctx := context.Background()

	u, _ := svc.Register(ctx, "a@b.co", "pw123456", "Ada")
	p, err := svc.EnsureProfile(ctx, u.ID, u.Name)
	if err != nil {
		t.Fatal(err)
	}
	if p.DisplayName != "Ada" || p.FavoriteModule != 1 {
		t.Fatalf("default profile = %+v", p)
	}

	// Second call returns the existing profile untouched.
	p2, err := svc.EnsureProfile(ctx, u.ID, "Other")
	if err != nil {
		t.Fatal(err)
	}
	if p2.DisplayName != "Ada" {
		t.Fatalf("existing profile overwritten: %+v", p2)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store, nil)
	ctx := context.Background()

	u, _ := svc.Register(ctx, "a@b.co", "pw123456", "Ada")
	bio := "new bio"
	fav := 7
	p, err := svc.UpdateProfile(ctx, u.ID, ProfileUpdate{Bio: &bio, FavoriteModule: &fav})
	if err != nil {
		t.Fatal(err)
	}
	if p.Bio != "new bio" || p.FavoriteModule != 7 {
		t.Fatalf("profile = %+v", p)
	}
	if p.DisplayName != "Ada" {
		t.Fatal("untouched fields must survive a partial update")
	}
}
