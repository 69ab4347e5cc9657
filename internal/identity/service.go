package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pathlight/courseware/internal/apperr"
)

// ErrInvalidCredentials covers both "no such user" and "wrong password";
// callers must not be able to tell them apart. It is also the only failure
// that triggers the purchaser fallback in SignIn.
var ErrInvalidCredentials = errors.New("invalid credentials")

const bcryptCost = 12

type Service struct {
	store      Store
	purchasers PurchaserLookup
	log        *zap.SugaredLogger
	now        func() time.Time
}

func NewService(store Store, purchasers PurchaserLookup, log *zap.SugaredLogger) *Service {
	return &Service{store: store, purchasers: purchasers, log: log, now: time.Now}
}

// Register creates a new account keyed by email. Email is recorded as
// verified: every account here originates from a completed payment, and
// payment is proof of a working contact channel.
func (s *Service) Register(ctx context.Context, email, password, name string) (User, error) {
	if email == "" {
		return User{}, apperr.Validation("email required")
	}
	if password == "" {
		return User{}, apperr.Validation("password required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return User{}, err
	}
	u := User{
		ID:            uuid.NewString(),
		Email:         email,
		Name:          name,
		Role:          "learner",
		PasswordHash:  string(hash),
		EmailVerified: true,
		CreatedAt:     s.now(),
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return User{}, apperr.Wrap(apperr.KindConflict, err, "account for %s already exists", email)
		}
		return User{}, err
	}
	return u, nil
}

// signInStep labels the states of the sign-in flow so the fallback
// boundaries stay auditable: only an invalid-credentials failure moves the
// machine from attempt to lookup; any other error exits immediately.
type signInStep int

const (
	stepAttempt signInStep = iota
	stepLookup
	stepProvision
	stepRetry
)

// SignIn authenticates email/password. When standard authentication fails
// with invalid credentials, it reconciles against the purchaser record:
// an entitled email with no identity (a provisioning race or partial
// failure) gets its identity lazily created with the supplied password,
// and sign-in is retried exactly once.
func (s *Service) SignIn(ctx context.Context, email, password string) (User, error) {
	if email == "" || password == "" {
		return User{}, apperr.Validation("email and password required")
	}

	step := stepAttempt
	var purchaserName string
	for {
		switch step {
		case stepAttempt:
			u, err := s.authenticate(ctx, email, password)
			if err == nil {
				return u, nil
			}
			if !errors.Is(err, ErrInvalidCredentials) {
				return User{}, err
			}
			step = stepLookup

		case stepLookup:
			name, err := s.purchasers.GetPurchaser(ctx, email)
			switch {
			case err == nil:
				purchaserName = name
				step = stepProvision
			case errors.Is(err, ErrNotFound) || apperr.IsKind(err, apperr.KindNotFound):
				// No purchaser record: the original failure stands.
				return User{}, ErrInvalidCredentials
			default:
				// A lookup outage is not a credential problem; surface it.
				return User{}, err
			}

		case stepProvision:
			s.log.Infow("provisioning identity for purchaser at sign-in", "email", email)
			if _, err := s.Register(ctx, email, password, purchaserName); err != nil {
				// A concurrent provision may have won the race; retry
				// sign-in either way, but only once.
				if !apperr.IsKind(err, apperr.KindConflict) {
					return User{}, err
				}
			}
			step = stepRetry

		case stepRetry:
			u, err := s.authenticate(ctx, email, password)
			if err != nil {
				return User{}, err
			}
			return u, nil
		}
	}
}

func (s *Service) authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (User, error) {
	return s.store.GetUserByID(ctx, id)
}

// EnsureProfile creates the default profile if the user has none yet.
func (s *Service) EnsureProfile(ctx context.Context, userID, displayName string) (Profile, error) {
	p, err := s.store.GetProfile(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Profile{}, err
	}
	p = NewDefaultProfile(userID, displayName, s.now())
	if err := s.store.CreateProfile(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

type ProfileUpdate struct {
	DisplayName    *string `json:"display_name"`
	Bio            *string `json:"bio"`
	Goals          *string `json:"goals"`
	FavoriteModule *int    `json:"favorite_module"`
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (Profile, error) {
	u, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	p, err := s.EnsureProfile(ctx, userID, u.Name)
	if err != nil {
		return Profile{}, err
	}
	if upd.DisplayName != nil {
		p.DisplayName = *upd.DisplayName
	}
	if upd.Bio != nil {
		p.Bio = *upd.Bio
	}
	if upd.Goals != nil {
		p.Goals = *upd.Goals
	}
	if upd.FavoriteModule != nil {
		p.FavoriteModule = *upd.FavoriteModule
	}
	p.UpdatedAt = s.now()
	if err := s.store.UpdateProfile(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
