package repository

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"petnutricare/internal/model"
)

// FallbackUserRepository routes operations to a persistent primary store and
// falls back to an in-memory store when the primary fails. Once degraded it
// stays degraded until process restart; there is no reconnect probing and no
// reconciliation of users created while degraded.
type FallbackUserRepository struct {
	primary  UserRepository // nil if the database was unreachable at boot
	fallback UserRepository
	degraded atomic.Bool
	log      *slog.Logger
}

// NewFallbackUserRepository wraps primary and fallback stores. A nil primary
// starts the repository in the degraded state.
func NewFallbackUserRepository(primary, fallback UserRepository, log *slog.Logger) *FallbackUserRepository {
	r := &FallbackUserRepository{primary: primary, fallback: fallback, log: log}
	if primary == nil {
		r.degraded.Store(true)
	}
	return r
}

// Degraded reports whether operations are being served by the fallback store.
func (r *FallbackUserRepository) Degraded() bool {
	return r.degraded.Load()
}

// degrade flips the availability flag. CompareAndSwap keeps the transition
// log line to one per failure streak even under concurrent requests.
func (r *FallbackUserRepository) degrade(err error) {
	if r.degraded.CompareAndSwap(false, true) {
		r.log.Warn("persistent store unavailable, switching to in-memory store", "error", err)
	}
}

// Create inserts via the primary store, retrying once against the fallback
// on failure. ErrEmailTaken is a definitive answer and never triggers the
// fallback.
func (r *FallbackUserRepository) Create(ctx context.Context, user *model.User) error {
	if !r.degraded.Load() {
		err := r.primary.Create(ctx, user)
		if err == nil || errors.Is(err, ErrEmailTaken) {
			return err
		}
		r.degrade(err)
	}
	return r.fallback.Create(ctx, user)
}

func (r *FallbackUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if !r.degraded.Load() {
		user, err := r.primary.FindByEmail(ctx, email)
		if err == nil {
			return user, nil
		}
		r.degrade(err)
	}
	return r.fallback.FindByEmail(ctx, email)
}

func (r *FallbackUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	if !r.degraded.Load() {
		user, err := r.primary.FindByID(ctx, id)
		if err == nil {
			return user, nil
		}
		r.degrade(err)
	}
	return r.fallback.FindByID(ctx, id)
}

func (r *FallbackUserRepository) List(ctx context.Context) ([]model.User, error) {
	if !r.degraded.Load() {
		users, err := r.primary.List(ctx)
		if err == nil {
			return users, nil
		}
		r.degrade(err)
	}
	return r.fallback.List(ctx)
}
