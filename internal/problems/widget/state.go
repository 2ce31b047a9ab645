package widget

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoStore is returned when an instance has no state store attached.
var ErrNoStore = errors.New("widget state store is not configured")

// Key identifies one widget instance's state.
type Key struct {
	SessionID string
	WidgetID  string
}

// Validate reports whether both key parts are present.
func (k Key) Validate() error {
	if strings.TrimSpace(k.SessionID) == "" {
		return errors.New("session id is required")
	}
	if strings.TrimSpace(k.WidgetID) == "" {
		return errors.New("widget id is required")
	}
	return nil
}

// StateStore persists opaque widget state blobs.
type StateStore interface {
	GetState(ctx context.Context, key Key) ([]byte, bool, error)
	PutState(ctx context.Context, key Key, data []byte) error
	DeleteState(ctx context.Context, key Key) error
}

// Load returns the stored state for inst, or init() when none exists yet.
func Load[T any](ctx context.Context, inst Instance, init func() T) (T, error) {
	var zero T
	if inst.Store == nil {
		return zero, ErrNoStore
	}
	data, ok, err := inst.Store.GetState(ctx, inst.Key())
	if err != nil {
		return zero, fmt.Errorf("load %s state: %w", inst.WidgetID, err)
	}
	if !ok {
		return init(), nil
	}
	var state T
	if err := json.Unmarshal(data, &state); err != nil {
		return zero, fmt.Errorf("decode %s state: %w", inst.WidgetID, err)
	}
	return state, nil
}

// Save stores state for inst.
func Save[T any](ctx context.Context, inst Instance, state T) error {
	if inst.Store == nil {
		return ErrNoStore
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode %s state: %w", inst.WidgetID, err)
	}
	if err := inst.Store.PutState(ctx, inst.Key(), data); err != nil {
		return fmt.Errorf("save %s state: %w", inst.WidgetID, err)
	}
	return nil
}

// Exclusive runs fn while holding the lock for inst's key. Calls for the same
// session and widget run one at a time. fn must not call Exclusive, Update,
// Mount or Unmount for the same instance.
func Exclusive(inst Instance, fn func() error) error {
	if inst.Store == nil {
		return ErrNoStore
	}
	release := instanceLocks.lock(inst.Key())
	defer release()
	return fn()
}

// Update loads the state for inst (or init()), applies fn and saves the
// result, all under the instance lock. An fn error leaves the stored state
// untouched.
func Update[T any](ctx context.Context, inst Instance, init func() T, fn func(T) (T, error)) error {
	return Exclusive(inst, func() error {
		state, err := Load(ctx, inst, init)
		if err != nil {
			return err
		}
		next, err := fn(state)
		if err != nil {
			return err
		}
		return Save(ctx, inst, next)
	})
}

// Unmount drops the stored state for inst so the next view starts fresh.
func Unmount(ctx context.Context, inst Instance) error {
	if inst.Store == nil {
		return ErrNoStore
	}
	release := instanceLocks.lock(inst.Key())
	defer release()
	if err := inst.Store.DeleteState(ctx, inst.Key()); err != nil {
		return fmt.Errorf("unmount %s: %w", inst.WidgetID, err)
	}
	return nil
}

// Mount returns the stored state for inst. When none exists yet it stores and
// returns init(), so later actions observe the same initial state.
func Mount[T any](ctx context.Context, inst Instance, init func() T) (T, error) {
	var zero T
	if inst.Store == nil {
		return zero, ErrNoStore
	}
	release := instanceLocks.lock(inst.Key())
	defer release()
	data, ok, err := inst.Store.GetState(ctx, inst.Key())
	if err != nil {
		return zero, fmt.Errorf("load %s state: %w", inst.WidgetID, err)
	}
	if ok {
		var state T
		if err := json.Unmarshal(data, &state); err != nil {
			return zero, fmt.Errorf("decode %s state: %w", inst.WidgetID, err)
		}
		return state, nil
	}
	state := init()
	if err := Save(ctx, inst, state); err != nil {
		return zero, err
	}
	return state, nil
}

// Lookup returns the stored state for inst and whether it exists.
func Lookup[T any](ctx context.Context, inst Instance) (T, bool, error) {
	var zero T
	if inst.Store == nil {
		return zero, false, ErrNoStore
	}
	data, ok, err := inst.Store.GetState(ctx, inst.Key())
	if err != nil || !ok {
		return zero, false, err
	}
	var state T
	if err := json.Unmarshal(data, &state); err != nil {
		return zero, false, fmt.Errorf("decode %s state: %w", inst.WidgetID, err)
	}
	return state, true, nil
}
