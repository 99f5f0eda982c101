// Package store keeps values under 16-byte identifiers in a provider.
//
// Keys:
//
//	payload:<ns>:<32 lowercase hex>
//
// Callers may address entries with either textual ID form; both map to the
// same key. Stored bytes are a bintext envelope around the codec output and
// are validated on read: corrupt or undecodable entries are deleted and
// reported as misses.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/unkn0wn-root/bintext"
	c "github.com/unkn0wn-root/bintext/codec"
	"github.com/unkn0wn-root/bintext/ident"
	"github.com/unkn0wn-root/bintext/internal/wire"
	pr "github.com/unkn0wn-root/bintext/provider"
)

const defaultTTL = 10 * time.Minute

type SetCostFunc func(key string, raw []byte) int64

// Store is the identifier-keyed payload API.
type Store[V any] interface {
	Enabled() bool
	Close(context.Context) error

	// Put stores v under a fresh random ID.
	Put(ctx context.Context, v V, ttl time.Duration) (ident.ID, error)
	Set(ctx context.Context, id ident.ID, v V, ttl time.Duration) error

	// Get and Del accept the dashed or plain hex form of an ID. A malformed
	// id is returned as a bintext error (ErrLength / ErrFormat).
	Get(ctx context.Context, id string) (v V, ok bool, err error)
	Del(ctx context.Context, id string) error
}

// Options tune a Store. Namespace, Provider and Codec are required.
type Options[V any] struct {
	Namespace string // e.g. "session", "upload"
	Provider  pr.Provider
	Codec     c.Codec[V]

	Logger         bintext.Logger // if nil, NopLogger is used
	Hooks          bintext.Hooks  // if nil, NopHooks is used
	DefaultTTL     time.Duration  // 0 => 10m
	ComputeSetCost SetCostFunc    // default 1
	Disabled       bool           // default false (enabled)
}

func New[V any](opts Options[V]) (Store[V], error) {
	return newStore[V](opts)
}

type store[V any] struct {
	ns             string
	provider       pr.Provider
	codec          c.Codec[V]
	log            bintext.Logger
	hooks          bintext.Hooks
	enabled        bool
	defaultTTL     time.Duration
	computeSetCost SetCostFunc
}

func newStore[V any](opts Options[V]) (*store[V], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("store: provider is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("store: codec is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("store: namespace is required")
	}

	s := &store[V]{
		ns:       opts.Namespace,
		provider: opts.Provider,
		codec:    opts.Codec,
		enabled:  !opts.Disabled,
	}

	s.log = opts.Logger
	if s.log == nil {
		s.log = bintext.NopLogger{}
	}
	s.hooks = opts.Hooks
	if s.hooks == nil {
		s.hooks = bintext.NopHooks{}
	}
	s.defaultTTL = opts.DefaultTTL
	if s.defaultTTL == 0 {
		s.defaultTTL = defaultTTL
	}
	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = func(string, []byte) int64 { return 1 }
	}
	return s, nil
}

func (s *store[V]) Enabled() bool { return s.enabled }

func (s *store[V]) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

func (s *store[V]) Put(ctx context.Context, v V, ttl time.Duration) (ident.ID, error) {
	id := ident.New()
	if err := s.Set(ctx, id, v, ttl); err != nil {
		return ident.Nil, err
	}
	return id, nil
}

func (s *store[V]) Set(ctx context.Context, id ident.ID, v V, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	payload, err := s.codec.Encode(v)
	if err != nil {
		return err
	}
	k := s.key(id)
	raw := wire.EncodeSingle(payload)
	ok, err := s.provider.Set(ctx, k, raw, s.computeSetCost(k, raw), ttl)
	if err != nil {
		return err
	}
	if !ok {
		s.log.Debug("Set rejected by provider (pressure)", bintext.Fields{"key": k})
		s.hooks.ProviderSetRejected(k)
	}
	return nil
}

func (s *store[V]) Get(ctx context.Context, idText string) (V, bool, error) {
	var zero V
	id, err := ident.Parse(idText)
	if err != nil {
		return zero, false, err
	}
	if !s.enabled {
		return zero, false, nil
	}
	k := s.key(id)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil || !ok {
		return zero, false, err
	}
	payload, err := wire.DecodeSingle(raw)
	if err != nil {
		s.selfHeal(ctx, k, "corrupt")
		return zero, false, nil
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		s.selfHeal(ctx, k, "value_decode")
		return zero, false, nil
	}
	return v, true, nil
}

func (s *store[V]) Del(ctx context.Context, idText string) error {
	id, err := ident.Parse(idText)
	if err != nil {
		return err
	}
	if !s.enabled {
		return nil
	}
	return s.provider.Del(ctx, s.key(id))
}

func (s *store[V]) selfHeal(ctx context.Context, k, reason string) {
	_ = s.provider.Del(ctx, k)
	s.log.Debug("self-healed entry", bintext.Fields{"key": k, "reason": reason})
	s.hooks.SelfHeal(k, reason)
}

func (s *store[V]) key(id ident.ID) string {
	// isolate by namespace
	return "payload:" + s.ns + ":" + id.Hex()
}
