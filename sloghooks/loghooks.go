// Package sloghooks reports bintext.Hooks events through log/slog, with
// sampling for the noisy ones and key redaction.
package sloghooks

import (
	"crypto/sha256"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/bintext"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	RejectEvery   uint64
	SelfHealEvery uint64
	// Optional key redactor. Defaults to the first 16 bytes of SHA-256 as hex.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	rejectCtr   atomic.Uint64
	selfHealCtr atomic.Uint64
}

var _ bintext.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return bintext.EncodeUUID([16]byte(sum[:16]), false)
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) DecodeRejected(op string, err error) {
	if h.l == nil || !sample(h.opts.RejectEvery, &h.rejectCtr) {
		return
	}
	h.l.Debug("bintext.decode_rejected",
		"op", op,
		"err", err)
}

func (h *Hooks) EncodeTruncated(op string, dropped int) {
	if h.l == nil {
		return
	}
	h.l.Warn("bintext.encode_truncated",
		"op", op,
		"dropped", dropped)
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("bintext.self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) ProviderSetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("bintext.provider_set_rejected",
		"key", h.redact(storageKey))
}
