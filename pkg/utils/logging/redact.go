package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/secmon-lab/reclaimer/pkg/domain/types"
)

// Secrets is an append-only set of values that must never appear in logs.
// It is safe for concurrent use.
type Secrets struct {
	mu     sync.RWMutex
	values []string
}

// NewSecrets creates an empty secret set
func NewSecrets() *Secrets {
	return &Secrets{}
}

// Register adds a secret. Empty and duplicate values are ignored.
func (s *Secrets) Register(secret string) {
	if secret == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.values {
		if v == secret {
			return
		}
	}
	s.values = append(s.values, secret)
}

// Len returns the number of registered secrets
func (s *Secrets) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}

// Redact replaces every registered secret in v with the masked placeholder
func (s *Secrets) Redact(v string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, secret := range s.values {
		v = strings.ReplaceAll(v, secret, types.MaskedValue)
	}
	return v
}

// RedactHandler masks registered secrets in the message and attributes of
// every record before passing it to the next handler.
type RedactHandler struct {
	next    slog.Handler
	level   slog.Leveler
	secrets *Secrets
}

// NewRedactHandler wraps next. Records below level are dropped.
func NewRedactHandler(next slog.Handler, level slog.Leveler, secrets *Secrets) *RedactHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &RedactHandler{
		next:    next,
		level:   level,
		secrets: secrets,
	}
}

// Enabled implements slog.Handler
func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level() && h.next.Enabled(ctx, level)
}

// Handle implements slog.Handler
func (h *RedactHandler) Handle(ctx context.Context, r slog.Record) error {
	nr := slog.NewRecord(r.Time, r.Level, h.secrets.Redact(r.Message), r.PC)
	r.Attrs(func(a slog.Attr) bool {
		nr.AddAttrs(h.redactAttr(a))
		return true
	})
	return h.next.Handle(ctx, nr)
}

// WithAttrs implements slog.Handler. Bound attributes are redacted with the
// secrets known at the time of the call.
func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		redacted = append(redacted, h.redactAttr(a))
	}
	return &RedactHandler{
		next:    h.next.WithAttrs(redacted),
		level:   h.level,
		secrets: h.secrets,
	}
}

// WithGroup implements slog.Handler
func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{
		next:    h.next.WithGroup(name),
		level:   h.level,
		secrets: h.secrets,
	}
}

func (h *RedactHandler) redactAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	switch a.Value.Kind() {
	case slog.KindString:
		return slog.String(a.Key, h.secrets.Redact(a.Value.String()))

	case slog.KindGroup:
		group := a.Value.Group()
		redacted := make([]slog.Attr, 0, len(group))
		for _, ga := range group {
			redacted = append(redacted, h.redactAttr(ga))
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(redacted...)}

	case slog.KindAny:
		// Keep the original value (e.g. a goerr error for clog.GoerrHook)
		// unless its text form leaks a secret.
		var text string
		if err, ok := a.Value.Any().(error); ok {
			text = err.Error()
		} else {
			text = fmt.Sprintf("%+v", a.Value.Any())
		}
		if masked := h.secrets.Redact(text); masked != text {
			return slog.String(a.Key, masked)
		}
		return a

	default:
		return a
	}
}
