// Package genpass produces random passwords, preferring the backend's
// generator and falling back to a local cryptographically secure one.
package genpass

import (
	"context"
	"fmt"
	"strings"
)

// Alphabet is the fixed 90-symbol pool local generation draws from:
// 26 upper, 26 lower, 10 digits, 28 symbols.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!@#$%^&*()-_=+[]{}|:;,.<>/?~"

// Backend length bounds, mirrored from the generate endpoint.
const (
	MinLength = 8
	MaxLength = 64
)

// RemoteGenerator is the backend's generate endpoint. *backend.Client
// satisfies it.
type RemoteGenerator interface {
	Generate(ctx context.Context, length int) (string, error)
}

// Generator produces passwords. The remote path is preferred and trusted
// verbatim; any remote failure degrades silently to the local path.
type Generator struct {
	remote RemoteGenerator
	source SecureRandomSource
}

// New returns a Generator backed by crypto/rand for its local path. remote
// may be nil, in which case only the local path is used.
func New(remote RemoteGenerator) *Generator {
	return &Generator{remote: remote, source: cryptoSource{}}
}

// NewWithSource allows injecting a deterministic source in tests.
func NewWithSource(remote RemoteGenerator, source SecureRandomSource) *Generator {
	return &Generator{remote: remote, source: source}
}

// ClampLength bounds a requested length to what the backend accepts, so the
// local fallback and the remote generator agree.
func ClampLength(n int) int {
	if n < MinLength {
		return MinLength
	}
	if n > MaxLength {
		return MaxLength
	}
	return n
}

// Generate returns a password of exactly length characters. The only error
// it can return is a secure-source failure, which is fatal by contract.
func (g *Generator) Generate(ctx context.Context, length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("generate: length must be positive, got %d", length)
	}
	if g.remote != nil {
		if pwd, err := g.remote.Generate(ctx, length); err == nil {
			return pwd, nil
		}
		// remote unreachable or erroring: local fallback, never user-visible
	}
	return g.local(length)
}

// GenerateBatch returns count independent passwords for the alternatives
// panel.
func (g *Generator) GenerateBatch(ctx context.Context, length, count int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("generate batch: count must be positive, got %d", count)
	}
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pwd, err := g.Generate(ctx, length)
		if err != nil {
			return nil, err
		}
		out = append(out, pwd)
	}
	return out, nil
}

func (g *Generator) local(length int) (string, error) {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		idx, err := uint32n(g.source, uint32(len(Alphabet)))
		if err != nil {
			return "", err
		}
		b.WriteByte(Alphabet[idx])
	}
	return b.String(), nil
}
