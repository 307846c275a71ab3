package types

import (
	"log/slog"

	"github.com/google/uuid"
)

// OrgLogin is the login of a GitHub organization
type OrgLogin string

// String returns the string representation
func (o OrgLogin) String() string {
	return string(o)
}

// UserLogin is the login of a GitHub user or mannequin
type UserLogin string

// String returns the string representation
func (u UserLogin) String() string {
	return string(u)
}

// NodeID is a GraphQL global node identifier
type NodeID string

// String returns the string representation
func (id NodeID) String() string {
	return string(id)
}

// RunID identifies a single CLI invocation in log output
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID using UUID v7, falling back to v4
func NewRunID() RunID {
	id, err := uuid.NewV7()
	if err != nil {
		return RunID(uuid.New().String())
	}
	return RunID(id.String())
}

// MaskedValue is printed in place of any secret
const MaskedValue = "***"

// Secret holds a credential. It never prints its value.
type Secret string

// String returns the masked placeholder, or "" when the secret is empty
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return MaskedValue
}

// LogValue implements slog.LogValuer
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(s.String())
}

// Reveal returns the raw credential
func (s Secret) Reveal() string {
	return string(s)
}

// IsEmpty reports whether no credential was supplied
func (s Secret) IsEmpty() bool {
	return s == ""
}
