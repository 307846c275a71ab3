package interfaces

//go:generate moq -out mocks/reclaim_mock.go -pkg mocks . ReclaimService Confirmer FileSource SecretRegistry

import (
	"context"

	"github.com/secmon-lab/reclaimer/pkg/domain/types"
)

// ReclaimService performs the actual mannequin reassignment on GitHub
type ReclaimService interface {
	// ReclaimOne reclaims a single mannequin into targetUser. mannequinID is
	// optional and narrows the match when several mannequins share a login.
	ReclaimOne(ctx context.Context, mannequinUser types.UserLogin, mannequinID *types.NodeID, targetUser types.UserLogin, org types.OrgLogin, force bool) error

	// ReclaimBatch reclaims every mapping of a CSV source, given as raw lines
	ReclaimBatch(ctx context.Context, lines []string, org types.OrgLogin, force, skipInvitation bool) error
}

// Confirmer asks the operator a yes/no question and blocks until answered
type Confirmer interface {
	Confirm(ctx context.Context, message string) (bool, error)
}

// FileSource gives access to the batch mapping source
type FileSource interface {
	Exists(path string) bool
	ReadLines(path string) ([]string, error)
}

// SecretRegistry collects values that must never be written to logs
type SecretRegistry interface {
	Register(secret string)
}
