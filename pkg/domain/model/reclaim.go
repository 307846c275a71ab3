package model

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/reclaimer/pkg/domain/types"
)

// ReclaimMode is how a reclaim request is carried out
type ReclaimMode int

const (
	ReclaimModeNone ReclaimMode = iota
	ReclaimModeSingle
	ReclaimModeBatch
)

// String returns the string representation
func (m ReclaimMode) String() string {
	switch m {
	case ReclaimModeSingle:
		return "single"
	case ReclaimModeBatch:
		return "batch"
	default:
		return "none"
	}
}

// ReclaimRequest is the input of one reclaim-mannequin invocation
type ReclaimRequest struct {
	Organization   types.OrgLogin
	CSVPath        string
	MannequinUser  types.UserLogin
	MannequinID    *types.NodeID
	TargetUser     types.UserLogin
	Force          bool
	SkipInvitation bool
	GitHubPAT      types.Secret
}

// Mode returns the reclaim mode selected by the request. A CSV path takes
// precedence over the single-mode fields.
func (r *ReclaimRequest) Mode() ReclaimMode {
	if r.CSVPath != "" {
		return ReclaimModeBatch
	}
	if r.MannequinUser != "" && r.TargetUser != "" {
		return ReclaimModeSingle
	}
	return ReclaimModeNone
}

// HasSingleModeFields reports whether any single-mode field was supplied
func (r *ReclaimRequest) HasSingleModeFields() bool {
	return r.MannequinUser != "" || r.TargetUser != "" || r.MannequinID != nil
}

// Validate checks the request before any I/O happens
func (r *ReclaimRequest) Validate() error {
	if r.Organization == "" {
		return goerr.New("--github-org must be specified",
			goerr.T(ErrTagInvalidArguments))
	}

	mode := r.Mode()
	if mode == ReclaimModeNone {
		return goerr.New("either --csv or --mannequin-user and --target-user must be specified",
			goerr.T(ErrTagInvalidArguments),
			goerr.V("mannequin_user", r.MannequinUser),
			goerr.V("target_user", r.TargetUser))
	}

	if r.SkipInvitation && mode != ReclaimModeBatch {
		return goerr.New("--csv must be specified to skip reclaim invitation email",
			goerr.T(ErrTagInvalidArguments))
	}

	return nil
}

// LogValue returns structured log value
func (r ReclaimRequest) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("organization", r.Organization.String()),
		slog.String("mode", r.Mode().String()),
		slog.Bool("force", r.Force),
		slog.Bool("skip_invitation", r.SkipInvitation),
		slog.Bool("has_pat", !r.GitHubPAT.IsEmpty()),
	}
	if r.CSVPath != "" {
		attrs = append(attrs, slog.String("csv", r.CSVPath))
	}
	if r.MannequinUser != "" {
		attrs = append(attrs, slog.String("mannequin_user", r.MannequinUser.String()))
	}
	if r.TargetUser != "" {
		attrs = append(attrs, slog.String("target_user", r.TargetUser.String()))
	}
	return slog.GroupValue(attrs...)
}

// Mannequin is a placeholder account created by a migration
type Mannequin struct {
	ID    types.NodeID
	Login types.UserLogin
	// Claimant is set once the mannequin has been reclaimed into a real user
	Claimant *Claimant
}

// IsClaimed reports whether the mannequin is already mapped to a user
func (m *Mannequin) IsClaimed() bool {
	return m.Claimant != nil
}

// Claimant is the user a mannequin was reclaimed into
type Claimant struct {
	ID    types.NodeID
	Login types.UserLogin
}

// BatchEntry is one mapping line of a reclaim CSV
type BatchEntry struct {
	Line          int
	MannequinUser types.UserLogin
	MannequinID   *types.NodeID
	TargetUser    types.UserLogin
}
