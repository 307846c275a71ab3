package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/reclaimer/pkg/domain/interfaces"
	"github.com/secmon-lab/reclaimer/pkg/domain/model"
	"github.com/secmon-lab/reclaimer/pkg/domain/types"
)

// SkipInvitationWarning is shown before reclaiming without invitations
const SkipInvitationWarning = "Reclaiming mannequins with the --skip-invitation option is immediate and irreversible. Are you sure you wish to continue? (y/n)"

// ReclaimMannequin decides how a reclaim is carried out and enforces the
// safety checks that must pass before anything changes on GitHub.
type ReclaimMannequin struct {
	reclaimSvc interfaces.ReclaimService
	confirmer  interfaces.Confirmer
	files      interfaces.FileSource
	secrets    interfaces.SecretRegistry
}

// NewReclaimMannequin creates a new ReclaimMannequin use case
func NewReclaimMannequin(
	reclaimSvc interfaces.ReclaimService,
	confirmer interfaces.Confirmer,
	files interfaces.FileSource,
	secrets interfaces.SecretRegistry,
) *ReclaimMannequin {
	return &ReclaimMannequin{
		reclaimSvc: reclaimSvc,
		confirmer:  confirmer,
		files:      files,
		secrets:    secrets,
	}
}

// Execute validates req and dispatches it to the single or batch path.
// Errors returned by the ReclaimService are passed through unchanged.
func (u *ReclaimMannequin) Execute(ctx context.Context, req *model.ReclaimRequest) error {
	if req == nil {
		return goerr.New("reclaim request is required", goerr.T(model.ErrTagInvalidArguments))
	}

	// Must happen before the first log line of this invocation
	if !req.GitHubPAT.IsEmpty() {
		u.secrets.Register(req.GitHubPAT.Reveal())
	}

	if err := req.Validate(); err != nil {
		return err
	}

	switch req.Mode() {
	case model.ReclaimModeBatch:
		return u.reclaimBatch(ctx, req)
	default:
		return u.reclaimOne(ctx, req)
	}
}

func (u *ReclaimMannequin) reclaimBatch(ctx context.Context, req *model.ReclaimRequest) error {
	logger := ctxlog.From(ctx)

	logger.Info("Reclaiming Mannequins with CSV...")
	logger.Info("GITHUB ORG: " + req.Organization.String())
	logger.Info("FILE: " + req.CSVPath)
	if req.Force {
		logger.Info("MAPPING RECLAIMED")
	}
	if req.HasSingleModeFields() {
		logger.Warn("--mannequin-user, --mannequin-id and --target-user are ignored when --csv is specified")
	}

	if !u.files.Exists(req.CSVPath) {
		return goerr.New("File "+req.CSVPath+" does not exist.",
			goerr.T(model.ErrTagSourceNotFound),
			goerr.V("path", req.CSVPath))
	}

	if req.SkipInvitation {
		ok, err := u.confirmer.Confirm(ctx, SkipInvitationWarning)
		if err != nil {
			return goerr.Wrap(err, "failed to get confirmation", goerr.T(model.ErrTagDeclined))
		}
		if !ok {
			return goerr.New("reclaim cancelled by operator", goerr.T(model.ErrTagDeclined))
		}
	}

	lines, err := u.files.ReadLines(req.CSVPath)
	if err != nil {
		return goerr.Wrap(err, "failed to read reclaim CSV", goerr.V("path", req.CSVPath))
	}
	logger.Debug("Read reclaim CSV", slog.Int("lines", len(lines)))

	return u.reclaimSvc.ReclaimBatch(ctx, lines, req.Organization, req.Force, req.SkipInvitation)
}

func (u *ReclaimMannequin) reclaimOne(ctx context.Context, req *model.ReclaimRequest) error {
	logger := ctxlog.From(ctx)

	logger.Info("Reclaiming Mannequin...")
	logger.Info("GITHUB ORG: " + req.Organization.String())
	logger.Info("MANNEQUIN: " + req.MannequinUser.String())
	if req.MannequinID != nil {
		logger.Info("MANNEQUIN ID: " + req.MannequinID.String())
	}
	logger.Info("RECLAIMING USER: " + req.TargetUser.String())
	if !req.GitHubPAT.IsEmpty() {
		logger.Info("GITHUB PAT: " + types.MaskedValue)
	}

	return u.reclaimSvc.ReclaimOne(ctx, req.MannequinUser, req.MannequinID, req.TargetUser, req.Organization, req.Force)
}
