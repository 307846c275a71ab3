package github

import (
	"context"
	"encoding/csv"
	"log/slog"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/reclaimer/pkg/domain/interfaces"
	"github.com/secmon-lab/reclaimer/pkg/domain/model"
	"github.com/secmon-lab/reclaimer/pkg/domain/types"
)

// CSVHeader is the required first line of a reclaim CSV
const CSVHeader = "mannequin-user,mannequin-id,target-user"

// ReclaimService reclaims mannequins through the GitHub GraphQL API
type ReclaimService struct {
	client *Client
}

var _ interfaces.ReclaimService = (*ReclaimService)(nil)

// NewReclaimService creates a new ReclaimService
func NewReclaimService(client *Client) *ReclaimService {
	return &ReclaimService{client: client}
}

// ReclaimOne sends an attribution invitation to targetUser for every
// mannequin matching mannequinUser (and mannequinID when given)
func (s *ReclaimService) ReclaimOne(ctx context.Context, mannequinUser types.UserLogin, mannequinID *types.NodeID, targetUser types.UserLogin, org types.OrgLogin, force bool) error {
	logger := ctxlog.From(ctx)

	orgID, err := s.client.GetOrganizationID(ctx, org)
	if err != nil {
		return goerr.Wrap(err, "failed to get organization", goerr.V("org", org))
	}

	mannequins, err := s.client.GetMannequins(ctx, orgID)
	if err != nil {
		return goerr.Wrap(err, "failed to list mannequins", goerr.V("org", org))
	}

	matches := findMannequins(mannequins, mannequinUser, mannequinID)
	if len(matches) == 0 {
		return goerr.New("User "+mannequinUser.String()+" is not a mannequin.",
			goerr.V("mannequin_user", mannequinUser))
	}

	if !force {
		for _, m := range matches {
			if m.IsClaimed() {
				return goerr.New("User "+mannequinUser.String()+" is already mapped to a user. Use the force option if you want to reclaim the mannequin again.",
					goerr.V("mannequin_user", mannequinUser),
					goerr.V("claimant", m.Claimant.Login))
			}
		}
	}

	targetID, err := s.client.GetUserID(ctx, targetUser)
	if err != nil {
		return goerr.Wrap(err, "failed to look up target user", goerr.V("target_user", targetUser))
	}
	if targetID == "" {
		return goerr.New("Target user "+targetUser.String()+" not found.",
			goerr.V("target_user", targetUser))
	}

	var result model.ReclaimResult
	for _, m := range matches {
		res, err := s.client.CreateAttributionInvitation(ctx, orgID, m.ID, targetID)
		if err != nil {
			return err
		}
		result.Add(s.handleResult(ctx, 0, m, targetUser, targetID, res))
	}

	logger.Info("Reclaim completed", slog.Any("result", result))
	if result.HasFailure() {
		return goerr.New("Failed to reclaim mannequin.", goerr.V("mannequin_user", mannequinUser))
	}
	return nil
}

// ReclaimBatch reclaims every mapping of a CSV given as raw lines. Entries
// that cannot be reclaimed are logged and skipped; only errors talking to
// GitHub abort the batch.
func (s *ReclaimService) ReclaimBatch(ctx context.Context, lines []string, org types.OrgLogin, force, skipInvitation bool) error {
	logger := ctxlog.From(ctx)

	if len(lines) == 0 {
		return goerr.New("reclaim CSV is empty")
	}
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(lines[0])), CSVHeader) {
		return goerr.New("Invalid Header. Should be: "+CSVHeader, goerr.V("header", lines[0]))
	}

	orgID, err := s.client.GetOrganizationID(ctx, org)
	if err != nil {
		return goerr.Wrap(err, "failed to get organization", goerr.V("org", org))
	}

	mannequins, err := s.client.GetMannequins(ctx, orgID)
	if err != nil {
		return goerr.Wrap(err, "failed to list mannequins", goerr.V("org", org))
	}

	targets := map[types.UserLogin]types.NodeID{}
	var result model.ReclaimResult

	for i, line := range lines[1:] {
		lineNo := i + 2
		if strings.TrimSpace(line) == "" {
			continue
		}

		entry, err := ParseBatchEntry(lineNo, line)
		if err != nil {
			logger.Warn("Invalid line: \""+line+"\". Will be ignored.", slog.Int("line", lineNo))
			result.Add(model.ReclaimDetail{Line: lineNo, Status: model.ReclaimStatusSkipped, Reason: "invalid line"})
			continue
		}

		detail := model.ReclaimDetail{
			Line:          lineNo,
			MannequinUser: entry.MannequinUser.String(),
			TargetUser:    entry.TargetUser.String(),
		}

		matches := findMannequins(mannequins, entry.MannequinUser, entry.MannequinID)
		if len(matches) == 0 {
			logger.Error(entry.MannequinUser.String()+" is not a mannequin. Will be ignored.", slog.Int("line", lineNo))
			detail.Status = model.ReclaimStatusFailed
			detail.Reason = "not a mannequin"
			result.Add(detail)
			continue
		}

		if !force && anyClaimed(matches) {
			logger.Warn(entry.MannequinUser.String()+" is already claimed. Skipping (use force if you want to reclaim)", slog.Int("line", lineNo))
			detail.Status = model.ReclaimStatusSkipped
			detail.Reason = "already claimed"
			result.Add(detail)
			continue
		}

		targetID, ok := targets[entry.TargetUser]
		if !ok {
			targetID, err = s.client.GetUserID(ctx, entry.TargetUser)
			if err != nil {
				return goerr.Wrap(err, "failed to look up target user", goerr.V("target_user", entry.TargetUser))
			}
			targets[entry.TargetUser] = targetID
		}
		if targetID == "" {
			logger.Error("Claimant \""+entry.TargetUser.String()+"\" not found. Will ignore it.", slog.Int("line", lineNo))
			detail.Status = model.ReclaimStatusFailed
			detail.Reason = "target user not found"
			result.Add(detail)
			continue
		}

		for _, m := range matches {
			var res *AttributionResult
			if skipInvitation {
				res, err = s.client.ReattributeMannequinToUser(ctx, orgID, m.ID, targetID)
			} else {
				res, err = s.client.CreateAttributionInvitation(ctx, orgID, m.ID, targetID)
			}
			if err != nil {
				return err
			}
			result.Add(s.handleResult(ctx, lineNo, m, entry.TargetUser, targetID, res))
		}
	}

	logger.Info("Reclaim completed", slog.Any("result", result))
	return nil
}

func (s *ReclaimService) handleResult(ctx context.Context, lineNo int, m model.Mannequin, targetUser types.UserLogin, targetID types.NodeID, res *AttributionResult) model.ReclaimDetail {
	logger := ctxlog.From(ctx)

	detail := model.ReclaimDetail{
		Line:          lineNo,
		MannequinUser: m.Login.String(),
		MannequinID:   m.ID.String(),
		TargetUser:    targetUser.String(),
		Status:        model.ReclaimStatusSuccess,
	}
	failure := "Failed to reclaim " + m.Login.String() + " (" + m.ID.String() + ") to " + targetUser.String() + " (" + targetID.String() + ")"

	switch {
	case len(res.Errors) > 0:
		logger.Error(failure + " Reason: " + res.Errors[0].Message)
		detail.Status = model.ReclaimStatusFailed
		detail.Reason = res.Errors[0].Message

	case !strings.EqualFold(res.SourceLogin.String(), m.Login.String()) || !strings.EqualFold(res.TargetLogin.String(), targetUser.String()):
		logger.Error(failure)
		detail.Status = model.ReclaimStatusFailed
		detail.Reason = "unexpected mutation result"

	default:
		logger.Info("Successfully reclaimed " + m.Login.String() + " (" + m.ID.String() + ") to " + targetUser.String() + " (" + targetID.String() + ")")
	}

	return detail
}

// ParseBatchEntry parses one CSV mapping line: mannequin-user,mannequin-id,target-user
func ParseBatchEntry(lineNo int, line string) (*model.BatchEntry, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	fields, err := r.Read()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse CSV line", goerr.V("line", lineNo))
	}
	if len(fields) < 3 {
		return nil, goerr.New("CSV line has too few fields", goerr.V("line", lineNo), goerr.V("fields", len(fields)))
	}

	entry := &model.BatchEntry{
		Line:          lineNo,
		MannequinUser: types.UserLogin(strings.TrimSpace(fields[0])),
		TargetUser:    types.UserLogin(strings.TrimSpace(fields[2])),
	}
	if id := strings.TrimSpace(fields[1]); id != "" {
		nodeID := types.NodeID(id)
		entry.MannequinID = &nodeID
	}

	if entry.MannequinUser == "" || entry.TargetUser == "" {
		return nil, goerr.New("mannequin user and target user are required", goerr.V("line", lineNo))
	}
	return entry, nil
}

func findMannequins(mannequins []model.Mannequin, login types.UserLogin, id *types.NodeID) []model.Mannequin {
	var matches []model.Mannequin
	for _, m := range mannequins {
		if !strings.EqualFold(m.Login.String(), login.String()) {
			continue
		}
		if id != nil && m.ID != *id {
			continue
		}
		matches = append(matches, m)
	}
	return matches
}

func anyClaimed(mannequins []model.Mannequin) bool {
	for _, m := range mannequins {
		if m.IsClaimed() {
			return true
		}
	}
	return false
}
