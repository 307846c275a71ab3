package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/reclaimer/pkg/cli/config"
	"github.com/secmon-lab/reclaimer/pkg/domain/model"
	"github.com/secmon-lab/reclaimer/pkg/domain/types"
	"github.com/secmon-lab/reclaimer/pkg/service/filesource"
	"github.com/secmon-lab/reclaimer/pkg/service/github"
	"github.com/secmon-lab/reclaimer/pkg/service/prompt"
	"github.com/secmon-lab/reclaimer/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// reclaimArgs holds the flags of reclaim-mannequin
type reclaimArgs struct {
	GitHubOrg      string
	CSV            string
	MannequinUser  string
	MannequinID    string
	TargetUser     string
	Force          bool
	SkipInvitation bool
	Verbose        bool
}

func (a *reclaimArgs) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-org",
			Usage:       "Target organization that owns the mannequins",
			Required:    true,
			Destination: &a.GitHubOrg,
		},
		&cli.StringFlag{
			Name:        "csv",
			Usage:       "CSV of mannequin-user,mannequin-id,target-user mappings; reclaims every line",
			Destination: &a.CSV,
		},
		&cli.StringFlag{
			Name:        "mannequin-user",
			Usage:       "Login of the mannequin to reclaim",
			Destination: &a.MannequinUser,
		},
		&cli.StringFlag{
			Name:        "mannequin-id",
			Usage:       "ID of the mannequin, when several mannequins share a login",
			Destination: &a.MannequinID,
		},
		&cli.StringFlag{
			Name:        "target-user",
			Usage:       "Login of the user to reclaim the mannequin into",
			Destination: &a.TargetUser,
		},
		&cli.BoolFlag{
			Name:        "force",
			Usage:       "Reclaim mannequins that are already mapped to a user",
			Destination: &a.Force,
		},
		&cli.BoolFlag{
			Name:        "skip-invitation",
			Usage:       "Reattribute immediately without an invitation (requires --csv, irreversible)",
			Destination: &a.SkipInvitation,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "Enable debug logging",
			Destination: &a.Verbose,
		},
	}
}

func (a *reclaimArgs) request(pat types.Secret) *model.ReclaimRequest {
	req := &model.ReclaimRequest{
		Organization:   types.OrgLogin(a.GitHubOrg),
		CSVPath:        a.CSV,
		MannequinUser:  types.UserLogin(a.MannequinUser),
		TargetUser:     types.UserLogin(a.TargetUser),
		Force:          a.Force,
		SkipInvitation: a.SkipInvitation,
		GitHubPAT:      pat,
	}
	if a.MannequinID != "" {
		id := types.NodeID(a.MannequinID)
		req.MannequinID = &id
	}
	return req
}

func cmdReclaimMannequin(rt *runtime) *cli.Command {
	var (
		args      reclaimArgs
		githubCfg config.GitHub
	)

	return &cli.Command{
		Name:  "reclaim-mannequin",
		Usage: "Reclaim one mannequin, or every mannequin listed in a CSV",
		Flags: joinFlags(
			args.Flags(),
			githubCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			// Register before anything can be logged
			rt.secrets.Register(githubCfg.PAT)
			if args.Verbose {
				rt.loggerCfg.SetVerbose()
			}

			ctxlog.From(ctx).Debug("Starting reclaim-mannequin",
				slog.Any("github", githubCfg),
				slog.Any("logger", rt.loggerCfg),
			)

			client, err := githubCfg.Configure()
			if err != nil {
				return err
			}

			uc := usecase.NewReclaimMannequin(
				github.NewReclaimService(client),
				prompt.New(rt.stdin, rt.promptOut),
				filesource.New(),
				rt.secrets,
			)
			return uc.Execute(ctx, args.request(githubCfg.Secret()))
		},
	}
}
