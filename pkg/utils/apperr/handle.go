package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/reclaimer/pkg/domain/model"
)

// Handle reports the error that ended the command
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)

	switch {
	case goerr.HasTag(err, model.ErrTagDeclined):
		logger.Warn("reclaim cancelled, nothing was changed", "error", err)
	case goerr.HasTag(err, model.ErrTagInvalidArguments), goerr.HasTag(err, model.ErrTagSourceNotFound):
		logger.Error("invalid input, nothing was changed", "error", err)
	default:
		logger.Error("application error", "error", err)
	}
}
