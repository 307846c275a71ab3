package apperr_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/reclaimer/pkg/domain/model"
	"github.com/secmon-lab/reclaimer/pkg/utils/apperr"
)

func TestHandle(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		level   string
		message string
	}{
		{"declined", goerr.New("cancelled", goerr.T(model.ErrTagDeclined)), "WARN", "reclaim cancelled"},
		{"invalid arguments", goerr.New("bad flags", goerr.T(model.ErrTagInvalidArguments)), "ERROR", "invalid input"},
		{"source not found", goerr.New("no file", goerr.T(model.ErrTagSourceNotFound)), "ERROR", "invalid input"},
		{"remote failure", errors.New("remote exploded"), "ERROR", "application error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

			apperr.Handle(ctx, tt.err)

			out := buf.String()
			gt.True(t, strings.Contains(out, `"level":"`+tt.level+`"`))
			gt.True(t, strings.Contains(out, tt.message))
		})
	}
}
