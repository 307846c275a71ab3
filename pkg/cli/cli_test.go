package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/reclaimer/pkg/cli"
)

const testPAT = "ghp_clitestsecret"

// githubStub answers the GraphQL operations of a reclaim run for org "acme"
// with one mannequin "mona_ghost" and one user "monalisa"
type githubStub struct {
	mu         sync.Mutex
	operations []string
}

func (s *githubStub) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.operations...)
}

func (s *githubStub) mutations() []string {
	var muts []string
	for _, op := range s.calls() {
		if op == "CreateAttributionInvitation" || op == "ReattributeMannequinToUser" {
			muts = append(muts, op)
		}
	}
	return muts
}

func (s *githubStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+testPAT {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req struct {
		OperationName string `json:"operationName"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	s.operations = append(s.operations, req.OperationName)
	s.mu.Unlock()

	mutationResult := map[string]any{
		"source": map[string]any{"id": "M_1", "login": "mona_ghost"},
		"target": map[string]any{"id": "U_mona", "login": "monalisa"},
	}

	var data map[string]any
	switch req.OperationName {
	case "GetOrganizationID":
		data = map[string]any{"organization": map[string]any{"id": "O_acme", "login": "acme"}}
	case "GetMannequins":
		data = map[string]any{"node": map[string]any{"mannequins": map[string]any{
			"pageInfo": map[string]any{"endCursor": "", "hasNextPage": false},
			"nodes":    []any{map[string]any{"id": "M_1", "login": "mona_ghost", "claimant": nil}},
		}}}
	case "GetUserID":
		data = map[string]any{"user": map[string]any{"id": "U_mona", "login": "monalisa"}}
	case "CreateAttributionInvitation":
		data = map[string]any{"createAttributionInvitation": mutationResult}
	case "ReattributeMannequinToUser":
		data = map[string]any{"reattributeMannequinToUser": mutationResult}
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

type cliRun struct {
	stub   *githubStub
	apiURL string
	logs   bytes.Buffer
	prompt bytes.Buffer
}

func newCLIRun(t *testing.T) *cliRun {
	t.Helper()
	stub := &githubStub{}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	return &cliRun{stub: stub, apiURL: srv.URL}
}

func (r *cliRun) run(stdin string, args ...string) error {
	full := append([]string{"reclaimer", "--log-format", "json", "reclaim-mannequin",
		"--target-api-url", r.apiURL, "--github-pat", testPAT}, args...)
	return cli.Run(context.Background(), full,
		cli.WithStdin(strings.NewReader(stdin)),
		cli.WithLogWriter(&r.logs),
		cli.WithPromptWriter(&r.prompt),
	)
}

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.csv")
	gt.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600)).Required()
	return path
}

func TestRunSingleMode(t *testing.T) {
	r := newCLIRun(t)

	err := r.run("", "--github-org", "acme", "--mannequin-user", "mona_ghost", "--target-user", "monalisa")
	gt.NoError(t, err).Required()

	gt.Equal(t, []string{"CreateAttributionInvitation"}, r.stub.mutations())
	gt.Equal(t, "", r.prompt.String())

	logs := r.logs.String()
	gt.True(t, strings.Contains(logs, "GITHUB PAT: ***"))
	gt.True(t, strings.Contains(logs, `"run_id"`))
	gt.False(t, strings.Contains(logs, testPAT))
}

func TestRunVerboseNeverLeaksPAT(t *testing.T) {
	r := newCLIRun(t)

	err := r.run("", "--github-org", "acme", "--mannequin-user", "mona_ghost", "--target-user", "monalisa", "--verbose")
	gt.NoError(t, err).Required()

	logs := r.logs.String()
	gt.True(t, strings.Contains(logs, `"level":"DEBUG"`))
	gt.False(t, strings.Contains(logs, testPAT))
}

func TestRunBatchMode(t *testing.T) {
	t.Run("invites without asking", func(t *testing.T) {
		r := newCLIRun(t)
		csv := writeCSV(t, "mannequin-user,mannequin-id,target-user", "mona_ghost,M_1,monalisa")

		gt.NoError(t, r.run("", "--github-org", "acme", "--csv", csv)).Required()

		gt.Equal(t, []string{"CreateAttributionInvitation"}, r.stub.mutations())
		gt.Equal(t, "", r.prompt.String())
	})

	t.Run("skip invitation approved", func(t *testing.T) {
		r := newCLIRun(t)
		csv := writeCSV(t, "mannequin-user,mannequin-id,target-user", "mona_ghost,M_1,monalisa")

		gt.NoError(t, r.run("y\n", "--github-org", "acme", "--csv", csv, "--skip-invitation")).Required()

		gt.Equal(t, []string{"ReattributeMannequinToUser"}, r.stub.mutations())
		gt.S(t, r.prompt.String()).Contains("immediate and irreversible")
	})

	t.Run("skip invitation declined", func(t *testing.T) {
		r := newCLIRun(t)
		csv := writeCSV(t, "mannequin-user,mannequin-id,target-user", "mona_ghost,M_1,monalisa")

		err := r.run("n\n", "--github-org", "acme", "--csv", csv, "--skip-invitation")
		gt.Error(t, err)

		gt.Equal(t, 0, len(r.stub.calls()))
		gt.True(t, strings.Contains(r.logs.String(), "reclaim cancelled"))
	})

	t.Run("missing file", func(t *testing.T) {
		r := newCLIRun(t)
		missing := filepath.Join(t.TempDir(), "missing.csv")

		err := r.run("y\n", "--github-org", "acme", "--csv", missing, "--skip-invitation")
		gt.Error(t, err)

		gt.Equal(t, 0, len(r.stub.calls()))
		gt.Equal(t, "", r.prompt.String())
		gt.True(t, strings.Contains(r.logs.String(), "does not exist"))
	})
}

func TestRunInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no mode", []string{"--github-org", "acme"}},
		{"mannequin without target", []string{"--github-org", "acme", "--mannequin-user", "mona_ghost"}},
		{"skip invitation without csv", []string{"--github-org", "acme", "--mannequin-user", "mona_ghost", "--target-user", "monalisa", "--skip-invitation"}},
		{"missing org", []string{"--csv", "map.csv"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newCLIRun(t)

			gt.Error(t, r.run("y\n", tt.args...))
			gt.Equal(t, 0, len(r.stub.calls()))
			gt.Equal(t, "", r.prompt.String())
		})
	}
}

func TestRunInvalidLogFormat(t *testing.T) {
	err := cli.Run(context.Background(), []string{"reclaimer", "--log-format", "xml", "reclaim-mannequin", "--github-org", "acme"},
		cli.WithLogWriter(&bytes.Buffer{}))
	gt.Error(t, err)
}
