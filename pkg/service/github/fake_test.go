package github_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
)

type fakeMannequin struct {
	ID            string
	Login         string
	ClaimantID    string
	ClaimantLogin string
}

type fakeMutation struct {
	Operation string
	OrgID     string
	SourceID  string
	TargetID  string
}

// fakeGitHub serves the subset of the GitHub GraphQL API used by reclaimer
type fakeGitHub struct {
	t          *testing.T
	token      string
	orgs       map[string]string
	mannequins []fakeMannequin
	users      map[string]string
	pageSize   int
	// failures maps a mannequin ID to a GraphQL error message returned by mutations
	failures map[string]string
	// status overrides the HTTP status of every response when non-zero
	status int

	mu         sync.Mutex
	operations []string
	mutations  []fakeMutation
}

func newFakeGitHub(t *testing.T) *fakeGitHub {
	return &fakeGitHub{
		t:        t,
		token:    "ghp_test",
		orgs:     map[string]string{"acme": "O_acme"},
		users:    map[string]string{"monalisa": "U_mona", "hubot": "U_hubot"},
		pageSize: 100,
		failures: map[string]string{},
	}
}

func (f *fakeGitHub) start() *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	f.t.Cleanup(srv.Close)
	return srv
}

func (f *fakeGitHub) ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.operations...)
}

func (f *fakeGitHub) muts() []fakeMutation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fakeMutation(nil), f.mutations...)
}

func (f *fakeGitHub) serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/graphql" {
		http.NotFound(w, r)
		return
	}
	if r.Header.Get("Authorization") != "Bearer "+f.token {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
		return
	}
	if f.status != 0 {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
		return
	}

	var req struct {
		Query         string         `json:"query"`
		OperationName string         `json:"operationName"`
		Variables     map[string]any `json:"variables"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	f.operations = append(f.operations, req.OperationName)
	f.mu.Unlock()

	str := func(key string) string {
		v, _ := req.Variables[key].(string)
		return v
	}

	var resp any
	switch req.OperationName {
	case "GetOrganizationID":
		id, ok := f.orgs[str("login")]
		if !ok {
			resp = map[string]any{
				"data":   map[string]any{"organization": nil},
				"errors": []map[string]any{{"type": "NOT_FOUND", "message": "Could not resolve to an Organization with the login of '" + str("login") + "'."}},
			}
			break
		}
		resp = map[string]any{"data": map[string]any{"organization": map[string]any{"id": id, "login": str("login")}}}

	case "GetMannequins":
		start := 0
		if after := str("after"); after != "" {
			start, _ = strconv.Atoi(after)
		}
		end := start + f.pageSize
		if end > len(f.mannequins) {
			end = len(f.mannequins)
		}
		nodes := []map[string]any{}
		for _, m := range f.mannequins[start:end] {
			node := map[string]any{"id": m.ID, "login": m.Login, "claimant": nil}
			if m.ClaimantID != "" {
				node["claimant"] = map[string]any{"id": m.ClaimantID, "login": m.ClaimantLogin}
			}
			nodes = append(nodes, node)
		}
		resp = map[string]any{"data": map[string]any{"node": map[string]any{"mannequins": map[string]any{
			"pageInfo": map[string]any{"endCursor": strconv.Itoa(end), "hasNextPage": end < len(f.mannequins)},
			"nodes":    nodes,
		}}}}

	case "GetUserID":
		id, ok := f.users[str("login")]
		if !ok {
			resp = map[string]any{
				"data":   map[string]any{"user": nil},
				"errors": []map[string]any{{"type": "NOT_FOUND", "message": "Could not resolve to a User with the login of '" + str("login") + "'."}},
			}
			break
		}
		resp = map[string]any{"data": map[string]any{"user": map[string]any{"id": id, "login": str("login")}}}

	case "CreateAttributionInvitation", "ReattributeMannequinToUser":
		f.mu.Lock()
		f.mutations = append(f.mutations, fakeMutation{
			Operation: req.OperationName,
			OrgID:     str("orgId"),
			SourceID:  str("sourceId"),
			TargetID:  str("targetId"),
		})
		f.mu.Unlock()

		field := "createAttributionInvitation"
		if req.OperationName == "ReattributeMannequinToUser" {
			field = "reattributeMannequinToUser"
		}
		if msg, ok := f.failures[str("sourceId")]; ok {
			resp = map[string]any{
				"data":   map[string]any{field: nil},
				"errors": []map[string]any{{"type": "UNPROCESSABLE", "message": msg}},
			}
			break
		}
		resp = map[string]any{"data": map[string]any{field: map[string]any{
			"source": map[string]any{"id": str("sourceId"), "login": f.loginOfMannequin(str("sourceId"))},
			"target": map[string]any{"id": str("targetId"), "login": f.loginOfUser(str("targetId"))},
		}}}

	default:
		f.t.Errorf("unexpected operation %q", req.OperationName)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (f *fakeGitHub) loginOfMannequin(id string) string {
	for _, m := range f.mannequins {
		if m.ID == id {
			return m.Login
		}
	}
	return ""
}

func (f *fakeGitHub) loginOfUser(id string) string {
	for login, uid := range f.users {
		if uid == id {
			return login
		}
	}
	return ""
}
