package github

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/reclaimer/pkg/domain/model"
	"github.com/secmon-lab/reclaimer/pkg/domain/types"
)

// DefaultAPIURL is the REST root of github.com
const DefaultAPIURL = "https://api.github.com"

const mannequinPageSize = 100

// Client is a minimal GitHub GraphQL client
type Client struct {
	endpoint   string
	token      types.Secret
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient = &http.Client{Timeout: d}
	}
}

// NewClient creates a client for the API rooted at apiURL
// (e.g. https://api.github.com or https://ghes.example.com/api/v3)
func NewClient(apiURL string, token types.Secret, opts ...Option) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	c := &Client{
		endpoint:   graphQLEndpoint(apiURL),
		token:      token,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// graphQLEndpoint maps a REST API root to its GraphQL endpoint. GHES serves
// REST under /api/v3 and GraphQL under /api/graphql.
func graphQLEndpoint(apiURL string) string {
	apiURL = strings.TrimRight(apiURL, "/")
	if strings.HasSuffix(apiURL, "/api/v3") {
		return strings.TrimSuffix(apiURL, "/v3") + "/graphql"
	}
	return apiURL + "/graphql"
}

// GraphQLError is one entry of the "errors" array of a GraphQL response
type GraphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type graphQLRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

func (c *Client) do(ctx context.Context, op *operation, vars map[string]any) (*graphQLResponse, error) {
	body, err := json.Marshal(graphQLRequest{
		Query:         op.document,
		Variables:     vars,
		OperationName: op.name,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode GraphQL request", goerr.V("operation", op.name))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GraphQL request", goerr.V("operation", op.name))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("GraphQL-Features", "import_api,mannequin_claiming")
	if !c.token.IsEmpty() {
		req.Header.Set("Authorization", "Bearer "+c.token.Reveal())
	}

	ctxlog.From(ctx).Debug("GraphQL request",
		slog.String("operation", op.name),
		slog.String("kind", string(op.kind)),
		slog.Any("variables", vars),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "GraphQL request failed", goerr.V("operation", op.name))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read GraphQL response", goerr.V("operation", op.name))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected GitHub API status",
			goerr.V("operation", op.name),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(raw)))
	}

	var result graphQLResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, goerr.Wrap(err, "failed to decode GraphQL response", goerr.V("operation", op.name))
	}
	return &result, nil
}

// query runs a read operation; any GraphQL error fails the call
func (c *Client) query(ctx context.Context, op *operation, vars map[string]any, out any) error {
	resp, err := c.do(ctx, op, vars)
	if err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return goerr.New(resp.Errors[0].Message,
			goerr.V("operation", op.name),
			goerr.V("errors", resp.Errors))
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return goerr.Wrap(err, "failed to decode GraphQL data", goerr.V("operation", op.name))
	}
	return nil
}

// GetOrganizationID returns the node ID of an organization
func (c *Client) GetOrganizationID(ctx context.Context, org types.OrgLogin) (types.NodeID, error) {
	var data struct {
		Organization *struct {
			ID types.NodeID `json:"id"`
		} `json:"organization"`
	}
	if err := c.query(ctx, opGetOrganizationID, map[string]any{"login": org.String()}, &data); err != nil {
		return "", err
	}
	if data.Organization == nil {
		return "", goerr.New("organization not found", goerr.V("org", org))
	}
	return data.Organization.ID, nil
}

// GetMannequins returns every mannequin of an organization
func (c *Client) GetMannequins(ctx context.Context, orgID types.NodeID) ([]model.Mannequin, error) {
	type node struct {
		ID       types.NodeID    `json:"id"`
		Login    types.UserLogin `json:"login"`
		Claimant *struct {
			ID    types.NodeID    `json:"id"`
			Login types.UserLogin `json:"login"`
		} `json:"claimant"`
	}

	var (
		mannequins []model.Mannequin
		after      *string
	)
	for {
		var data struct {
			Node struct {
				Mannequins struct {
					PageInfo struct {
						EndCursor   string `json:"endCursor"`
						HasNextPage bool   `json:"hasNextPage"`
					} `json:"pageInfo"`
					Nodes []node `json:"nodes"`
				} `json:"mannequins"`
			} `json:"node"`
		}

		vars := map[string]any{"id": orgID.String(), "first": mannequinPageSize, "after": after}
		if err := c.query(ctx, opGetMannequins, vars, &data); err != nil {
			return nil, err
		}

		page := data.Node.Mannequins
		for _, n := range page.Nodes {
			m := model.Mannequin{ID: n.ID, Login: n.Login}
			if n.Claimant != nil {
				m.Claimant = &model.Claimant{ID: n.Claimant.ID, Login: n.Claimant.Login}
			}
			mannequins = append(mannequins, m)
		}

		if !page.PageInfo.HasNextPage {
			break
		}
		cursor := page.PageInfo.EndCursor
		after = &cursor
	}

	return mannequins, nil
}

// GetUserID returns the node ID of a user, or "" if the user does not exist
func (c *Client) GetUserID(ctx context.Context, login types.UserLogin) (types.NodeID, error) {
	resp, err := c.do(ctx, opGetUserID, map[string]any{"login": login.String()})
	if err != nil {
		return "", err
	}

	// An unknown login comes back as a NOT_FOUND error with a null user
	for _, e := range resp.Errors {
		if e.Type != "NOT_FOUND" {
			return "", goerr.New(e.Message, goerr.V("operation", opGetUserID.name), goerr.V("login", login))
		}
	}

	var data struct {
		User *struct {
			ID types.NodeID `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return "", goerr.Wrap(err, "failed to decode GraphQL data", goerr.V("operation", opGetUserID.name))
	}
	if data.User == nil {
		return "", nil
	}
	return data.User.ID, nil
}

// AttributionResult is the outcome of an attribution mutation. GraphQL
// errors are reported in Errors rather than as a Go error.
type AttributionResult struct {
	SourceID    types.NodeID
	SourceLogin types.UserLogin
	TargetID    types.NodeID
	TargetLogin types.UserLogin
	Errors      []GraphQLError
}

// CreateAttributionInvitation asks targetID to accept the mannequin's activity
func (c *Client) CreateAttributionInvitation(ctx context.Context, orgID, sourceID, targetID types.NodeID) (*AttributionResult, error) {
	return c.attribute(ctx, opCreateAttributionInvitation, "createAttributionInvitation", orgID, sourceID, targetID)
}

// ReattributeMannequinToUser moves the mannequin's activity to targetID
// immediately, without an invitation
func (c *Client) ReattributeMannequinToUser(ctx context.Context, orgID, sourceID, targetID types.NodeID) (*AttributionResult, error) {
	return c.attribute(ctx, opReattributeMannequinToUser, "reattributeMannequinToUser", orgID, sourceID, targetID)
}

func (c *Client) attribute(ctx context.Context, op *operation, field string, orgID, sourceID, targetID types.NodeID) (*AttributionResult, error) {
	resp, err := c.do(ctx, op, map[string]any{
		"orgId":    orgID.String(),
		"sourceId": sourceID.String(),
		"targetId": targetID.String(),
	})
	if err != nil {
		return nil, err
	}

	result := &AttributionResult{Errors: resp.Errors}

	var data map[string]*struct {
		Source *struct {
			ID    types.NodeID    `json:"id"`
			Login types.UserLogin `json:"login"`
		} `json:"source"`
		Target *struct {
			ID    types.NodeID    `json:"id"`
			Login types.UserLogin `json:"login"`
		} `json:"target"`
	}
	if len(resp.Data) > 0 && string(resp.Data) != "null" {
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			return nil, goerr.Wrap(err, "failed to decode GraphQL data", goerr.V("operation", op.name))
		}
	}

	if payload := data[field]; payload != nil {
		if payload.Source != nil {
			result.SourceID = payload.Source.ID
			result.SourceLogin = payload.Source.Login
		}
		if payload.Target != nil {
			result.TargetID = payload.Target.ID
			result.TargetLogin = payload.Target.Login
		}
	}

	return result, nil
}
