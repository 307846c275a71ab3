package github

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// operation is a parsed GraphQL document holding exactly one operation
type operation struct {
	name     string
	kind     ast.Operation
	document string
}

func mustParseOperation(document string) *operation {
	doc, err := parser.ParseQuery(&ast.Source{Input: document})
	if err != nil {
		panic(fmt.Sprintf("invalid GraphQL document: %v", err))
	}
	if len(doc.Operations) != 1 || doc.Operations[0].Name == "" {
		panic("GraphQL document must hold exactly one named operation")
	}

	return &operation{
		name:     doc.Operations[0].Name,
		kind:     doc.Operations[0].Operation,
		document: document,
	}
}

var (
	opGetOrganizationID = mustParseOperation(`
query GetOrganizationID($login: String!) {
  organization(login: $login) {
    login
    id
  }
}`)

	opGetMannequins = mustParseOperation(`
query GetMannequins($id: ID!, $first: Int, $after: String) {
  node(id: $id) {
    ... on Organization {
      mannequins(first: $first, after: $after) {
        pageInfo {
          endCursor
          hasNextPage
        }
        nodes {
          login
          id
          claimant {
            login
            id
          }
        }
      }
    }
  }
}`)

	opGetUserID = mustParseOperation(`
query GetUserID($login: String!) {
  user(login: $login) {
    id
    login
  }
}`)

	opCreateAttributionInvitation = mustParseOperation(`
mutation CreateAttributionInvitation($orgId: ID!, $sourceId: ID!, $targetId: ID!) {
  createAttributionInvitation(input: {ownerId: $orgId, sourceId: $sourceId, targetId: $targetId}) {
    source {
      ... on Mannequin {
        id
        login
      }
    }
    target {
      ... on User {
        id
        login
      }
    }
  }
}`)

	opReattributeMannequinToUser = mustParseOperation(`
mutation ReattributeMannequinToUser($orgId: ID!, $sourceId: ID!, $targetId: ID!) {
  reattributeMannequinToUser(input: {ownerId: $orgId, sourceId: $sourceId, targetId: $targetId}) {
    source {
      ... on Mannequin {
        id
        login
      }
    }
    target {
      ... on User {
        id
        login
      }
    }
  }
}`)
)
