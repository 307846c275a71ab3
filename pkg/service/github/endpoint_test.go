package github_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/reclaimer/pkg/service/github"
)

func TestGraphQLEndpoint(t *testing.T) {
	tests := []struct {
		apiURL   string
		expected string
	}{
		{"https://api.github.com", "https://api.github.com/graphql"},
		{"https://api.github.com/", "https://api.github.com/graphql"},
		{"https://ghes.example.com/api/v3", "https://ghes.example.com/api/graphql"},
		{"https://ghes.example.com/api/v3/", "https://ghes.example.com/api/graphql"},
		{"http://127.0.0.1:8080", "http://127.0.0.1:8080/graphql"},
	}

	for _, tt := range tests {
		t.Run(tt.apiURL, func(t *testing.T) {
			gt.Equal(t, tt.expected, github.GraphQLEndpoint(tt.apiURL))
		})
	}
}
