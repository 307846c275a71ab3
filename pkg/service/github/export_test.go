package github

var GraphQLEndpoint = graphQLEndpoint
