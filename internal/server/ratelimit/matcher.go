package ratelimit

import "strings"

// unlimited marks endpoints that are never rate limited.
var unlimited = EndpointConfig{}

// MatchEndpoint matches a request path and method to an endpoint
// configuration. Exact matches win over prefix matches; paths ending in "/"
// match by prefix (so "/v1/documents/" covers "/v1/documents/{id}").
// Returns nil when no configuration matches.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks and the public viewer stay unlimited: load balancer
	// probes and shared links must not consume anyone's budget.
	if method == "GET" && (path == "/health" || strings.HasPrefix(path, "/d/")) {
		return &unlimited
	}

	for i := range configs {
		if configs[i].Path == path && configs[i].Method == method {
			return &configs[i]
		}
	}

	for i := range configs {
		ec := &configs[i]
		if ec.Method == method && strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			return ec
		}
	}

	return nil
}
