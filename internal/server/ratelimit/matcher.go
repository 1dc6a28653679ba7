package ratelimit

import "strings"

// matchEndpoint resolves the configuration for a path and method. Exact
// matches win over prefix matches; prefix patterns must end in "/". The
// health check is hardwired unlimited so uptime monitors never count
// against anyone.
func matchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		if configs[i].Method == method && configs[i].Path == path {
			return &configs[i]
		}
	}
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method == method && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}
	return nil
}
