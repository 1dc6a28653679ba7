package generator

import (
	"context"
	"log"
	"time"

	"github.com/devgen/devproject-generator/internal/llm"
	"github.com/devgen/devproject-generator/internal/types"
)

// DefaultTimeout bounds the provider call so a stalled upstream cannot pin
// the request for the platform's whole write window.
const DefaultTimeout = 60 * time.Second

// Generator runs the full generation pipeline for one profile at a time.
// It holds no per-request state; concurrent calls are independent.
type Generator struct {
	client  llm.Client
	timeout time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout overrides the provider-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// New creates a Generator backed by the given completion client.
func New(client llm.Client, opts ...Option) *Generator {
	g := &Generator{
		client:  client,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces a schema-complete project list for the profile. It never
// fails: provider errors are logged and masked with the fallback catalog so
// the caller can always answer with usable data. Cancellation of ctx
// propagates into the in-flight provider call.
func (g *Generator) Generate(ctx context.Context, profile types.UserProfile) []types.ProjectIdea {
	prompt := BuildPrompt(profile)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.client.Complete(ctx, SystemPrompt, prompt)
	if err != nil {
		log.Printf("completion failed, serving fallback catalog: %v", err)
		return DefaultProjects(profile.Skills)
	}

	return Reconcile(raw, profile)
}
