package environment

import "context"

// Environment represents the application deployment environment.
type Environment string

const (
	// Development for local development deployments.
	Development Environment = "development"
	// Staging for pre-production deployments.
	Staging Environment = "staging"
	// Production for production deployments.
	Production Environment = "production"
)

// IsProduction reports whether the environment is production.
// Accepts the short "prod" alias used by some deployment tooling.
func (e Environment) IsProduction() bool {
	return e == Production || e == "prod"
}

// IsDevelopment reports whether the environment is development.
func (e Environment) IsDevelopment() bool {
	return e == Development || e == "dev"
}

type contextKey struct{}

// WithContext attaches the environment to the context.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves the environment from the context.
// Returns the zero value when no environment is set.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}
