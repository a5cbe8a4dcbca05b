package environment

import "strings"

// Environment is the deployment stage the service runs in.
type Environment string

const (
	// Development for development environment.
	Development Environment = "development"
	// Production for production environment.
	Production Environment = "production"
	// Staging for staging environment.
	Staging Environment = "staging"
)

// Parse normalizes an APP_ENV value. Short aliases ("prod", "stage", "dev")
// are accepted and anything unrecognized falls back to Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string { return string(e) }

func (e Environment) IsProduction() bool { return e == Production }

func (e Environment) IsStaging() bool { return e == Staging }

func (e Environment) IsDevelopment() bool { return e == Development }
