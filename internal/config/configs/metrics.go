package configs

// Metrics controls the Prometheus exposition endpoint.
type Metrics struct {
	Enabled bool   `env:"ENABLED" envDefault:"true"`
	Path    string `env:"PATH" envDefault:"/metrics"`
}

// Dashboard holds tunables for derived figures.
type Dashboard struct {
	// ClientSatisfaction is reported as-is; nothing computes it yet.
	ClientSatisfaction float64 `env:"CLIENT_SATISFACTION" envDefault:"4.8"`
}
