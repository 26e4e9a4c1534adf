package configs

import "fmt"

// Record store backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Storage selects where records live. The memory backend keeps everything
// for the lifetime of the process; the postgres backend uses the Psql
// section.
type Storage struct {
	Backend string `env:"BACKEND" envDefault:"memory"`
	// Seed inserts the demo projects and team members on startup when the
	// store has no projects yet.
	Seed bool `env:"SEED" envDefault:"true"`
}

// Validate rejects unknown backends.
func (c Storage) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendPostgres:
		return nil
	default:
		return fmt.Errorf("unknown storage backend %q", c.Backend)
	}
}
