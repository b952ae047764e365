package configs

import "strings"

// Store selects the campaign store implementation.
type Store struct {
	// Driver is one of "postgres", "sqlite" or "memory". Unknown values
	// are rejected by main.
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Normalized returns the lower-cased driver name.
func (c Store) Normalized() string {
	return strings.ToLower(strings.TrimSpace(c.Driver))
}
