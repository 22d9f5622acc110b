package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Source selects where the game data documents are read from
	// (storage or database).
	Source string `mapstructure:"source" default:"storage"`
}

const (
	SourceStorage  = "storage"
	SourceDatabase = "database"
)

// IsValidSource checks if the configured document source is valid.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceStorage, SourceDatabase:
		return true
	default:
		return false
	}
}
