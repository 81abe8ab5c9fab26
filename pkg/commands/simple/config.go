package simple

// Config represents simple script configuration
type Config struct {
	Enabled   bool     `mapstructure:"enabled"`
	Prompt    string   `mapstructure:"prompt"`
	Entries   []string `mapstructure:"entries"`
	QuitEntry string   `mapstructure:"quit_entry"`
}

// DefaultConfig returns default simple configuration
func DefaultConfig() Config {
	return Config{
		Enabled:   true,
		Entries:   []string{"reload", "quit"},
		QuitEntry: "quit",
	}
}
