package browser

// Config represents browser script configuration
type Config struct {
	Enabled    bool   `mapstructure:"enabled"`
	StartDir   string `mapstructure:"start_dir"`
	FolderIcon string `mapstructure:"folder_icon"`
	FileIcon   string `mapstructure:"file_icon"`
	ShowParent bool   `mapstructure:"show_parent"`
	ShowHidden bool   `mapstructure:"show_hidden"`
	Prompt     string `mapstructure:"prompt"`
}

// DefaultConfig returns default browser configuration
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		FolderIcon: "folder",
		FileIcon:   "text-x-generic",
		ShowParent: true,
		ShowHidden: true,
	}
}
