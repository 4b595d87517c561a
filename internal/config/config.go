package config

type Config struct {
	CacheDir    string `yaml:"cache_dir"`
	MaxFileSize int64  `yaml:"max_file_size"`
	BotToken    string `yaml:"bot_token"`
	ContentMode string `yaml:"content_mode"`
	View        View   `yaml:"view"`
}

// View sizes the offscreen surface used for snapshots.
type View struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func Default() *Config {
	return &Config{
		CacheDir:    "./cache",
		MaxFileSize: 10 * 1024 * 1024,
		ContentMode: "scale_aspect_fit",
		View: View{
			Width:  512,
			Height: 512,
		},
	}
}
