package config

const (
	defaultConfigPath    = "~/.config/pwna/pwna.yaml"
	defaultHTTPDirectory = "./http_server_directory"
	defaultHTTPPort      = 8000
)

// Default returns a Config populated with the values written on first run.
func Default() Config {
	dir := defaultHTTPDirectory
	port := defaultHTTPPort
	return Config{
		HTTPDirectory: &dir,
		HTTPPort:      &port,
	}
}
