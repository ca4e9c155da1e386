package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"postcard/internal/config"
	"postcard/internal/debuglog"
	"postcard/internal/theme"
	"postcard/internal/tui"
	"postcard/internal/validation"
)

// Version is the version of the application, set at build time
var Version = "dev"

var (
	configPath string
	apiURL     string
	themeName  string
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:          "postcard",
	Short:        "Read posts from a JSON endpoint, one at a time",
	SilenceUsage: true,
	RunE:         run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("postcard %s\n", Version)
		fmt.Println("terminal post reader")
	},
}

var generateConfigCmd = &cobra.Command{
	Use:   "generate-config [path]",
	Short: "Generate default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile := defaultConfigPath()
		if len(args) == 1 {
			configFile = args[0]
		}

		if err := config.GenerateDefaultConfig(configFile); err != nil {
			return fmt.Errorf("generating config: %w", err)
		}
		fmt.Printf("Generated default configuration at: %s\n", configFile)
		return nil
	},
}

func defaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "postcard", "config.toml")
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.Flags().StringVar(&apiURL, "url", "", "Posts endpoint URL (overrides config)")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Color theme (overrides config)")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "Skip startup banner")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateConfigCmd)
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if apiURL != "" {
		cfg.API.URL = apiURL
	}
	if themeName != "" {
		cfg.UI.Theme = themeName
	}

	// Local API servers are a legitimate target, so validate permissively.
	validator := validation.NewPermissiveEndpointURLValidator()
	normalized, err := validator.ValidateAndNormalize(cfg.API.URL)
	if err != nil {
		return fmt.Errorf("invalid endpoint URL: %w", err)
	}
	cfg.API.URL = normalized

	if err := debuglog.Setup(debuglog.ParseLogLevel(cfg.Log.Level), cfg.Log.File); err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer debuglog.Close()

	registry, err := theme.NewRegistry()
	if err != nil {
		return fmt.Errorf("loading themes: %w", err)
	}
	th := registry.Get(cfg.UI.Theme)

	if !quiet {
		fmt.Println(tui.Banner(Version))
	}

	debuglog.Infof("starting postcard %s, endpoint %s", Version, cfg.API.URL)

	app := tui.NewApp(cfg, th)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
