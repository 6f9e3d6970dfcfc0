package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tessera/internal/app"
	"tessera/internal/config"
	"tessera/internal/log"
	"tessera/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "tessera",
	Short:   "A demo of ordered collections for composite terminal controls",
	Long:    `Tessera demonstrates its collection primitive: menus and tab lists whose items are discovered and ordered by scanning the element tree, independent of the order they registered in.`,
	Version: version,
	RunE:    runApp,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = defaultConfigPath()
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		}
		return config.WriteDefaultConfig(path)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/tessera/config.yaml)")
	rootCmd.Flags().Bool("debug", false,
		"write a structured debug log")
	rootCmd.Flags().Bool("no-mouse", false,
		"disable mouse support")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.Flags().Lookup("debug"))

	rootCmd.AddCommand(initCmd)
}

func defaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tessera", "config.yaml")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("log_file", defaults.LogFile)
	viper.SetDefault("ui.mouse", defaults.UI.Mouse)
	viper.SetDefault("ui.show_help", defaults.UI.ShowHelp)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .tessera/config.yaml (current directory)
		// 2. ~/.config/tessera/config.yaml (user config)
		if _, err := os.Stat(".tessera/config.yaml"); err == nil {
			viper.SetConfigFile(".tessera/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "tessera"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// Missing config is fine - run on defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if cfg.Debug {
		cleanup, err := log.InitWithTeaLog(cfg.LogFile, "tessera")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
		log.Info(log.CatApp, "Debug logging enabled", "file", cfg.LogFile)
	}

	// Handle --no-mouse flag (negated logic)
	if noMouse, _ := cmd.Flags().GetBool("no-mouse"); noMouse {
		cfg.UI.Mouse = false
	}

	// A bad color keeps the defaults rather than aborting the program.
	if err := styles.ApplyTheme(styles.ThemeConfig{
		Highlight: cfg.Theme.Highlight,
		Subtle:    cfg.Theme.Subtle,
		Error:     cfg.Theme.Error,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	zone.NewGlobal()
	defer zone.Close()

	model := app.New(cfg)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	_, err := p.Run()
	model.Close()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	// Persist the tab the user left active, when a config file exists.
	if path := viper.ConfigFileUsed(); path != "" {
		ui := cfg.UI
		ui.ActiveTab = model.ActiveTab()
		if saveErr := config.SaveUI(path, ui); saveErr != nil {
			log.ErrorErr(log.CatConfig, "Failed to persist ui settings", saveErr, "path", path)
		}
	}
	return nil
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
