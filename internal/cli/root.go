package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/notmytype/internal/logging"
	"github.com/ppiankov/notmytype/internal/model"
	"github.com/ppiankov/notmytype/internal/pipeline"
	"github.com/ppiankov/notmytype/internal/render"
)

// version is overridden at build time with -ldflags "-X .../internal/cli.version=..."
var version = "v0.1.0"

var (
	cfgFile  string
	verbose  bool
	noColor  bool
	logLevel string
	logJSON  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "notmytype",
	Short: "notmytype - font pairing validator",
	Long: `notmytype checks whether a heading font and a body font work together.

Each font is classified by name into serif, sans-serif, monospace or display.
Five checks (contrast, readability, harmony, hierarchy, component stress) are
reduced to one verdict: excellent, acceptable or poor.

The verdict is a naming heuristic. It never downloads or renders a font.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "notmytype %s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.notmytype/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "write logs as JSON")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.json", rootCmd.PersistentFlags().Lookup("log-json"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	setDefaults(model.DefaultConfig())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".notmytype"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// NOTMYTYPE_CATALOG_API_KEY overrides catalog.api_key, and so on
	viper.SetEnvPrefix("NOTMYTYPE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// setDefaults registers every key so env overrides reach Unmarshal
func setDefaults(d *model.Config) {
	viper.SetDefault("catalog.api_url", d.Catalog.APIURL)
	viper.SetDefault("catalog.api_key", d.Catalog.APIKey)
	viper.SetDefault("catalog.sort", d.Catalog.Sort)
	viper.SetDefault("catalog.timeout", d.Catalog.Timeout)
	viper.SetDefault("catalog.user_agent", d.Catalog.UserAgent)
	viper.SetDefault("catalog.max_body_bytes", d.Catalog.MaxBodyBytes)
	viper.SetDefault("catalog.popular_limit", d.Catalog.PopularLimit)
	viper.SetDefault("catalog.http_proxy", d.Catalog.HTTPProxy)
	viper.SetDefault("catalog.https_proxy", d.Catalog.HTTPSProxy)

	viper.SetDefault("cache.enabled", d.Cache.Enabled)
	viper.SetDefault("cache.dir", d.Cache.Dir)
	viper.SetDefault("cache.memory_ttl", d.Cache.MemoryTTL)
	viper.SetDefault("cache.disk_ttl", d.Cache.DiskTTL)

	viper.SetDefault("rate_limiting.requests_per_second", d.RateLimiting.RequestsPerSecond)
	viper.SetDefault("rate_limiting.burst_size", d.RateLimiting.BurstSize)

	viper.SetDefault("store.path", d.Store.Path)

	viper.SetDefault("server.addr", d.Server.Addr)
	viper.SetDefault("server.base_url", d.Server.BaseURL)
	viper.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	viper.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	viper.SetDefault("server.max_request_size", d.Server.MaxRequestSize)

	viper.SetDefault("concurrency.workers", d.Concurrency.Workers)

	viper.SetDefault("llm.provider", d.LLM.Provider)
	viper.SetDefault("llm.model", d.LLM.Model)
	viper.SetDefault("llm.api_key", d.LLM.APIKey)
	viper.SetDefault("llm.base_url", d.LLM.BaseURL)
	viper.SetDefault("llm.timeout", d.LLM.Timeout)
	viper.SetDefault("llm.max_tokens", d.LLM.MaxTokens)

	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.json", d.Log.JSON)
	viper.SetDefault("log.file", d.Log.File)

	viper.SetDefault("output.verbose", d.Output.Verbose)
	viper.SetDefault("output.color", d.Output.Color)
}

// loadConfig resolves defaults, config file, env and flags into one Config
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Conventional variable names work without the NOTMYTYPE_ prefix
	if cfg.Catalog.APIKey == "" {
		cfg.Catalog.APIKey = os.Getenv("GOOGLE_FONTS_API_KEY")
	}
	switch strings.ToLower(cfg.LLM.Provider) {
	case "openai":
		if cfg.LLM.APIKey == "" {
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	case "ollama":
		if cfg.LLM.BaseURL == "" {
			cfg.LLM.BaseURL = os.Getenv("OLLAMA_BASE_URL")
		}
	}

	if noColor || os.Getenv("NO_COLOR") != "" {
		cfg.Output.Color = false
	}
	if cfg.Output.Verbose && logLevel == "" {
		cfg.Log.Level = "debug"
	}

	return cfg, nil
}

// env bundles what most commands need
type env struct {
	cfg      *model.Config
	logger   logging.Logger
	pipeline *pipeline.Pipeline
	renderer *render.Renderer
}

func (e *env) Close() {
	_ = e.logger.Close()
}

// newEnv loads config and builds the logger and pipeline. Callers must Close it.
func newEnv() (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	p, err := pipeline.NewPipeline(cfg, logger)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	return &env{
		cfg:      cfg,
		logger:   logger,
		pipeline: p,
		renderer: render.NewRenderer(cfg.Output.Color),
	}, nil
}
