package cmd

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/radiofrance/robotkw/internal/logger"
)

const (
	defaultLogLevel = "info"
	defaultFormat   = "json"
)

var (
	workingDir string
	cfgFile    string
)

var rootCmd = &cobra.Command{
	Use: "robotkw",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Short: "Convert Robot Framework keyword trees into simple JSON documents",
	Long: `robotkw reads a test execution report made of nested "kw" elements and turns it into
a nested record of keywords, with their name, status, start and end time.

Run robotkw --help for more information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	// Set logger level from flags as early as possible, then load config, then finalize from Viper
	cobra.OnInitialize(preInitLogLevelFromFlags, initConfig, initLogLevel)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.config/.robotkw.yaml)")
	rootCmd.PersistentFlags().StringP("log-level", "l", defaultLogLevel,
		`Log level. Can be any standard log-level ("info", "debug", etc...)`)
	rootCmd.PersistentFlags().StringP("format", "f", defaultFormat,
		`Format of the generated document, "json", "yaml" or "junit".`)

	err := viper.BindPFlags(rootCmd.PersistentFlags())
	if err != nil {
		cobra.CheckErr(err)
	}
	bindPFlagsSnakeCase(rootCmd.PersistentFlags())

	rootCmd.AddCommand(versionCommand())
	rootCmd.AddCommand(convertCommand())
	rootCmd.AddCommand(treeCommand())
	rootCmd.AddCommand(docgenCommand())
}

func initConfig() {
	var err error

	workingDir, err = os.Getwd()
	cobra.CheckErr(err)

	viper.SetConfigType("yaml")

	if cfgFile != "" {
		// Use config file from the flag.
		setConfigFile(cfgFile)
	} else if val := os.Getenv("ROBOTKW_CONFIG"); val != "" {
		// Use config file from the env variable.
		setConfigFile(val)
	} else {
		homeDir, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(path.Join(homeDir, ".config"))
		viper.AddConfigPath(workingDir)

		// Search config file with name ".robotkw.yaml" or ".robotkw.yml".
		viper.SetConfigName(".robotkw")
	}

	// Env vars starting with the ROBOTKW_ prefix can override any configuration.
	// e.g. ROBOTKW_LOG_LEVEL, ROBOTKW_FORMAT, etc...
	viper.SetEnvPrefix("robotkw")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		// Non-blocking, the config file is optional.
		logger.Debugf("%s", err)
	} else {
		logger.Infof("Using config file: %s", viper.ConfigFileUsed())
	}
}

func initLogLevel() {
	logLevel := viper.GetString("log_level")
	logger.SetLevel(&logLevel)
}

// preInitLogLevelFromFlags sets the log level from Cobra flags or env before config/env are loaded by Viper,
// so that early logs (like config not found) respect user-provided preference.
// Precedence respected here: flag > env (ROBOTKW_LOG_LEVEL) > config (handled later in initLogLevel via Viper).
func preInitLogLevelFromFlags() {
	flag := rootCmd.PersistentFlags().Lookup("log-level")
	if flag != nil && flag.Changed {
		val, err := rootCmd.PersistentFlags().GetString("log-level")
		if err == nil {
			logger.SetLevel(&val)
			return
		}
	}

	if val, ok := os.LookupEnv("ROBOTKW_LOG_LEVEL"); ok && val != "" {
		logger.SetLevel(&val)
	}
}

func setConfigFile(name string) {
	_, err := os.Stat(name)
	if err != nil {
		cobra.CheckErr(fmt.Errorf("config file %q not found", name))
	}

	viper.SetConfigFile(name)
}

// hydrateOptsFromViper copies all the viper values into our config struct.
// The mapping between viper identifiers and struct field names
// is ensured by `mapstructure` struct tags.
func hydrateOptsFromViper(opts any) {
	_ = viper.Unmarshal(opts)
}

// bindPFlagsSnakeCase binds the flags with viper values. The identifier of the viper value
// is the name of the flag with dashes replaced by underscores. This is required so we can
// retrieve values from viper with the same behaviour with config coming from files
// (my_config: "value") or from flags (--my-config=value).
func bindPFlagsSnakeCase(flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		_ = viper.BindPFlag(strings.ReplaceAll(flag.Name, "-", "_"), flag)
	})
}
