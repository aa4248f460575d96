// Package main provides the vibe-exac command-line tool.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/brentp/xopen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/vibe-exac/internal/exac"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitError   = 1
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Config keys.
const (
	keyExacURL     = "exac.url"
	keyMaxAttempts = "lookup.max_attempts"
	keyTimeout     = "lookup.timeout"
	keyBackoff     = "lookup.backoff"
	keyCache       = "cache.enabled"
	keyLogLevel    = "log.level"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitError
	}
	return ExitSuccess
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "vibe-exac -i <input.vcf> [-o <output>]",
		Short: "A simple VCF annotator",
		Long: `Annotate a single-sample VCF with variant type, read support and
ExAC allele frequency / VEP predictions.

The output is a tab-delimited file with the VCF header removed: the ten input
columns followed by Variant type, TC, TR, TR/TC, Allele freq, SYMBOL, SIFT,
PolyPhen, major_consequence and Existing_variation.

Only chromosomes 1-22, X and Y are looked up. If a lookup still fails after
the configured number of attempts the run stops with a non-zero exit code.`,
		Example: `  vibe-exac -i sample.vcf
  vibe-exac -i sample.vcf.gz -o sample.annotated.txt
  vibe-exac -i sample.vcf --offline
  vibe-exac -i sample.vcf --cache
  cat sample.vcf | vibe-exac -i - -o -`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := annotateOptionsFrom(cmd, v)
			if err != nil {
				return err
			}
			if opts.InputPath != "-" && !xopen.Exists(opts.InputPath) {
				cmd.Usage()
				return fmt.Errorf("input vcf does not exist: %s", opts.InputPath)
			}

			logger, err := newLogger(v.GetString(keyLogLevel))
			if err != nil {
				return err
			}
			defer logger.Sync()

			return runAnnotate(cmd.Context(), opts, logger)
		},
	}
	cmd.SetVersionTemplate("vibe-exac version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.vibe-exac.yaml)")

	policy := exac.DefaultPolicy()
	f := cmd.Flags()
	f.StringP("input", "i", "", "Input VCF file, plain or gzipped ('-' for stdin)")
	f.StringP("output", "o", "", "Output file with the VCF header removed (default: <input>.annotated.txt)")
	f.String("exac-url", exac.DefaultBaseURL, "Base URL of the ExAC REST service")
	f.Int("max-attempts", policy.MaxAttempts, "Attempts per lookup before giving up")
	f.Duration("timeout", policy.Timeout, "Timeout of a single lookup attempt")
	f.Duration("backoff", policy.Backoff, "Wait between lookup attempts")
	f.Bool("cache", false, "Reuse lookups of identical variants within the run")
	f.Bool("offline", false, "Skip remote lookups; annotation columns are left empty")
	f.String("log-level", "info", "Log level: debug, info, warn, error")
	_ = cmd.MarkFlagRequired("input")

	v.SetDefault(keyExacURL, exac.DefaultBaseURL)
	v.SetDefault(keyMaxAttempts, policy.MaxAttempts)
	v.SetDefault(keyTimeout, policy.Timeout)
	v.SetDefault(keyBackoff, policy.Backoff)
	v.SetDefault(keyCache, false)
	v.SetDefault(keyLogLevel, "info")

	for key, flag := range map[string]string{
		keyExacURL:     "exac-url",
		keyMaxAttempts: "max-attempts",
		keyTimeout:     "timeout",
		keyBackoff:     "backoff",
		keyCache:       "cache",
		keyLogLevel:    "log-level",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}

	v.SetEnvPrefix("VIBE_EXAC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(newConfigCmd(v))

	return cmd
}

// initConfig reads the config file if there is one. An explicitly named file
// must exist.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".vibe-exac")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// annotateOptionsFrom collects the run options from flags and config.
func annotateOptionsFrom(cmd *cobra.Command, v *viper.Viper) (annotateOptions, error) {
	f := cmd.Flags()
	input, _ := f.GetString("input")
	output, _ := f.GetString("output")
	offline, _ := f.GetBool("offline")

	opts := annotateOptions{
		InputPath:  input,
		OutputPath: output,
		ExacURL:    v.GetString(keyExacURL),
		Policy: exac.Policy{
			MaxAttempts: v.GetInt(keyMaxAttempts),
			Timeout:     v.GetDuration(keyTimeout),
			Backoff:     v.GetDuration(keyBackoff),
		},
		Cache:   v.GetBool(keyCache),
		Offline: offline,
	}

	if opts.OutputPath == "" {
		if opts.InputPath == "-" {
			return opts, fmt.Errorf("--output is required when reading from stdin")
		}
		opts.OutputPath = opts.InputPath + ".annotated.txt"
	}
	if opts.Policy.Backoff < 0 || opts.Policy.Timeout < 0 {
		return opts, fmt.Errorf("lookup timeout and backoff must not be negative")
	}

	return opts, nil
}
