package cmd

import (
	"fmt"
	"os"

	"gpa-tracker/internal/config"
	"gpa-tracker/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gpa-tracker",
	Short: "Track semesters, courses and GPA",
	Long: `A GPA tracker that keeps semesters of graded courses and computes
semester and cumulative GPA under US, ECTS, UK or percentage grading.
It provides:
- Semester and course management from the command line
- Target GPA planning
- Plain-text export of the whole record
- An HTTP API over the same record
- File, Redis or PostgreSQL storage
Example usage:
  gpa-tracker course add "Linear Algebra" A- 4   # Add a course to the latest semester
  gpa-tracker summary                              # Show semester and cumulative GPA
  gpa-tracker plan 3.5 30                          # GPA needed over the next 30 credits
  gpa-tracker server --port 8080                   # Serve the HTTP API`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()
		opts := logger.Options{
			Level:      cfg.Log.Level,
			Format:     cfg.Log.Format,
			Output:     cfg.Log.Output,
			FilePath:   cfg.Log.FilePath,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		}
		if verbose {
			opts.Level = "debug"
		}
		if err := logger.InitWithOptions(opts); err != nil {
			// Fallback to simple init if config-based init fails
			logger.Init(verbose)
			logger.Warn("Failed to initialize logger with config, using fallback: %v", err)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gpa-tracker.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gpa-tracker")
	}

	config.BindEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	config.Init()
}
