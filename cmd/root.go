package cmd

import (
	"os"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/ngyngcphu/simple-sqlite/db"
)

var errMissingFilename = errors.New("Must supply a database filename.")

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "simple-sqlite [database file]",
	Short:         "A single-file relational store with an interactive shell",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		if len(args) < 1 {
			return errMissingFilename
		}
		table, err := db.Open(args[0])
		if err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, table.Close())
		}()
		repl := db.NewREPL(table, os.Stdin, os.Stdout)
		if prompt := viper.GetString("prompt"); prompt != "" {
			repl.Prompt = prompt
		}
		return repl.Run()
	},
}

// Execute runs the root command. The caller decides the exit status.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.simple-sqlite.yaml)")
}

func initConfig() {
	_ = godotenv.Load()
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".simple-sqlite")
	}
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
