package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configPath string

// AddConfigPath adds the --config-path flag and binds it to the config-path setting
func AddConfigPath(cmd *cobra.Command) error {
	usage := "Path to the directory with the settings file."
	cmd.PersistentFlags().StringVarP(&configPath, "config-path", "c", "", usage)
	return viper.BindPFlag("config-path", cmd.PersistentFlags().Lookup("config-path"))
}

func ConfigPath() string {
	return configPath
}
