package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "gmlgraph",
	Short: "GML graph inspector",
	Long:  "gmlgraph reads Graph Modelling Language files and reports on the typed graph they describe.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("GMLGRAPH")
	viper.AutomaticEnv()
}
