package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kegliz/qre/qc/estimator/registry"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Physical resource estimator for fault-tolerant quantum algorithms",
	Long: `estimate turns an algorithm's logical resource counts (qubits, T-gates,
rotations, depth) into a physical layout: code distance, magic-state factory
count, physical qubit count and wall-clock runtime for a chosen
error-correction protocol.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default none; QRE_ env vars and flags still apply)")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(frontierCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(backendsCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err == nil {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List the registered error-correction protocol backends",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range registry.ListBackends() {
			fmt.Println(name)
		}
		return nil
	},
}
