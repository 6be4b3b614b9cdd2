package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/config"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/operator/operatorConfig"
)

var rootCmd = &cobra.Command{
	Use:   "operator",
	Short: "Watch the pastebin service manager and respond to tasks and pastes",
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var configFile string
var envFile string

func init() {
	cobra.OnInitialize(initConfigIfPresent)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded into the environment if present")

	initConfig(rootCmd)

	rootCmd.PersistentFlags().Bool(operatorConfig.Debug, false, `"true" or "false"`)
	rootCmd.PersistentFlags().String(operatorConfig.RpcUrl, "", "Ethereum JSON-RPC endpoint")
	rootCmd.PersistentFlags().String(operatorConfig.ContractAddress, "", "HelloWorldServiceManager contract address")
	rootCmd.PersistentFlags().String(operatorConfig.PrivateKey, "", "Operator ECDSA private key, hex encoded")
	rootCmd.PersistentFlags().Uint(operatorConfig.ChainId, uint(operatorConfig.DefaultChainId), "Expected chain id of the RPC endpoint")
	rootCmd.PersistentFlags().Float64(operatorConfig.RpcRequestsPerSecond, 0, "Rate limit for RPC reads, 0 disables limiting")

	// setup sub commands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(pasteCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(generateCmd)

	bindFlags(rootCmd.PersistentFlags())
}

func initConfig(cmd *cobra.Command) {
	viper.SetEnvPrefix(operatorConfig.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

func initConfigIfPresent() {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			fmt.Printf("Failed to load env file '%s' - %+v\n", envFile, err)
		}
	}
	if configFile != "" {
		fmt.Printf("Using config file: %s\n", configFile)
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			panic(err)
		}
	}
}

func bindFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		key := config.KebabToSnakeCase(f.Name)
		if err := viper.BindPFlag(key, f); err != nil {
			fmt.Printf("Failed to bind flag '%s' - %+v\n", f.Name, err)
		}
		if err := viper.BindEnv(key); err != nil {
			fmt.Printf("Failed to bind env '%s' - %+v\n", f.Name, err)
		}
	})
}

// loadConfig binds the command's local flags and reads the merged configuration.
func loadConfig(cmd *cobra.Command) *operatorConfig.OperatorConfig {
	bindFlags(cmd.Flags())
	return operatorConfig.NewOperatorConfig()
}

func main() {
	Execute()
}
