package config

import (
	"slices"
	"strings"
)

type ChainId uint

const (
	ChainId_EthereumMainnet ChainId = 1
	ChainId_EthereumHolesky ChainId = 17000
	ChainId_EthereumHoodi   ChainId = 560048
	ChainId_EthereumSepolia ChainId = 11155111
	ChainId_EthereumAnvil   ChainId = 31337
)

var (
	SupportedChainIds = []ChainId{
		ChainId_EthereumMainnet,
		ChainId_EthereumHolesky,
		ChainId_EthereumHoodi,
		ChainId_EthereumSepolia,
		ChainId_EthereumAnvil,
	}
)

func IsSupportedChainId(chainId ChainId) bool {
	return slices.Contains(SupportedChainIds, chainId)
}

const (
	ContractName_HelloWorldServiceManager = "HelloWorldServiceManager"
)

// KebabToSnakeCase converts a flag name like "rpc-url" to its viper key "rpc_url"
func KebabToSnakeCase(str string) string {
	return strings.ReplaceAll(str, "-", "_")
}

// NormalizeFlagName is the key used to read a flag value back out of viper
func NormalizeFlagName(name string) string {
	return KebabToSnakeCase(name)
}
