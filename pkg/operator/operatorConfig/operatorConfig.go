package operatorConfig

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/config"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/contentPolicy"
	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/storage"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"sigs.k8s.io/yaml"
)

const (
	EnvPrefix = "HOLESKY"

	Debug                  = "debug"
	RpcUrl                 = "rpc-url"
	ContractAddress        = "contract-address"
	PrivateKey             = "private-key"
	ChainId                = "chain-id"
	PollInterval           = "poll-interval"
	LookbackBlocks         = "lookback-blocks"
	MaxBlockRange          = "max-block-range"
	SubmissionTimeout      = "submission-timeout"
	SubmissionMaxAttempts  = "submission-max-attempts"
	SubmissionRetryBackoff = "submission-retry-backoff"
	Denylist               = "denylist"
	MaxContentBytes        = "max-content-bytes"
	RpcRequestsPerSecond   = "rpc-requests-per-second"
	MetricsPort            = "metrics-port"
	StorageType            = "storage-type"
	BadgerDir              = "badger-dir"
	RedisUrl               = "redis-url"
	RedisKeyPrefix         = "redis-key-prefix"
	ProcessedEventTTL      = "processed-event-ttl"
)

const (
	DefaultChainId                = config.ChainId_EthereumHolesky
	DefaultPollInterval           = 15 * time.Second
	DefaultLookbackBlocks         = 10
	DefaultMaxBlockRange          = 2000
	DefaultSubmissionTimeout      = 2 * time.Minute
	DefaultSubmissionMaxAttempts  = 1
	DefaultSubmissionRetryBackoff = 5 * time.Second
	DefaultRedisKeyPrefix         = "avs-operator"
)

const (
	StorageType_Memory = "memory"
	StorageType_Badger = "badger"
	StorageType_Redis  = "redis"
)

// StorageConfig selects where the block cursor and processed-event set live. The memory
// store forgets both on restart, so the cursor is rebuilt from the chain tip minus the
// lookback margin.
type StorageConfig struct {
	Type string `json:"type" yaml:"type"`
	// ProcessedEventTTL is how long every backend keeps processed-event markers. Validate
	// defaults it and copies it into backend configs that leave their own ttl unset.
	ProcessedEventTTL time.Duration `json:"processedEventTtl,omitempty" yaml:"processedEventTtl,omitempty"`
	BadgerConfig      *BadgerConfig `json:"badger,omitempty" yaml:"badger,omitempty"`
	RedisConfig       *RedisConfig  `json:"redis,omitempty" yaml:"redis,omitempty"`
}

type BadgerConfig struct {
	// Directory where BadgerDB will store its data
	Dir string `json:"dir" yaml:"dir"`
	// InMemory runs BadgerDB in memory-only mode (for testing)
	InMemory bool `json:"inMemory,omitempty" yaml:"inMemory,omitempty"`
	// ValueLogFileSize sets the maximum size of a single value log file
	ValueLogFileSize int64 `json:"valueLogFileSize,omitempty" yaml:"valueLogFileSize,omitempty"`
	// ProcessedEventTTL expires processed-event markers. Zero keeps them forever.
	ProcessedEventTTL time.Duration `json:"processedEventTtl,omitempty" yaml:"processedEventTtl,omitempty"`
}

type RedisConfig struct {
	Url       string `json:"url" yaml:"url"`
	KeyPrefix string `json:"keyPrefix,omitempty" yaml:"keyPrefix,omitempty"`
	// ProcessedEventTTL expires processed-event markers. Zero keeps them forever.
	ProcessedEventTTL time.Duration `json:"processedEventTtl,omitempty" yaml:"processedEventTtl,omitempty"`
}

func (sc *StorageConfig) Validate() error {
	var allErrors field.ErrorList

	if sc.Type == "" {
		sc.Type = StorageType_Memory
	}

	if sc.ProcessedEventTTL == 0 {
		sc.ProcessedEventTTL = storage.DefaultProcessedEventTTL
	} else if sc.ProcessedEventTTL < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("processedEventTtl"), sc.ProcessedEventTTL, "must not be negative"))
	}

	supported := []string{StorageType_Memory, StorageType_Badger, StorageType_Redis}
	if !slices.Contains(supported, sc.Type) {
		allErrors = append(allErrors, field.NotSupported(field.NewPath("type"), sc.Type, supported))
	}

	switch sc.Type {
	case StorageType_Badger:
		if sc.BadgerConfig == nil {
			allErrors = append(allErrors, field.Required(field.NewPath("badger"), "badger configuration is required when type is 'badger'"))
		} else {
			if sc.BadgerConfig.Dir == "" && !sc.BadgerConfig.InMemory {
				allErrors = append(allErrors, field.Required(field.NewPath("badger.dir"), "badger directory is required"))
			}
			if sc.BadgerConfig.ProcessedEventTTL == 0 {
				sc.BadgerConfig.ProcessedEventTTL = sc.ProcessedEventTTL
			} else if sc.BadgerConfig.ProcessedEventTTL < 0 {
				allErrors = append(allErrors, field.Invalid(field.NewPath("badger.processedEventTtl"), sc.BadgerConfig.ProcessedEventTTL, "must not be negative"))
			}
		}
	case StorageType_Redis:
		if sc.RedisConfig == nil {
			allErrors = append(allErrors, field.Required(field.NewPath("redis"), "redis configuration is required when type is 'redis'"))
		} else {
			if sc.RedisConfig.Url == "" {
				allErrors = append(allErrors, field.Required(field.NewPath("redis.url"), "redis url is required"))
			}
			if sc.RedisConfig.KeyPrefix == "" {
				sc.RedisConfig.KeyPrefix = DefaultRedisKeyPrefix
			}
			if sc.RedisConfig.ProcessedEventTTL == 0 {
				sc.RedisConfig.ProcessedEventTTL = sc.ProcessedEventTTL
			} else if sc.RedisConfig.ProcessedEventTTL < 0 {
				allErrors = append(allErrors, field.Invalid(field.NewPath("redis.processedEventTtl"), sc.RedisConfig.ProcessedEventTTL, "must not be negative"))
			}
		}
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

type OperatorConfig struct {
	Debug bool `json:"debug" yaml:"debug"`

	RpcUrl          string         `json:"rpcUrl" yaml:"rpcUrl"`
	ContractAddress string         `json:"contractAddress" yaml:"contractAddress"`
	PrivateKey      string         `json:"privateKey" yaml:"privateKey"`
	ChainId         config.ChainId `json:"chainId" yaml:"chainId"`

	PollInterval   time.Duration `json:"pollInterval" yaml:"pollInterval"`
	LookbackBlocks uint64        `json:"lookbackBlocks" yaml:"lookbackBlocks"`
	// MaxBlockRange caps a single eth_getLogs span. Zero scans up to the tip in one request.
	MaxBlockRange uint64 `json:"maxBlockRange" yaml:"maxBlockRange"`

	SubmissionTimeout      time.Duration `json:"submissionTimeout" yaml:"submissionTimeout"`
	SubmissionMaxAttempts  int           `json:"submissionMaxAttempts" yaml:"submissionMaxAttempts"`
	SubmissionRetryBackoff time.Duration `json:"submissionRetryBackoff" yaml:"submissionRetryBackoff"`

	Denylist        []string `json:"denylist" yaml:"denylist"`
	MaxContentBytes int      `json:"maxContentBytes" yaml:"maxContentBytes"`

	RpcRequestsPerSecond float64 `json:"rpcRequestsPerSecond" yaml:"rpcRequestsPerSecond"`
	MetricsPort          int     `json:"metricsPort" yaml:"metricsPort"`

	Storage *StorageConfig `json:"storage,omitempty" yaml:"storage,omitempty"`
}

// ValidateChainAccess checks only what read-only commands need to reach the contract.
func (oc *OperatorConfig) ValidateChainAccess() error {
	allErrors := oc.validateChainAccess()
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

func (oc *OperatorConfig) validateChainAccess() field.ErrorList {
	var allErrors field.ErrorList
	if oc.RpcUrl == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("rpcUrl"), "rpcUrl is required"))
	}
	if oc.ContractAddress == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("contractAddress"), "contractAddress is required"))
	} else if !common.IsHexAddress(oc.ContractAddress) {
		allErrors = append(allErrors, field.Invalid(field.NewPath("contractAddress"), oc.ContractAddress, "contractAddress must be a hex encoded address"))
	}
	return allErrors
}

// ValidateSigner checks chain access plus the operator key needed to send transactions.
func (oc *OperatorConfig) ValidateSigner() error {
	allErrors := oc.validateChainAccess()
	allErrors = append(allErrors, oc.validatePrivateKey()...)
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

func (oc *OperatorConfig) validatePrivateKey() field.ErrorList {
	var allErrors field.ErrorList
	if oc.PrivateKey == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("privateKey"), "privateKey is required"))
	}
	return allErrors
}

// Validate checks the full configuration of the run command and fills unset values with
// their defaults.
func (oc *OperatorConfig) Validate() error {
	allErrors := oc.validateChainAccess()
	allErrors = append(allErrors, oc.validatePrivateKey()...)

	if oc.ChainId == 0 {
		oc.ChainId = DefaultChainId
	}
	if !config.IsSupportedChainId(oc.ChainId) {
		allErrors = append(allErrors, field.Invalid(field.NewPath("chainId"), oc.ChainId, fmt.Sprintf("chainId must be one of %v", config.SupportedChainIds)))
	}

	if oc.PollInterval == 0 {
		oc.PollInterval = DefaultPollInterval
	} else if oc.PollInterval < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("pollInterval"), oc.PollInterval, "pollInterval must be positive"))
	}

	if oc.MaxBlockRange == 1 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("maxBlockRange"), oc.MaxBlockRange, "maxBlockRange must be 0 or at least 2"))
	}

	if oc.SubmissionTimeout == 0 {
		oc.SubmissionTimeout = DefaultSubmissionTimeout
	} else if oc.SubmissionTimeout < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("submissionTimeout"), oc.SubmissionTimeout, "submissionTimeout must be positive"))
	}

	if oc.SubmissionMaxAttempts == 0 {
		oc.SubmissionMaxAttempts = DefaultSubmissionMaxAttempts
	} else if oc.SubmissionMaxAttempts < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("submissionMaxAttempts"), oc.SubmissionMaxAttempts, "submissionMaxAttempts must be at least 1"))
	}

	if oc.SubmissionRetryBackoff < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("submissionRetryBackoff"), oc.SubmissionRetryBackoff, "submissionRetryBackoff must not be negative"))
	}

	if oc.MaxContentBytes == 0 {
		oc.MaxContentBytes = contentPolicy.DefaultMaxContentBytes
	} else if oc.MaxContentBytes < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("maxContentBytes"), oc.MaxContentBytes, "maxContentBytes must be positive"))
	}
	if oc.Denylist == nil {
		oc.Denylist = slices.Clone(contentPolicy.DefaultDenylist)
	}

	if oc.RpcRequestsPerSecond < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("rpcRequestsPerSecond"), oc.RpcRequestsPerSecond, "rpcRequestsPerSecond must not be negative"))
	}
	if oc.MetricsPort < 0 || oc.MetricsPort > 65535 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("metricsPort"), oc.MetricsPort, "metricsPort must be between 0 and 65535"))
	}

	if oc.Storage == nil {
		oc.Storage = &StorageConfig{Type: StorageType_Memory}
	}
	if err := oc.Storage.Validate(); err != nil {
		allErrors = append(allErrors, field.Invalid(field.NewPath("storage"), oc.Storage.Type, err.Error()))
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// ContentPolicyConfig is the validation policy slice of the operator configuration.
func (oc *OperatorConfig) ContentPolicyConfig() *contentPolicy.ContentPolicyConfig {
	return &contentPolicy.ContentPolicyConfig{
		MaxContentBytes: oc.MaxContentBytes,
		Denylist:        oc.Denylist,
	}
}

// NewOperatorConfig reads the configuration from flags and environment bound into viper.
func NewOperatorConfig() *OperatorConfig {
	oc := &OperatorConfig{
		Debug:                  viper.GetBool(config.NormalizeFlagName(Debug)),
		RpcUrl:                 viper.GetString(config.NormalizeFlagName(RpcUrl)),
		ContractAddress:        viper.GetString(config.NormalizeFlagName(ContractAddress)),
		PrivateKey:             viper.GetString(config.NormalizeFlagName(PrivateKey)),
		ChainId:                config.ChainId(viper.GetUint(config.NormalizeFlagName(ChainId))),
		PollInterval:           viper.GetDuration(config.NormalizeFlagName(PollInterval)),
		LookbackBlocks:         viper.GetUint64(config.NormalizeFlagName(LookbackBlocks)),
		MaxBlockRange:          viper.GetUint64(config.NormalizeFlagName(MaxBlockRange)),
		SubmissionTimeout:      viper.GetDuration(config.NormalizeFlagName(SubmissionTimeout)),
		SubmissionMaxAttempts:  viper.GetInt(config.NormalizeFlagName(SubmissionMaxAttempts)),
		SubmissionRetryBackoff: viper.GetDuration(config.NormalizeFlagName(SubmissionRetryBackoff)),
		MaxContentBytes:        viper.GetInt(config.NormalizeFlagName(MaxContentBytes)),
		RpcRequestsPerSecond:   viper.GetFloat64(config.NormalizeFlagName(RpcRequestsPerSecond)),
		MetricsPort:            viper.GetInt(config.NormalizeFlagName(MetricsPort)),
	}
	if viper.IsSet(config.NormalizeFlagName(Denylist)) {
		oc.Denylist = SplitList(viper.GetStringSlice(config.NormalizeFlagName(Denylist)))
	}

	storageType := viper.GetString(config.NormalizeFlagName(StorageType))
	oc.Storage = &StorageConfig{
		Type:              storageType,
		ProcessedEventTTL: viper.GetDuration(config.NormalizeFlagName(ProcessedEventTTL)),
	}
	switch storageType {
	case StorageType_Badger:
		oc.Storage.BadgerConfig = &BadgerConfig{
			Dir: viper.GetString(config.NormalizeFlagName(BadgerDir)),
		}
	case StorageType_Redis:
		oc.Storage.RedisConfig = &RedisConfig{
			Url:       viper.GetString(config.NormalizeFlagName(RedisUrl)),
			KeyPrefix: viper.GetString(config.NormalizeFlagName(RedisKeyPrefix)),
		}
	}
	return oc
}

// SplitList flattens comma separated entries. Environment variables reach viper as a single
// string, so "spam,scam" arrives as one element.
func SplitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// NewOperatorConfigFromYamlBytes decodes through encoding/json, so durations are nanoseconds.
func NewOperatorConfigFromYamlBytes(data []byte) (*OperatorConfig, error) {
	var oc *OperatorConfig
	if err := yaml.Unmarshal(data, &oc); err != nil {
		return nil, err
	}
	return oc, nil
}

func NewOperatorConfigFromJsonBytes(data []byte) (*OperatorConfig, error) {
	var oc *OperatorConfig
	if err := json.Unmarshal(data, &oc); err != nil {
		return nil, err
	}
	return oc, nil
}
