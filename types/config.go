// Copyright (c) 2017-2019 The WaykiChain Core developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

package types

import (
	"os"
	"sync"

	tml "github.com/BurntSushi/toml"
)

// Config holds the chain parameters the transaction engine reads. Values
// come from the chain's toml config merged over defaults.
type Config struct {
	Title string `toml:"title"`
	// CoinSymbol asset symbol of the base coin
	CoinSymbol string `toml:"coinSymbol"`
	// MinTxFee absolute admission floor for any transaction fee
	MinTxFee uint64 `toml:"minTxFee"`
	// MinRelayTxFee legacy per-KB relay floor, consensus in the R2 window
	MinRelayTxFee uint64 `toml:"minRelayTxFee"`
	// DefaultFuelRate fuel rate used while the registry holds no override
	DefaultFuelRate uint64 `toml:"defaultFuelRate"`
	// ForkV2Height activation height of the R2 feature fork
	ForkV2Height int64 `toml:"forkV2Height"`
	// ForkV3Height activation height of the R3 feature fork
	ForkV3Height int64 `toml:"forkV3Height"`
}

// DefaultConfig mainnet-flavored defaults; new forks stay disabled
func DefaultConfig() *Config {
	return &Config{
		Title:           "wicc",
		CoinSymbol:      "WICC",
		MinTxFee:        10000,
		MinRelayTxFee:   1000,
		DefaultFuelRate: 100,
		ForkV2Height:    1800000,
		ForkV3Height:    MaxHeight,
	}
}

// InitCfgString decodes a toml config over the defaults
func InitCfgString(cfgstring string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := tml.Decode(cfgstring, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitCfg reads and decodes the config file at path, panics on failure the
// way the node does at startup
func InitCfg(path string) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	cfg, err := InitCfgString(string(data))
	if err != nil {
		panic(err)
	}
	return cfg
}

var (
	mu   sync.RWMutex
	gcfg = DefaultConfig()
)

// SetConfig installs cfg as the process-wide chain config
func SetConfig(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	gcfg = cfg
}

// GetConfig the process-wide chain config
func GetConfig() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return gcfg
}

// GCoinSymbol base coin symbol
func GCoinSymbol() string { return GetConfig().CoinSymbol }

// GMinTxFee absolute fee floor
func GMinTxFee() uint64 { return GetConfig().MinTxFee }

// GMinRelayTxFee legacy per-KB relay floor
func GMinRelayTxFee() uint64 { return GetConfig().MinRelayTxFee }

// GDefaultFuelRate fallback fuel rate
func GDefaultFuelRate() uint64 { return GetConfig().DefaultFuelRate }
