package config

import (
	"encoding/json"
	"fmt"
	"os"

	"buildease/internal/domain"
)

// defaultRates are the built-in per-sq-ft market rates (INR). A deployment can
// override them with a JSON file pointed at by RATES_FILE.
var defaultRates = domain.RateTable{
	Cities: map[string]domain.CityRates{
		"bangalore": {Basic: 1500, Mid: 1800, Premium: 2200},
		"mumbai":    {Basic: 1800, Mid: 2200, Premium: 2700},
		"delhi":     {Basic: 1600, Mid: 2000, Premium: 2500},
	},
	ForeignMultiplier: 1.4,
}

// LoadRates resolves the market-rate table once at startup so services receive
// it as injected configuration rather than reading globals.
func LoadRates(cfg *Config) (domain.RateTable, error) {
	if cfg.RatesFile == "" {
		return defaultRates, nil
	}

	data, err := os.ReadFile(cfg.RatesFile)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("failed to read rates file: %w", err)
	}

	var table domain.RateTable
	if err := json.Unmarshal(data, &table); err != nil {
		return domain.RateTable{}, fmt.Errorf("failed to parse rates file: %w", err)
	}
	if len(table.Cities) == 0 {
		return domain.RateTable{}, fmt.Errorf("rates file %s defines no cities", cfg.RatesFile)
	}
	if table.ForeignMultiplier == 0 {
		table.ForeignMultiplier = defaultRates.ForeignMultiplier
	}

	return table, nil
}
