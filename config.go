// Copyright (c) 2012 by Christoph Hack <christoph@tux21b.org>
// All rights reserved. Distributed under the Simplified BSD License.

package chesscore

import "github.com/BurntSushi/toml"

// RulesConfig selects the FEN validation rules and the strictness of the
// draw-by-repetition/50-move detection in Board.EndResult (§4.F, §8
// scenario (c)). The zero value behaves as traditional rules without the
// stricter optional draw claims.
type RulesConfig struct {
	// Rules selects the FEN validator's rules profile. Only "traditional"
	// is specified; the field exists so a rules selector is plumbed end
	// to end even though variants are a declared Non-goal.
	Rules string `toml:"rules"`

	// UseStrictRules enables the 50-move and threefold-repetition draw
	// claims in Board.EndResult (as opposed to the unconditional 75-move
	// and fivefold-repetition rules).
	UseStrictRules bool `toml:"use_strict_rules"`
}

// DefaultRulesConfig is the zero-value-equivalent traditional rule set.
func DefaultRulesConfig() RulesConfig {
	return RulesConfig{Rules: "traditional", UseStrictRules: false}
}

func (c RulesConfig) rulesOrDefault() string {
	if c.Rules == "" {
		return "traditional"
	}
	return c.Rules
}

// LoadRulesConfig reads a RulesConfig from a TOML file at path.
func LoadRulesConfig(path string) (RulesConfig, error) {
	cfg := DefaultRulesConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return RulesConfig{}, err
	}
	if cfg.Rules == "" {
		cfg.Rules = "traditional"
	}
	return cfg, nil
}
