package main

import (
	"fmt"
	"io/ioutil"
	"math/big"

	"gopkg.in/yaml.v2"
)

// Config specifies the file format of config files.
type Config struct {
	PrimeBits uint `yaml:"prime-bits"` // Trapdoor prime size for fresh setups.

	P string `yaml:"p"` // Optional hex-encoded safe prime.
	Q string `yaml:"q"` // Optional hex-encoded safe prime, required with p.
	p *big.Int
	q *big.Int

	DatabaseFile string `yaml:"db"`      // Optional LevelDB path for witnesses.
	MetricsAddr  string `yaml:"metrics"` // Optional metrics/debug listener address.
	Loop         int    `yaml:"loop"`    // Scenario iterations, default 1.
}

func ReadConfig(filename string) (*Config, error) {
	// Read from file and parse.
	raw, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var parsed Config
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	// Check that all required fields are populated.
	if (parsed.P == "") != (parsed.Q == "") {
		return nil, fmt.Errorf("fields p and q must be provided together")
	}
	if parsed.P == "" && parsed.PrimeBits == 0 {
		return nil, fmt.Errorf("field not provided: prime-bits")
	}
	if parsed.Loop < 0 {
		return nil, fmt.Errorf("field loop must not be negative")
	}
	if parsed.Loop == 0 {
		parsed.Loop = 1
	}

	// Parse the supplied primes if necessary.
	if parsed.P != "" {
		if parsed.p, err = parsePrime("p", parsed.P); err != nil {
			return nil, err
		}
		if parsed.q, err = parsePrime("q", parsed.Q); err != nil {
			return nil, err
		}
	}

	return &parsed, nil
}

func parsePrime(name, value string) (*big.Int, error) {
	out, ok := new(big.Int).SetString(value, 16)
	if !ok {
		return nil, fmt.Errorf("failed to parse field %v as hex", name)
	}
	return out, nil
}
