// Package configs holds the files shipped inside the binaries: the default
// configuration and the seed data set.
package configs

import "embed"

// DefaultConfig is the base configuration every deployment starts from.
//
//go:embed config.yaml
var DefaultConfig []byte

// SeedData contains the initial categories and questions.
//
//go:embed seed_data/*.json
var SeedData embed.FS

// SeedFile is the path of the default data set inside SeedData.
const SeedFile = "seed_data/trivia.json"
