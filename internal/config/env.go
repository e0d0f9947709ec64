// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultEnvFile is loaded when ENV_FILE is not set.
const defaultEnvFile = ".env"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv exports the variables of a dotenv file into the process
// environment without overriding variables that are already set.
//
// An empty path selects ".env". A missing default file is ignored, while a
// missing explicitly requested file is reported.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}

	return nil
}
