// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/g3n/sceneindex/compose"
)

// buildConfig is the optional YAML config file accepted by "build", for
// settings that are awkward as flags (the skip-files/max-files gates in
// particular are meant to be checked into a project, not typed by hand
// every run).
type buildConfig struct {
	MaxDepth    int  `yaml:"maxDepth"`
	SkipFiles   int  `yaml:"skipFiles"`
	MaxFiles    *int `yaml:"maxFiles"`
	FlushEveryN int  `yaml:"flushEveryN"`
}

func loadBuildConfig(fs afero.Fs, path string) (buildConfig, error) {
	var cfg buildConfig
	if path == "" {
		return cfg, nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c buildConfig) toOptions() compose.Options {
	opts := compose.DefaultOptions()
	if c.MaxDepth > 0 {
		opts.MaxDepth = c.MaxDepth
	}
	opts.SkipFiles = c.SkipFiles
	if c.MaxFiles != nil {
		opts.MaxFiles = c.MaxFiles
	}
	if c.FlushEveryN > 0 {
		opts.FlushEveryN = c.FlushEveryN
	}
	return opts
}
