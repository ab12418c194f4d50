// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/g3n/sceneindex/compose"
	"github.com/g3n/sceneindex/sceneidx"
)

var (
	buildOutput      string
	buildTempDir     string
	buildConfigPath  string
	buildMaxDepth    int
	buildSkipFiles   int
	buildMaxFiles    int
	buildHasMaxFiles bool
	buildFlushEveryN int
)

var buildCmd = &cobra.Command{
	Use:   "build <root-stage>",
	Short: "Walk a root stage and write its scene index",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "scene.idx", "output index path")
	buildCmd.Flags().StringVar(&buildTempDir, "temp-dir", "/tmp", "directory for transient shard files")
	buildCmd.Flags().StringVar(&buildConfigPath, "config", "", "optional YAML config file")
	buildCmd.Flags().IntVar(&buildMaxDepth, "max-depth", 0, "recursion limit (0 = default 32)")
	buildCmd.Flags().IntVar(&buildSkipFiles, "skip-files", 0, "exclude meshes from the first N discovered files")
	buildCmd.Flags().IntVar(&buildMaxFiles, "max-files", -1, "refuse to load more than N distinct files (unset = unbounded)")
	buildCmd.Flags().IntVar(&buildFlushEveryN, "flush-every", 0, "writer buffer flush threshold (0 = default 1000)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	fs := afero.NewOsFs()

	cfg, err := loadBuildConfig(fs, buildConfigPath)
	if err != nil {
		return err
	}
	opts := cfg.toOptions()

	if buildMaxDepth > 0 {
		opts.MaxDepth = buildMaxDepth
	}
	if buildSkipFiles > 0 {
		opts.SkipFiles = buildSkipFiles
	}
	if cmd.Flags().Changed("max-files") {
		n := buildMaxFiles
		opts.MaxFiles = &n
	}
	if buildFlushEveryN > 0 {
		opts.FlushEveryN = buildFlushEveryN
	}

	writer := sceneidx.NewWriter(fs, buildTempDir, buildOutput, opts.FlushEveryN)
	engine := compose.NewEngine(fs, writer, opts)

	rootPath := args[0]
	logrus.WithField("root", rootPath).Info("starting scene traversal")
	if err := engine.Run(rootPath); err != nil {
		return fmt.Errorf("traversing %s: %w", rootPath, err)
	}
	if err := writer.Finalize(); err != nil {
		return fmt.Errorf("finalizing index: %w", err)
	}

	logrus.WithField("output", buildOutput).Info("wrote scene index")
	return nil
}
