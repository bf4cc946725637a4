package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"taskman/internal/ops"
)

var (
	backupOut     string
	restoreTarget string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Archive the data directory to a .tar.gz",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := backupOut
		if out == "" {
			ts := time.Now().UTC().Format("20060102T150405Z")
			out = filepath.Join("backups", "taskman-"+ts+".tar.gz")
		}
		if err := ops.Backup(cfg.DataDir, out); err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore [archive]",
	Short: "Unpack a backup archive into a data directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return ops.Restore(args[0], restoreTarget)
	},
}

func init() {
	backupCmd.Flags().StringVarP(&backupOut, "out", "o", "", "output archive path (.tar.gz)")
	restoreCmd.Flags().StringVarP(&restoreTarget, "target-dir", "t", "data-restored", "restore target directory")
}
