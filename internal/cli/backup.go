package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sadopc/clientflow/internal/backup"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage raw data snapshots",
}

var backupNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Write a snapshot immediately",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer env.Close()

		mgr := backup.NewManager(env.Storage, cfg.Backup.Dir, cfg.Backup.Keep)
		path, err := mgr.Run()
		if err != nil {
			return err
		}
		fmt.Println("backup written to", path)
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List existing snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := backup.NewManager(nil, cfg.Backup.Dir, cfg.Backup.Keep)
		paths, err := mgr.List()
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			fmt.Println("no backups in", cfg.Backup.Dir)
			return nil
		}
		for _, p := range paths {
			fmt.Println(p)
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <snapshot>",
	Short: "Restore a snapshot, replacing current data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer env.Close()

		mgr := backup.NewManager(env.Storage, cfg.Backup.Dir, cfg.Backup.Keep)
		if err := mgr.Restore(args[0]); err != nil {
			return err
		}
		fmt.Println("restored", args[0])
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupNowCmd, backupListCmd, backupRestoreCmd)
	rootCmd.AddCommand(backupCmd)
}
