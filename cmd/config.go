package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/infobar/internal/config"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString(FlagConfigDir)

			cfg, err := config.Load(dir, loadOptions(cmd)...)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "app_id:          %s\n", cfg.AppID)
			fmt.Fprintf(out, "environment:     %s\n", cfg.Environment)
			fmt.Fprintf(out, "log_level:       %s\n", cfg.LogLevel)
			fmt.Fprintf(out, "short_duration:  %s\n", cfg.Timing.ShortDuration)
			fmt.Fprintf(out, "long_duration:   %s\n", cfg.Timing.LongDuration)
			fmt.Fprintf(out, "exit_buffer:     %s\n", cfg.Timing.ExitBuffer)
			fmt.Fprintf(out, "probe_interval:  %s\n", cfg.Timing.ProbeInterval)
			return nil
		},
	}
}
