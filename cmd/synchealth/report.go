package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/spacemeshos/synchealth/healthlog"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "summarize the health log per peer",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		records, err := healthlog.ReadAll(afero.NewOsFs(), cfg.Health.Path)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PEER\tRUNS\tIN SYNC\tERRORS\tPRIMARY\tPEER COUNT\tTRANSFERRED\tFAILED\tLAST SEEN")
		for _, s := range healthlog.Summarize(records) {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
				s.Peer, s.Runs, s.InSync, s.Errors,
				s.LastStats.Primary, s.LastStats.Peer,
				s.TransferredOK, s.TransfersFailed,
				s.LastSeen.Format(time.RFC3339),
			)
		}
		return w.Flush()
	},
}

func init() {
	fs := reportCmd.Flags()
	fs.String("out", defaults.Health.Path, "health log path")
	bind(fs, "out", "health.path")
}
