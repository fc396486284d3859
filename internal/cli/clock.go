package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tasklist/internal/clock"
)

func newClockCmd(opt *Options) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Print the date and time every second until interrupted",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			skipStorage: "true",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			ticks := make(chan time.Time)
			quit := make(chan struct{})
			h := clock.Every(time.Second, func(now time.Time) {
				select {
				case ticks <- now:
				case <-quit:
				}
			})
			defer func() {
				close(quit)
				h.Stop()
				<-h.Done()
			}()

			n := 0
			defer func() { opt.logger.Debug("clock stopped", "ticks", n) }()
			for ; count <= 0 || n < count; n++ {
				select {
				case <-cmd.Context().Done():
					return nil
				case now := <-ticks:
					fmt.Fprintf(w, "%s  %s\n", clock.FormatDate(now), clock.FormatTime(now))
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Stop after n updates (0 = run until interrupted)")
	return cmd
}
