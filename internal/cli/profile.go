package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tasklist/internal/profile"
	"github.com/idilsaglam/tasklist/internal/ui"
)

func newProfileCmd(opt *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := ui.Current()
			p := opt.app.Profile.Get()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", t.Muted.Render("username:"), p.Username)
			fmt.Fprintf(w, "%s %s\n", t.Muted.Render("job:     "), p.Job)
			if opt.app.Profile.NeedsPrompt() {
				fmt.Fprintln(w, t.Pending.Render("profile incomplete; run `tasklist profile set --username <name> --job <title>`"))
			}
			return nil
		},
	}
	cmd.AddCommand(newProfileSetCmd(opt))
	return cmd
}

func newProfileSetCmd(opt *Options) *cobra.Command {
	var username, job string
	cmd := &cobra.Command{
		Use:   "set --username <name> --job <title>",
		Short: "Edit the profile (both fields required)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cur := opt.app.Profile.Get()
			// Unset flags keep the current value, like a pre-filled form.
			if !cmd.Flags().Changed("username") {
				username = cur.Username
			}
			if !cmd.Flags().Changed("job") {
				job = cur.Job
			}
			if err := opt.app.Profile.Edit(username, job); err != nil {
				if errors.Is(err, profile.ErrIncomplete) {
					return fmt.Errorf("profile: %w", err)
				}
				return err
			}
			ui.OK(cmd.OutOrStdout(), "profile saved")
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Display name")
	cmd.Flags().StringVar(&job, "job", "", "Job title")
	return cmd
}
