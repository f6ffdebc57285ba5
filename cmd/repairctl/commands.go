package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/canyfix/repairdesk/internal/gate"
	"github.com/spf13/cobra"
)

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <job>",
		Short: "Show a job, unmasked when logged in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.newGate(args[0])
			if err != nil {
				return err
			}
			if _, err := g.Load(cmd.Context()); err != nil {
				return err
			}
			return printJob(cmd.OutOrStdout(), g)
		},
	}
}

func (a *app) loginCmd() *cobra.Command {
	login := &cobra.Command{
		Use:   "login",
		Short: "Log in with a code sent to your phone",
	}

	login.AddCommand(&cobra.Command{
		Use:   "send <job> <phone>",
		Short: "Send a login code to your phone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.newGate(args[0])
			if err != nil {
				return err
			}
			if err := g.SendLoginOTP(cmd.Context(), args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Login code sent")
			return nil
		},
	})

	login.AddCommand(&cobra.Command{
		Use:   "verify <job> <phone> <code>",
		Short: "Verify the login code and unmask the job",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.newGate(args[0])
			if err != nil {
				return err
			}
			if err := g.ResumeLogin(args[1]); err != nil {
				return err
			}
			if err := g.VerifyLogin(cmd.Context(), args[2]); err != nil {
				return err
			}
			return printJob(cmd.OutOrStdout(), g)
		},
	})

	return login
}

func (a *app) startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <job>",
		Short: "Mark the job Work In Progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadedGate(cmd, args[0])
			if err != nil {
				return err
			}
			if err := g.StartJob(cmd.Context()); err != nil {
				return err
			}
			return printJob(cmd.OutOrStdout(), g)
		},
	}
}

func (a *app) closeCmd() *cobra.Command {
	closeJob := &cobra.Command{
		Use:   "close",
		Short: "Complete a job with the customer's code",
	}

	closeJob.AddCommand(&cobra.Command{
		Use:   "send <job>",
		Short: "Send the completion code to the customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadedGate(cmd, args[0])
			if err != nil {
				return err
			}
			if err := g.SendCloseOTP(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completion code sent to %s\n", g.Job().CustomerPhone)
			return nil
		},
	})

	closeJob.AddCommand(&cobra.Command{
		Use:   "verify <job> <code>",
		Short: "Complete the job with the code the customer read out",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadedGate(cmd, args[0])
			if err != nil {
				return err
			}
			if err := g.CloseJob(cmd.Context(), args[1]); err != nil {
				return err
			}
			return printJob(cmd.OutOrStdout(), g)
		},
	})

	return closeJob
}

func (a *app) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout <job>",
		Short: "Forget the stored access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.newGate(args[0])
			if err != nil {
				return err
			}
			if err := g.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (a *app) loadedGate(cmd *cobra.Command, jobArg string) (*gate.Gate, error) {
	g, err := a.newGate(jobArg)
	if err != nil {
		return nil, err
	}
	if _, err := g.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return g, nil
}

func printJob(out io.Writer, g *gate.Gate) error {
	job := g.Job()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "Job\t#%d\n", job.ID)
	fmt.Fprintf(w, "Status\t%s\n", job.Status)
	fmt.Fprintf(w, "Access\t%s\n", g.State())
	fmt.Fprintf(w, "Customer\t%s\n", job.CustomerName)
	fmt.Fprintf(w, "Phone\t%s\n", job.CustomerPhone)
	fmt.Fprintf(w, "Address\t%s\n", job.Address)
	if job.MobileRepair {
		fmt.Fprintf(w, "Device\t%s %s\n", job.MobileBrand, job.MobileModel)
		if job.MobileIssue != "" {
			fmt.Fprintf(w, "Issue\t%s\n", job.MobileIssue)
		}
	}
	for _, issue := range job.ServiceIssues {
		fmt.Fprintf(w, "Service\t%s\t%.2f\n", issue.IssueName, issue.Price)
	}
	if len(job.ServiceIssues) > 0 {
		fmt.Fprintf(w, "Total\t%.2f\n", job.Total())
	}
	fmt.Fprintf(w, "Actions\t%s\n", actions(g))
	return w.Flush()
}

func actions(g *gate.Gate) string {
	switch {
	case g.CanStart():
		return "start"
	case g.CanClose():
		return "close send, close verify"
	case g.Job().IsCompleted():
		return "none, job completed"
	case g.State() == gate.Masked:
		return "login send, login verify"
	default:
		return "none"
	}
}
