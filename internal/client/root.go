package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-case-tracker/models"
)

func (a *App) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "client",
		Short:             "Command line client of the case tracker",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.connect,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.ServerURL, "server", "s", "", "server URL")
	pf.StringVarP(&a.flags.Username, "user", "u", "", "username")
	pf.StringVarP(&a.flags.Password, "password", "p", "", "password")
	pf.DurationVar(&a.flags.RequestTimeout, "timeout", 0, "request timeout (e.g. 30s)")
	pf.StringVar(&a.flags.LogLevel, "log-level", "", "log level")

	root.AddCommand(
		a.healthCmd(),
		a.signupCmd(),
		a.casesCmd(),
		a.filesCmd(),
		a.watchCmd(),
		a.versionCmd(),
	)
	return root
}

func (a *App) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the server is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			health, err := a.api.Health(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(health)
		},
	}
}

func (a *App) signupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "signup",
		Short: "Register the configured user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.requireCredentials(); err != nil {
				return err
			}
			user, err := a.api.Signup(cmd.Context(), a.creds)
			if err != nil {
				return err
			}
			return a.print(user)
		},
	}
}

func (a *App) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print case creation events until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.api.WatchCases(cmd.Context(), func(p models.CaseCreatedPayload) {
				if err := a.print(p); err != nil {
					a.logger.Warn().Err(err).Msg("print event")
				}
			})
		},
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// no server involved
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(a.out, a.version)
			return err
		},
	}
}
