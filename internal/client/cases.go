package client

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-case-tracker/models"
)

func (a *App) casesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cases",
		Short: "Manage cases",
	}
	cmd.AddCommand(
		a.casesListCmd(),
		a.casesGetCmd(),
		a.casesCreateCmd(),
		a.casesUpdateCmd(),
		a.casesDeleteCmd(),
	)
	return cmd
}

func (a *App) casesListCmd() *cobra.Command {
	var page, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cases page by page",
		Args:  cobra.NoArgs,
		RunE: a.sessionRunE(func(ctx context.Context, _ []string) error {
			result, err := a.api.ListCases(ctx, page, limit)
			if err != nil {
				return err
			}
			return a.print(result)
		}),
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 10, "page size")
	return cmd
}

func (a *App) casesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one case",
		Args:  requireArg("case id"),
		RunE: a.sessionRunE(func(ctx context.Context, args []string) error {
			c, err := a.api.GetCase(ctx, args[0])
			if err != nil {
				return err
			}
			return a.print(c)
		}),
	}
}

func (a *App) casesCreateCmd() *cobra.Command {
	input := &models.CaseUpdate{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new case",
		Args:  cobra.NoArgs,
		RunE: a.sessionRunE(func(ctx context.Context, _ []string) error {
			c, err := a.api.CreateCase(ctx, models.CaseInput(*input))
			if err != nil {
				return err
			}
			return a.print(c)
		}),
	}
	bindCaseFlags(cmd.Flags(), input)
	return cmd
}

func (a *App) casesUpdateCmd() *cobra.Command {
	update := &models.CaseUpdate{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the fields given as flags",
		Args:  requireArg("case id"),
		RunE: a.sessionRunE(func(ctx context.Context, args []string) error {
			c, err := a.api.UpdateCase(ctx, args[0], *update)
			if err != nil {
				return err
			}
			return a.print(c)
		}),
	}
	bindCaseFlags(cmd.Flags(), update)
	return cmd
}

func (a *App) casesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a case",
		Args:  requireArg("case id"),
		RunE: a.sessionRunE(func(ctx context.Context, args []string) error {
			if err := a.api.DeleteCase(ctx, args[0]); err != nil {
				return err
			}
			return a.print(models.Response{Success: true, Message: "Case deleted successfully"})
		}),
	}
}

// bindCaseFlags binds the editable case fields. Unset flags stay blank.
func bindCaseFlags(fs *pflag.FlagSet, u *models.CaseUpdate) {
	fs.StringVar(&u.Title, "title", "", "case title")
	fs.StringVar(&u.Description, "description", "", "case description")
	fs.StringVar((*string)(&u.Status), "status", "", "Open, In Progress or Closed")
	fs.StringVar((*string)(&u.Priority), "priority", "", "High, Medium or Low")
}
