package client

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (a *App) filesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files",
		Short: "Upload and download attachments",
	}
	cmd.AddCommand(
		a.filesListCmd(),
		a.filesUploadCmd(),
		a.filesDownloadCmd(),
	)
	return cmd
}

func (a *App) filesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored files",
		Args:  cobra.NoArgs,
		RunE: a.sessionRunE(func(ctx context.Context, _ []string) error {
			files, err := a.api.ListFiles(ctx)
			if err != nil {
				return err
			}
			return a.print(files)
		}),
	}
}

func (a *App) filesUploadCmd() *cobra.Command {
	var contentType string

	cmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Upload a local file",
		Args:  requireArg("file path"),
		RunE: a.sessionRunE(func(ctx context.Context, args []string) error {
			path := args[0]
			ct := contentType
			if ct == "" {
				ct = mime.TypeByExtension(filepath.Ext(path))
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open upload: %w", err)
			}
			defer f.Close()

			stored, err := a.api.UploadFile(ctx, filepath.Base(path), ct, f)
			if err != nil {
				return err
			}
			return a.print(stored)
		}),
	}
	cmd.Flags().StringVar(&contentType, "type", "", "content type (guessed from the extension when empty)")
	return cmd
}

func (a *App) filesDownloadCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Download a stored file",
		Args:  requireArg("file id"),
		RunE: a.sessionRunE(func(ctx context.Context, args []string) error {
			return a.download(ctx, args[0], output)
		}),
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (defaults to the stored file name)")
	return cmd
}
