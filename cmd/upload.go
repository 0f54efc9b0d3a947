package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"fiber-extras/core/config"
	"fiber-extras/core/storage"

	"github.com/spf13/cobra"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <source> [destination]",
	Short: "Upload a local file to the storage bucket",
	Long:  `Uploads a local file. The destination defaults to the file's base name.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		bucket, _ := cmd.Flags().GetString("bucket")
		if bucket == "" {
			bucket = cfg.Storage.Bucket
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		destination := ""
		if len(args) == 2 {
			destination = args[1]
		}
		return runUpload(cmd.Context(), cmd.OutOrStdout(), storage.NewUploader(client, cfg.Storage.Region), bucket, args[0], destination)
	},
}

func runUpload(ctx context.Context, out io.Writer, up *storage.Uploader, bucket, source, destination string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if destination == "" {
		destination = filepath.Base(source)
	}

	if _, err := up.EnsureBucket(ctx, bucket); err != nil {
		return err
	}
	info, err := up.Upload(ctx, bucket, destination, source)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "uploaded %s to %s/%s (%d bytes)\n", source, bucket, destination, info.Size)
	return err
}

func init() {
	uploadCmd.Flags().String("bucket", "", "Target bucket (defaults to STORAGE_BUCKET)")
	RootCmd.AddCommand(uploadCmd)
}
