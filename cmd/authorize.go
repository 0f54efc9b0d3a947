package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fiber-extras/core/cache"
	"fiber-extras/core/config"
	"fiber-extras/core/security"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// authorizeCmd represents the authorize command
var authorizeCmd = &cobra.Command{
	Use:   "authorize <token>",
	Short: "Check a token against the configured authority",
	Long: `Sends one authorization request for the given token, as if it arrived on
--method --path, and prints the authorization context. The configured decision
cache is consulted first, so a cached decision is answered without a call.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cfg.Auth.Enabled() {
			return fmt.Errorf("AUTH_URL is not set")
		}

		var mgr *cache.Manager
		if strings.EqualFold(cfg.Auth.Cache, "redis") {
			mgr, err = cache.NewManager(cfg.Redis)
			if err != nil {
				return err
			}
			defer mgr.Close()
		}

		authz, err := newAuthorizer(cfg, mgr, zap.L())
		if err != nil {
			return err
		}

		method, _ := cmd.Flags().GetString("method")
		path, _ := cmd.Flags().GetString("path")

		return runAuthorize(cmd.Context(), cmd.OutOrStdout(), authz, method, path, args[0])
	},
}

func runAuthorize(ctx context.Context, out io.Writer, authz *security.Authorizer, method, path, token string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	info := security.RequestInfo{
		Method:      strings.ToUpper(method),
		Path:        path,
		QueryParams: map[string]string{},
		Headers:     map[string]string{},
		Cookies:     map[string]string{},
	}

	data, err := authz.Authorize(ctx, info, token)
	if err != nil {
		return err
	}

	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func init() {
	authorizeCmd.Flags().String("method", "GET", "HTTP method reported to the authority")
	authorizeCmd.Flags().String("path", "/", "Request path reported to the authority")
	RootCmd.AddCommand(authorizeCmd)
}
