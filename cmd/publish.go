package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fiber-extras/core/cache"
	"fiber-extras/core/config"
	"fiber-extras/core/pubsub"

	"github.com/spf13/cobra"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish <topic> <json>",
	Short: "Publish a JSON message to a topic",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		mgr, err := cache.NewManager(cfg.Redis)
		if err != nil {
			return err
		}
		defer mgr.Close()

		rawAttrs, _ := cmd.Flags().GetStringSlice("attr")
		attrs, err := parseAttributes(rawAttrs)
		if err != nil {
			return err
		}

		pub := pubsub.NewRedisPublisher(mgr.Client(), cfg.PubSub)
		return runPublish(cmd.Context(), cmd.OutOrStdout(), pub, args[0], args[1], attrs)
	},
}

func runPublish(ctx context.Context, out io.Writer, pub pubsub.Publisher, topic, body string, attrs map[string]string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if !json.Valid([]byte(body)) {
		return fmt.Errorf("message is not valid JSON")
	}

	id, err := pub.Publish(ctx, topic, json.RawMessage(body), attrs)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, id)
	return err
}

// parseAttributes turns key=value pairs into a map.
func parseAttributes(pairs []string) (map[string]string, error) {
	attrs := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid attribute %q, want key=value", p)
		}
		attrs[k] = v
	}
	return attrs, nil
}

func init() {
	publishCmd.Flags().StringSlice("attr", nil, "Message attribute as key=value (repeatable)")
	RootCmd.AddCommand(publishCmd)
}
