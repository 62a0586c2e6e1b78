package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <action>",
		Short: "Resolve the constraints that apply to an action for a simulated request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, _ := cmd.Flags().GetString("method")
			headers, _ := cmd.Flags().GetStringSlice("header")
			contentLength, _ := cmd.Flags().GetInt64("content-length")

			req := &domain.RequestContext{
				Method:        method,
				Headers:       make(map[string]string, len(headers)),
				ContentLength: contentLength,
			}
			for _, h := range headers {
				key, value, ok := strings.Cut(h, "=")
				if !ok {
					return zerr.With(zerr.New("header flag must be key=value"), "header", h)
				}
				req.Headers[key] = value
			}

			result, err := c.app.Resolve(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}

			cmd.Printf("action:      %s (%s)\n", result.Action.Name.String(), result.Action.ID)
			cmd.Printf("constraints: %d\n", len(result.Constraints))
			if req.FormLimits != nil {
				cmd.Printf("form limits: max body %d bytes, max values %d\n",
					req.FormLimits.MaxRequestBodySize, req.FormLimits.MaxValueCount)
			}
			if result.Matched {
				cmd.Println("request:     accepted")
			} else {
				cmd.Println("request:     rejected")
			}
			return nil
		},
	}

	cmd.Flags().StringP("method", "m", "GET", "Request method to simulate")
	cmd.Flags().StringSliceP("header", "H", nil, "Request header as key=value (repeatable)")
	cmd.Flags().Int64P("content-length", "l", -1, "Request content length to simulate")
	return cmd
}
