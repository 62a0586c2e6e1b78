package commands

import (
	"reflect"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/gate/internal/adapters/binding"
	"go.trai.ch/gate/internal/app"
)

// sortOrder is the listing order for the routes command. Values are bound
// through the enum binder so typos are rejected instead of silently
// falling back to a default.
type sortOrder string

const (
	sortAscending  sortOrder = "asc"
	sortDescending sortOrder = "desc"
)

var sortOrders = func() *binding.Registry {
	r := binding.NewRegistry()
	if err := binding.RegisterValues(r, sortAscending, sortDescending); err != nil {
		panic(err)
	}
	return r
}()

func (c *CLI) newRoutesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the actions in the current route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, _ := cmd.Flags().GetString("order")

			binder, err := sortOrders.BinderFor(reflect.TypeOf(sortAscending))
			if err != nil {
				return err
			}
			var order sortOrder
			if err := binder.BindTo(raw, &order); err != nil {
				return err
			}

			routes, version := c.app.Routes()
			slices.SortFunc(routes, func(a, b app.RouteInfo) int {
				if order == sortDescending {
					a, b = b, a
				}
				return strings.Compare(a.Name, b.Name)
			})

			cmd.Printf("route table version %d, %d actions\n", version, len(routes))
			for _, r := range routes {
				cmd.Printf("  %s  %s  (%d constraints)\n", r.ID, r.Name, r.Constraints)
			}
			return nil
		},
	}

	cmd.Flags().StringP("order", "o", "asc", "Listing order: asc or desc")
	return cmd
}
