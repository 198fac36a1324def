package cli

import (
	"github.com/spf13/cobra"
)

func newRouteCmd() *cobra.Command {
	var originLat, originLng, destLat, destLng float64
	var destPlace, mode string

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Estimate a route's distance and travel time",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"origin_lat": originLat,
				"origin_lng": originLng,
				"dest_lat":   destLat,
				"dest_lng":   destLng,
				"mode":       mode,
			}
			if destPlace != "" {
				req["dest_place"] = destPlace
			}

			var result RouteResult
			if err := client.Post("/api/v1/routes/estimate", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&originLat, "from-lat", 0, "Origin latitude (required)")
	cmd.Flags().Float64Var(&originLng, "from-lng", 0, "Origin longitude (required)")
	cmd.Flags().Float64Var(&destLat, "to-lat", 0, "Destination latitude")
	cmd.Flags().Float64Var(&destLng, "to-lng", 0, "Destination longitude")
	cmd.Flags().StringVar(&destPlace, "to-place", "", "Destination catalog place (overrides --to-lat/--to-lng)")
	cmd.Flags().StringVar(&mode, "mode", "walk", "Transport mode: walk, transit, car")
	_ = cmd.MarkFlagRequired("from-lat")
	_ = cmd.MarkFlagRequired("from-lng")

	return cmd
}
