package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVisitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visit",
		Short: "Visit ledger commands",
	}

	cmd.AddCommand(newVisitRecordCmd())
	cmd.AddCommand(newVisitListCmd())
	cmd.AddCommand(newVisitStatsCmd())
	cmd.AddCommand(newVisitRateCmd())

	return cmd
}

func newVisitRecordCmd() *cobra.Command {
	var place string
	var lat, lng float64

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a visit to a place",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"place_name": place,
				"latitude":   lat,
				"longitude":  lng,
			}
			var result RecordVisitResult

			if err := client.Post("/api/v1/visits", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&place, "place", "", "Place name (required)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude")
	_ = cmd.MarkFlagRequired("place")

	return cmd
}

func newVisitListCmd() *cobra.Command {
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded visits",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/visits"
			if sortBy != "" {
				path += "?sort=" + sortBy
			}

			var result VisitList
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "Sort order: recent, xp")

	return cmd
}

func newVisitStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show visit statistics and level progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StatsResult

			if err := client.Get("/api/v1/visits/stats", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newVisitRateCmd() *cobra.Command {
	var index, rating int

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Rate a recorded visit (1-5)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"rating": rating}
			path := fmt.Sprintf("/api/v1/visits/%d/rating", index)

			if err := client.Patch(path, req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Rating saved")
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "Visit index, as shown by 'visit list' (required)")
	cmd.Flags().IntVar(&rating, "rating", 0, "Rating from 1 to 5 (required)")
	_ = cmd.MarkFlagRequired("index")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}
