package cli

import (
	"net/url"

	"github.com/spf13/cobra"
)

func newPlaceCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "places",
		Short: "List the place catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/places"
			if category != "" {
				path += "?category=" + url.QueryEscape(category)
			}

			var result PlaceList
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")

	return cmd
}

func newCourseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "courses [name]",
		Short: "List the recommended courses, or show one by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)

			if len(args) == 1 {
				var result Course
				if err := client.Get("/api/v1/courses/"+url.PathEscape(args[0]), &result); err != nil {
					return err
				}
				out.Print(CourseList{result})
				return nil
			}

			var result CourseList
			if err := client.Get("/api/v1/courses", &result); err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}
}
