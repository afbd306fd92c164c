package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"quad/internal/presentation"
)

var (
	coursesOpenOnly    bool
	coursesDepartments bool
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the course catalog as JSON",
	Long: `List the course catalog as JSON, without starting the chat UI.

Examples:
  # List all courses
  quad courses

  # Only courses with open seats
  quad courses --open

  # List departments instead
  quad courses --departments

  # Parse specific fields with jq
  quad courses | jq '.[].code'
  quad courses --open | jq '.[] | {code, spots_left}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := loadCatalog()
		if err != nil {
			return err
		}

		formatter := presentation.NewFormatter(os.Stdout)

		if coursesDepartments {
			return formatter.FormatDepartments(presentation.FromDepartments(store.Departments()))
		}

		dtos := presentation.FromCourses(store.All())
		if coursesOpenOnly {
			open := make([]presentation.CourseDTO, 0, len(dtos))
			for _, dto := range dtos {
				if dto.Available {
					open = append(open, dto)
				}
			}
			dtos = open
		}

		return formatter.FormatCourses(dtos)
	},
}

func init() {
	coursesCmd.Flags().BoolVar(&coursesOpenOnly, "open", false, "only list courses with open seats")
	coursesCmd.Flags().BoolVar(&coursesDepartments, "departments", false, "list departments instead of courses")
	rootCmd.AddCommand(coursesCmd)
}
