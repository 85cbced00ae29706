package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folio-term/folio/internal/content"
	"github.com/folio-term/folio/internal/utils"
)

var (
	projectsFormat  string
	projectsSection string
	projectsNoColor bool
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the project and lab cards",
	Long: `Examples:
	folio projects                        # all cards with details
	folio projects --section labs         # lab activities only
	folio projects --format table         # tab separated
	folio projects --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := utils.ParseFormat(projectsFormat)
		if err != nil {
			return err
		}
		page, err := content.Load()
		if err != nil {
			return err
		}

		list := page.Projects
		if projectsSection != "" {
			list = page.InSection(projectsSection)
			if len(list) == 0 {
				return fmt.Errorf("no cards in section %q", projectsSection)
			}
		}

		rc := utils.DefaultRenderConfig()
		rc.Format = format
		rc.Color = !projectsNoColor
		s, err := utils.NewRenderer(rc).RenderProjects(list)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), s)
		return nil
	},
}

func init() {
	projectsCmd.Flags().StringVar(&projectsFormat, "format", "default", "Output format: default, table, json, csv, compact, quiet")
	projectsCmd.Flags().StringVar(&projectsSection, "section", "", "Only cards of this section (projects, labs)")
	projectsCmd.Flags().BoolVar(&projectsNoColor, "no-color", false, "Disable colored output")
}
