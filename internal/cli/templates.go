package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/logomaker/pkg/logo"
)

// templatesCommand lists the built-in templates.
func (c *CLI) templatesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the built-in style templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(templateTable(logo.TemplateNames(), logo.Templates()))
			printNewline()
			printNextStep("Apply one", "logomaker render --template tech --text \"Acme\"")
			return nil
		},
	}
}

// templateTable renders templates in the given order.
func templateTable(names []string, all map[string]logo.Template) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(names))
	for i, name := range names {
		t := all[name]
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			name,
			t.Shape.String(),
			swatch(t.ShapeColor),
			swatch(t.TextColor),
			swatch(t.BackgroundColor),
			fmt.Sprintf("%dpx %s %s", t.FontSize, t.FontWeight, t.FontFamily),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Template", "Shape", "Shape colour", "Text colour", "Background", "Font").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 1:
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			case col == 0 || col == 6:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
