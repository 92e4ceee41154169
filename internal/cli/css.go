package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/matzehuels/logomaker/pkg/render"
)

// cssCommand prints the embedding stylesheet for a logo.
func (c *CLI) cssCommand() *cobra.Command {
	var (
		style   styleFlags
		copyCSS bool
	)

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the CSS for embedding a logo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := style.store(cmd)
			if err != nil {
				return err
			}
			css := render.CSS(s.Config())

			if copyCSS {
				if err := clipboard.WriteAll(css); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				printSuccess("CSS copied to clipboard")
				return nil
			}
			fmt.Println(css)
			return nil
		},
	}

	style.register(cmd)
	cmd.Flags().BoolVarP(&copyCSS, "copy", "c", false, "copy to the clipboard instead of printing")
	return cmd
}
