package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/logomaker/pkg/geometry"
	"github.com/matzehuels/logomaker/pkg/logo"
	"github.com/matzehuels/logomaker/pkg/shape"
)

// shapesCommand lists the shapes in canonical order.
func (c *CLI) shapesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the available shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range shape.Kinds() {
				g, err := geometry.Compute(k, geometry.ForShapeSize(logo.DefaultShapeSize))
				if err != nil {
					return err
				}
				desc := g.Kind()
				if n := geometry.VertexCount(g); n > 1 {
					desc = fmt.Sprintf("%s, %d vertices", desc, n)
				}
				printKeyValue(strconv.Itoa(k.Index())+" "+k.String(), desc)
			}
			return nil
		},
	}
}

// geometryCommand prints the outline of one shape as JSON.
func (c *CLI) geometryCommand() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:       "geometry <shape>",
		Short:     "Print the geometry of a shape as JSON",
		Example:   "  logomaker geometry star --size 200",
		Args:      cobra.ExactArgs(1),
		ValidArgs: shape.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := geometry.ComputeNamed(args[0], geometry.ForShapeSize(size))
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(g, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", logo.DefaultShapeSize, "outer shape size in px")
	return cmd
}
