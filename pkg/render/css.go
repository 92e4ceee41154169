package render

import (
	"fmt"
	"strings"

	"github.com/matzehuels/logomaker/pkg/logo"
)

// CSS returns the style-text block for embedding the logo in a web page.
// The output is a deterministic function of cfg.
func CSS(cfg logo.Config) string {
	var b strings.Builder
	b.WriteString("/* Logo CSS */\n")
	b.WriteString(".logo {\n")
	b.WriteString("    width: 200px;\n")
	b.WriteString("    height: 200px;\n")
	b.WriteString("    display: inline-block;\n")
	b.WriteString("}\n\n")

	b.WriteString(".logo-shape {\n")
	fmt.Fprintf(&b, "    fill: %s;\n", cfg.ShapeColor)
	b.WriteString("    filter: drop-shadow(2px 2px 3px rgba(0,0,0,0.2));\n")
	b.WriteString("}\n\n")

	b.WriteString(".logo-text {\n")
	fmt.Fprintf(&b, "    fill: %s;\n", cfg.TextColor)
	fmt.Fprintf(&b, "    font-family: %s;\n", cfg.FontFamily)
	fmt.Fprintf(&b, "    font-size: %dpx;\n", cfg.FontSize)
	fmt.Fprintf(&b, "    font-weight: %s;\n", cfg.FontWeight)
	b.WriteString("    text-anchor: middle;\n")
	b.WriteString("}")
	return b.String()
}
