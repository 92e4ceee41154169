package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/pipeline"
	"github.com/matzehuels/logomaker/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	style    styleFlags
	formats  string // comma-separated export formats
	output   string // output file (single format), directory, or "-" for stdout
	pixels   int    // PNG edge length
	noShadow bool   // omit the drop shadow
	noCache  bool   // bypass the cache entirely
	refresh  bool   // re-render even when cached
}

// renderCommand creates the render command for exporting a logo.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export a logo as SVG, PNG, PDF, CSS or JSON",
		Example: `  logomaker render --text "Acme Robotics" --template tech
  logomaker render --file acme.toml -f svg,png --pixels 1024 -o dist/
  logomaker render --shape star -f css -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, &opts)
		},
	}

	opts.style.register(cmd)
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "svg", "output format(s): svg, png, pdf, css, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), directory, or - for stdout")
	cmd.Flags().IntVar(&opts.pixels, "pixels", render.DefaultPixels, "PNG width and height in pixels")
	cmd.Flags().BoolVar(&opts.noShadow, "no-shadow", false, "omit the drop shadow")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletion(formatNames()))

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	pipeOpts, err := opts.style.options(cmd)
	if err != nil {
		return err
	}
	formats, err := render.ParseFormats(opts.formats)
	if err != nil {
		return err
	}
	pipeOpts.Formats = formats
	pipeOpts.Pixels = opts.pixels
	pipeOpts.NoShadow = opts.noShadow
	pipeOpts.Refresh = opts.refresh
	pipeOpts.Logger = logger

	if opts.output == "-" && len(formats) > 1 {
		return fmt.Errorf("stdout output needs a single format, got %d", len(formats))
	}

	st, err := c.loadSettings()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(cmd, st, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(result.Artifacts)))

	return writeArtifacts(ctx, result, formats, opts.output)
}

// writeArtifacts writes every rendered format. Paths follow outputPath.
func writeArtifacts(ctx context.Context, result *pipeline.Result, formats []render.Format, output string) error {
	logger := loggerFromContext(ctx)
	if output == "-" {
		_, err := os.Stdout.Write(result.Artifacts[formats[0]])
		return err
	}

	for _, f := range formats {
		name := result.Filename(f)
		if err := apperr.ValidatePath(name); err != nil {
			return err
		}
		path := outputPath(output, name, len(formats))
		data := result.Artifacts[f]
		if err := writeFile(path, data); err != nil {
			return err
		}
		logger.Debugf("Wrote %s (%d bytes)", path, len(data))
		printFile(path, len(data), result.Cached[f])
	}
	return nil
}

// outputPath resolves where an artifact named name is written. An output
// with a file extension is used as-is for a single format; anything else is
// treated as a directory.
func outputPath(output, name string, count int) string {
	if output == "" {
		return name
	}
	if count == 1 && filepath.Ext(output) != "" && !strings.HasSuffix(output, string(filepath.Separator)) {
		return output
	}
	return filepath.Join(output, name)
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// openOutput opens path for writing; an empty path or "-" is stdout.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func formatNames() []string {
	names := make([]string, len(render.Formats))
	for i, f := range render.Formats {
		names[i] = string(f)
	}
	return names
}
