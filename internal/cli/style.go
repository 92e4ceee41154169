package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/logomaker/pkg/logo"
	"github.com/matzehuels/logomaker/pkg/pipeline"
	"github.com/matzehuels/logomaker/pkg/shape"
)

// styleFlags are the flags that describe a logo. Only flags given on the
// command line take part in the overlay.
type styleFlags struct {
	file     string
	template string

	text       string
	shape      string
	shapeColor string
	textColor  string
	bgColor    string
	fontSize   int
	fontFamily string
	fontWeight string
	shapeSize  int
	textY      int
}

func (f *styleFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.file, "file", "", "TOML logo file applied before the flags")
	fs.StringVarP(&f.template, "template", "t", "", "template: "+strings.Join(logo.TemplateNames(), ", "))
	fs.StringVar(&f.text, "text", logo.DefaultText, "company name")
	fs.StringVarP(&f.shape, "shape", "s", logo.DefaultShape.String(), "shape: "+strings.Join(shape.Names(), ", "))
	fs.StringVar(&f.shapeColor, "shape-color", logo.DefaultShapeColor, "shape fill colour")
	fs.StringVar(&f.textColor, "text-color", logo.DefaultTextColor, "text colour")
	fs.StringVar(&f.bgColor, "bg-color", logo.DefaultBackgroundColor, "background colour")
	fs.IntVar(&f.fontSize, "font-size", logo.DefaultFontSize, "font size in px")
	fs.StringVar(&f.fontFamily, "font-family", logo.DefaultFontFamily, "font family")
	fs.StringVar(&f.fontWeight, "font-weight", logo.DefaultFontWeight, "font weight")
	fs.IntVar(&f.shapeSize, "shape-size", logo.DefaultShapeSize, "outer shape size in px")
	fs.IntVar(&f.textY, "text-y", logo.DefaultTextY, "text baseline in canvas px")

	_ = cmd.RegisterFlagCompletionFunc("template", fixedCompletion(logo.TemplateNames()))
	_ = cmd.RegisterFlagCompletionFunc("shape", fixedCompletion(shape.Names()))
}

// partial returns the overlay of the flags the user set.
func (f *styleFlags) partial(cmd *cobra.Command) (logo.Partial, error) {
	fs := cmd.Flags()
	var p logo.Partial
	if fs.Changed("shape") {
		k, err := shape.Parse(f.shape)
		if err != nil {
			return logo.Partial{}, err
		}
		p.Shape = &k
	}
	if fs.Changed("text") {
		p.Text = logo.Ptr(f.text)
	}
	if fs.Changed("shape-color") {
		p.ShapeColor = logo.Ptr(f.shapeColor)
	}
	if fs.Changed("text-color") {
		p.TextColor = logo.Ptr(f.textColor)
	}
	if fs.Changed("bg-color") {
		p.BackgroundColor = logo.Ptr(f.bgColor)
	}
	if fs.Changed("font-size") {
		p.FontSize = logo.Ptr(f.fontSize)
	}
	if fs.Changed("font-family") {
		p.FontFamily = logo.Ptr(f.fontFamily)
	}
	if fs.Changed("font-weight") {
		p.FontWeight = logo.Ptr(f.fontWeight)
	}
	if fs.Changed("shape-size") {
		p.ShapeSize = logo.Ptr(f.shapeSize)
	}
	if fs.Changed("text-y") {
		p.TextY = logo.Ptr(f.textY)
	}
	return p, nil
}

// options resolves the logo file, template and flags into pipeline options.
// A --template flag replaces the file's template; flag values win over file
// values.
func (f *styleFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	var opts pipeline.Options
	if f.file != "" {
		file, err := logo.LoadPartial(f.file)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Template = file.Template
		opts.Config = file.Partial
	}
	if f.template != "" {
		opts.Template = f.template
	}
	p, err := f.partial(cmd)
	if err != nil {
		return pipeline.Options{}, err
	}
	opts.Config = opts.Config.Merge(p)
	return opts, nil
}

// store builds the logo described by the flags.
func (f *styleFlags) store(cmd *cobra.Command) (*logo.Store, error) {
	opts, err := f.options(cmd)
	if err != nil {
		return nil, err
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return pipeline.Build(opts)
}

func fixedCompletion(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
