package pipeline

import (
	"github.com/matzehuels/logomaker/pkg/cache"
	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/logo"
	"github.com/matzehuels/logomaker/pkg/render"
)

// RenderFormat renders cfg in format f with the render options of opts.
func RenderFormat(cfg logo.Config, f render.Format, opts Options) ([]byte, error) {
	switch f {
	case render.FormatSVG:
		return render.RenderSVG(cfg, svgOptions(opts)...)
	case render.FormatPNG:
		var pngOpts []render.PNGOption
		if opts.Pixels > 0 {
			pngOpts = append(pngOpts, render.WithPixels(opts.Pixels))
		}
		if opts.NoShadow {
			pngOpts = append(pngOpts, render.WithoutPNGShadow())
		}
		return render.RenderPNG(cfg, pngOpts...)
	case render.FormatPDF:
		return render.RenderPDF(cfg, render.WithPDFSVGOptions(svgOptions(opts)...))
	case render.FormatCSS:
		return []byte(render.CSS(cfg) + "\n"), nil
	case render.FormatJSON:
		return render.RenderJSON(cfg)
	}
	return nil, apperr.New(apperr.ErrCodeInvalidFormat, "invalid format: %s", f)
}

func svgOptions(opts Options) []render.SVGOption {
	if opts.NoShadow {
		return []render.SVGOption{render.WithoutShadow()}
	}
	return nil
}

// artifactKeyOpts returns the options that affect the bytes of format f.
func artifactKeyOpts(f render.Format, opts Options) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: string(f)}
	switch f {
	case render.FormatPNG:
		k.Pixels = opts.Pixels
		k.Shadow = !opts.NoShadow
	case render.FormatSVG, render.FormatPDF:
		k.Shadow = !opts.NoShadow
	}
	return k
}
