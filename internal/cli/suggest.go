package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/logomaker/pkg/errors"
	"github.com/matzehuels/logomaker/pkg/logo"
	"github.com/matzehuels/logomaker/pkg/pipeline"
	"github.com/matzehuels/logomaker/pkg/render"
	"github.com/matzehuels/logomaker/pkg/suggest"
)

const defaultSuggestTimeout = 60 * time.Second

// suggestOpts holds the command-line flags for the suggest command.
type suggestOpts struct {
	style       styleFlags
	description string
	apiKey      string
	provider    string
	model       string
	apply       int // 1-based suggestion to apply, 0 for none
	formats     string
	output      string
	timeout     time.Duration
	noCache     bool
	refresh     bool
}

// suggestCommand asks a language model for restyling ideas.
func (c *CLI) suggestCommand() *cobra.Command {
	var opts suggestOpts

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Get AI style suggestions for a logo",
		Long: `Suggest sends the business description and the current style to a language
model and shows three restyling ideas. With --apply N the chosen idea is merged
into the logo and the result is rendered.`,
		Example: `  logomaker suggest -d "organic bakery in Lisbon" --text "Crumbs"
  logomaker suggest -d "fintech startup" --provider anthropic --apply 2 -f svg,png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSuggest(cmd, &opts)
		},
	}

	opts.style.register(cmd)
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "what the business does")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "provider API key (default from OPENAI_API_KEY / ANTHROPIC_API_KEY or settings)")
	cmd.Flags().StringVar(&opts.provider, "provider", "", "AI provider: openai, anthropic (default from settings)")
	cmd.Flags().StringVar(&opts.model, "model", "", "model name (default per provider)")
	cmd.Flags().IntVar(&opts.apply, "apply", 0, "apply suggestion N and render the result")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "svg", "output format(s) when applying")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file or directory when applying")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", defaultSuggestTimeout, "request timeout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ask again even when an answer is cached")
	_ = cmd.RegisterFlagCompletionFunc("provider", fixedCompletion([]string{string(suggest.ProviderOpenAI), string(suggest.ProviderAnthropic)}))

	return cmd
}

func (c *CLI) runSuggest(cmd *cobra.Command, opts *suggestOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	st, err := c.loadSettings()
	if err != nil {
		return err
	}
	kind := suggest.ProviderKind(st.AI.Provider)
	if opts.provider != "" {
		kind = suggest.ProviderKind(opts.provider)
	}
	model := st.AI.Model
	if opts.model != "" || cmd.Flags().Changed("provider") {
		model = opts.model
	}
	key := opts.apiKey
	if key == "" {
		key = st.apiKey(kind, osLookup)
	}

	store, err := opts.style.store(cmd)
	if err != nil {
		return err
	}

	ch, err := newCache(ctx, st, opts.noCache)
	if err != nil {
		return err
	}
	defer ch.Close()
	ttl, err := st.suggestionTTL()
	if err != nil {
		return err
	}

	svc := suggest.NewService(suggest.NewProviderFactory(kind, model),
		suggest.WithCache(ch, st.keyer()),
		suggest.WithTTL(ttl),
		suggest.WithLogger(logger))

	reqCtx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	spin := newSpinnerWithContext(reqCtx, fmt.Sprintf("Asking %s for suggestions...", kind))
	spin.Start()
	batch, err := svc.Suggest(reqCtx, suggest.Request{
		APIKey:      key,
		Description: opts.description,
		Config:      store.Config(),
		Refresh:     opts.refresh,
	})
	if err != nil {
		spin.StopWithError(apperr.UserMessage(err))
		return err
	}
	status := fmt.Sprintf("%d suggestions from %s", len(batch.Suggestions), batch.Model)
	if batch.Cached {
		status += " (cached)"
	}
	spin.StopWithSuccess(status)

	printNewline()
	printSuggestions(batch.Suggestions)

	if opts.apply == 0 {
		printNextStep("Apply one", "logomaker suggest ... --apply 1")
		return nil
	}
	return c.applySuggestion(cmd, st, store, batch, opts)
}

func printSuggestions(list []suggest.Suggestion) {
	for i, s := range list {
		fmt.Printf("%s %s\n", StyleHighlight.Render(fmt.Sprintf("%d.", i+1)), StyleTitle.Render(s.Title))
		if s.Reasoning != "" {
			printDetail("%s", s.Reasoning)
		}
		fmt.Printf("   %s %s %s  %s\n",
			swatch(s.ShapeColor), swatch(s.TextColor), swatch(s.BackgroundColor),
			StyleDim.Render(describeSuggestion(s)))
		printNewline()
	}
}

func describeSuggestion(s suggest.Suggestion) string {
	desc := s.Shape
	if s.FontSize > 0 {
		desc += fmt.Sprintf(" · %dpx", s.FontSize)
	}
	if s.FontWeight != "" {
		desc += " " + s.FontWeight
	}
	if s.FontFamily != "" {
		desc += " " + s.FontFamily
	}
	return desc
}

// applySuggestion merges the chosen suggestion and renders the result.
func (c *CLI) applySuggestion(cmd *cobra.Command, st Settings, store *logo.Store, batch *suggest.Batch, opts *suggestOpts) error {
	ctx := cmd.Context()

	sg, err := batch.Apply(store, opts.apply-1)
	if err != nil {
		return err
	}
	printSuccess("Applied %q", sg.Title)

	formats, err := render.ParseFormats(opts.formats)
	if err != nil {
		return err
	}
	pipeOpts := pipeline.Options{Formats: formats, Logger: loggerFromContext(ctx)}
	if err := pipeOpts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(cmd, st, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.RenderConfig(ctx, store.Config(), pipeOpts)
	if err != nil {
		return err
	}
	return writeArtifacts(ctx, result, formats, opts.output)
}
