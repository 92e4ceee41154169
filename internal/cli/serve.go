package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/logomaker/pkg/pipeline"
	"github.com/matzehuels/logomaker/pkg/server"
	"github.com/matzehuels/logomaker/pkg/suggest"
)

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		rateLimit int
		burst     int
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the logo API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			st, err := c.loadSettings()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				st.Server.Addr = addr
			}
			if cmd.Flags().Changed("rate-limit") {
				st.Server.RateLimit = rateLimit
			}
			if cmd.Flags().Changed("burst") {
				st.Server.Burst = burst
			}
			ttl, err := st.suggestionTTL()
			if err != nil {
				return err
			}

			ch, err := newCache(ctx, st, noCache)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(ch, st.keyer(), logger)
			defer runner.Close()

			kind := suggest.ProviderKind(st.AI.Provider)
			svc := suggest.NewService(suggest.NewProviderFactory(kind, st.AI.Model),
				suggest.WithCache(ch, st.keyer()),
				suggest.WithTTL(ttl),
				suggest.WithLogger(logger))

			srv := server.New(server.Config{
				Addr:      st.Server.Addr,
				Runner:    runner,
				Suggest:   svc,
				APIKey:    st.apiKey(kind, osLookup),
				RateLimit: st.Server.RateLimit,
				Burst:     st.Server.Burst,
				Logger:    logger,
			})

			printInfo("Listening on %s", StyleHighlight.Render(srv.Addr()))
			printDetail("cache: %s · provider: %s", st.Cache.Backend, kind)
			if err := srv.ListenAndServe(ctx); err != nil {
				return err
			}
			printSuccess("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().IntVar(&rateLimit, "rate-limit", server.DefaultRateLimit, "suggestion requests per minute")
	cmd.Flags().IntVar(&burst, "burst", server.DefaultBurst, "suggestion request burst")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}
