package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/columns/pkg/buildinfo"
	"github.com/matzehuels/columns/pkg/config"
	"github.com/matzehuels/columns/pkg/events"
	"github.com/matzehuels/columns/pkg/observability"
	"github.com/matzehuels/columns/pkg/server"
	"github.com/matzehuels/columns/pkg/sim"
)

const defaultAddr = "127.0.0.1:7373"

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	session      sessionOptions
	addr         string // listen address
	watch        bool   // reload the config file on change
	logEvents    bool   // log every published event
	redisAddr    string // publish events to this redis server
	redisChannel string // pub/sub channel for events
}

func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr, redisChannel: events.DefaultChannel}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a simulated workspace over HTTP",
		Long: `Serve starts an HTTP control socket for a simulated workspace.

Clients spawn and close windows, send layout messages and read the layout
as JSON or SVG. With --redis-addr every change is published as JSON on a
Redis channel. With --watch the config file is reloaded when it changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	opts.session.register(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "reload the config file when it changes")
	cmd.Flags().BoolVar(&opts.logEvents, "log-events", false, "log every layout event")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "publish layout events to this redis server")
	cmd.Flags().StringVar(&opts.redisChannel, "redis-channel", opts.redisChannel, "redis pub/sub channel")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	hooks := observability.NewLogHooks(c.Logger)
	observability.SetLayoutHooks(hooks)
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	sess, path, err := c.newSession(opts.session)
	if err != nil {
		return err
	}

	pub, err := c.newPublisher(ctx, opts)
	if err != nil {
		return err
	}
	defer pub.Close()

	srv := server.New(sess, server.WithPublisher(pub), server.WithLogger(c.Logger))

	if opts.watch && path != "" {
		go c.watchConfig(ctx, path, sess, srv)
	}

	printSuccess("Serving %s on %s", StyleHighlight.Render(sess.Algorithm()), StyleValue.Render("http://"+opts.addr))
	printDetail("columns %s", buildinfo.Short())
	printNextStep("Spawn a window", "curl -XPOST "+opts.addr+"/windows -d '{\"title\":\"term\"}'")
	return srv.ListenAndServe(ctx, opts.addr)
}

// newPublisher builds the event publisher chain from the flags.
func (c *CLI) newPublisher(ctx context.Context, opts serveOpts) (events.Publisher, error) {
	var pubs events.Fanout
	if opts.logEvents {
		pubs = append(pubs, events.NewLogPublisher(c.Logger))
	}
	if opts.redisAddr != "" {
		spinner := newSpinnerWithContext(ctx, "Connecting to redis at "+opts.redisAddr+"...")
		spinner.Start()
		rp, err := events.NewRedisPublisher(ctx, events.RedisConfig{
			Addr:    opts.redisAddr,
			Channel: opts.redisChannel,
		})
		if err != nil {
			spinner.StopWithError("Redis unavailable")
			return nil, err
		}
		spinner.StopWithSuccess("Publishing events on " + StyleHighlight.Render(rp.Channel()))
		pubs = append(pubs, rp)
	}
	if len(pubs) == 0 {
		return events.NewNullPublisher(), nil
	}
	return pubs, nil
}

// watchConfig reloads path on change and recalculates the layout under the
// server lock so the new values apply immediately.
func (c *CLI) watchConfig(ctx context.Context, path string, sess *sim.Session, srv *server.Server) {
	err := config.Watch(ctx, path, sess.Config(), c.Logger,
		config.WithReloadHook(func([]string) {
			err := srv.Notify(ctx, events.TypeReload, func(s *sim.Session) error {
				s.Recalculate()
				return nil
			})
			if err != nil {
				c.Logger.Warn("recalculate after reload failed", "err", err)
			}
		}))
	if err != nil {
		c.Logger.Error("config watcher stopped", "path", path, "err", err)
	}
}
