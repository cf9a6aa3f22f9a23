// Command pawbuddy es el cliente de terminal de PawBuddy.
//
//	pawbuddy [-api URL] [-session file|memory|redis|postgres] <comando> [args]
//
// La sesión (login, cookie y destino pendiente) se guarda en el backend de
// prefs configurado, así que persiste entre ejecuciones.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"pawbuddy-client/internal/api"
	"pawbuddy-client/internal/app"
	"pawbuddy-client/internal/platform/config"
	"pawbuddy-client/internal/platform/httpclient"
	"pawbuddy-client/internal/platform/logger"
	"pawbuddy-client/internal/session"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("pawbuddy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	apiURL := fs.String("api", "", "backend base URL (overrides PAWBUDDY_API_BASE_URL)")
	backend := fs.String("session", "", "session backend: file|memory|redis|postgres")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() { usage(stderr, fs) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() == 0 {
		usage(stderr, fs)
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	if *apiURL != "" {
		cfg.APIBaseURL = *apiURL
	}
	if *backend != "" {
		cfg.SessionBackend = *backend
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    "pawbuddy",
		Output: stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openPrefs(ctx, cfg)
	if err != nil {
		log.Error("session backend unavailable", map[string]any{"backend": cfg.SessionBackend, "error": err.Error()})
		return exitError
	}
	defer closeStore()

	sess := session.Open(ctx, store, cfg.Namespace, log)

	reg := prometheus.NewRegistry()
	client, err := api.New(api.Options{
		BaseURL:   cfg.APIBaseURL,
		Timeout:   cfg.HTTPTimeout,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
		Metrics:   httpclient.NewMetrics(reg),
		Session:   sess,
		Logger:    log,
	})
	if err != nil {
		log.Error("invalid api client config", map[string]any{"error": err.Error()})
		return exitError
	}

	c := &cli{
		app: app.New(client, sess, log),
		in:  bufio.NewReader(stdin),
		out: stdout,
		r:   renderer{out: stdout, imageURL: client.ImageURL},
	}
	code := c.dispatch(ctx, fs.Args())

	logMetrics(log, reg)
	return code
}

// logMetrics deja en debug cuántas llamadas hizo este comando.
func logMetrics(log logger.Logger, reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := map[string]any{"metric": mf.GetName()}
			for _, lp := range m.GetLabel() {
				fields[lp.GetName()] = lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				fields["value"] = m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				fields["count"] = m.GetHistogram().GetSampleCount()
				fields["sum_seconds"] = m.GetHistogram().GetSampleSum()
			}
			log.Debug("api metrics", fields)
		}
	}
}

func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprint(w, `usage: pawbuddy [flags] <command> [args]

commands:
  home
  animals [list | show ID | create FLAGS | edit ID FLAGS | delete ID]
  adopt ID [-profession P -residence R -reason M -has-pets Sim|Nao -which-pets W]
  intents [mine | list | show ID | state ID STATE | delete ID]
  users [list | delete ID]
  adoptions [list | delete ID]
  me [show | edit FLAGS]
  login [-email E -password P]
  register FLAGS
  logout
  whoami
  admin

flags:
`)
	fs.PrintDefaults()
}
