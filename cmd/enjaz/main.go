package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexanderramin/enjaz/internal/ai"
	"github.com/alexanderramin/enjaz/internal/apiclient"
	"github.com/alexanderramin/enjaz/internal/cli"
	"github.com/alexanderramin/enjaz/internal/config"
	"github.com/alexanderramin/enjaz/internal/core"
	"github.com/alexanderramin/enjaz/internal/llm"
	"github.com/alexanderramin/enjaz/internal/repository"
	"github.com/alexanderramin/enjaz/internal/session"
	"github.com/alexanderramin/enjaz/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("ENJAZ_CONFIG_DIR"))
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	sess := session.NewStore(cfg.DataDir)

	var provider *repository.Provider
	switch cfg.Provider {
	case config.ProviderHTTP:
		client := apiclient.New(cfg.APIBaseURL, sess, apiclient.WithLogger(log))
		provider = repository.NewRemoteProvider(client)
	default:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
		st := store.NewManager(filepath.Join(cfg.DataDir, "enjaz.db"))
		defer st.Close()

		var aiSvc repository.AiService
		if cfg.LLM.Enabled {
			var observer llm.Observer = llm.NoopObserver{}
			if cfg.LLM.LogCalls {
				observer = llm.NewLogObserver(os.Stderr)
			}
			aiSvc = ai.NewService(llm.NewOllamaClient(cfg.LLM, observer))
		}
		provider = repository.NewLocalProvider(st, sess, aiSvc)
	}

	app := &cli.App{
		Provider:   provider,
		Aggregator: core.NewAggregator(provider, core.WithLogger(log)),
		Log:        log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}
