package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"social_osint/dal"
	"social_osint/logic"
	"social_osint/remote"
	"social_osint/server"
	"social_osint/shared"
	"social_osint/texts"

	"github.com/charmbracelet/log"
	"go.uber.org/fx"
)

const (
	exitOk       = 0
	exitCritical = 1
	exitAnalysis = 2
)

type initErrorHandler struct {
}

func (*initErrorHandler) HandleError(err error) {
	fmt.Fprintf(os.Stderr, "Failed to initialize dependency injection\n%v\n", err)
}

var logger *log.Logger

func main() {
	os.Exit(execute())
}

// coreOptions wires everything an analysis needs. Each command builds its own container on top of it.
func coreOptions(cfg *shared.Config) fx.Option {

	provideConfig := func() *shared.Config {
		return cfg
	}
	provideLogger := func() shared.ILogger {
		return logger
	}

	return fx.Options(
		fx.NopLogger,
		fx.Provide(
			provideConfig,
			provideLogger,
			shared.NewUserAgent,
			dal.NewRepo,
			dal.NewCacheStore,
			texts.NewTexts,
			logic.NewMetrics,
			remote.NewTwitterApi,
			remote.NewRedditApi,
			remote.NewBlueskyApi,
			remote.NewMastodonDirectory,
			remote.NewHackerNewsApi,
			remote.NewLlmClient,
			logic.NewMediaDownloader,
			logic.NewSummarizer,
			logic.NewReportWriter,
			logic.NewCacheAdmin,
			asFetcher(logic.NewTwitterFetcher),
			asFetcher(logic.NewRedditFetcher),
			asFetcher(logic.NewBlueskyFetcher),
			asFetcher(logic.NewMastodonFetcher),
			asFetcher(logic.NewHackerNewsFetcher),
			fx.Annotate(logic.NewAnalyzer, fx.ParamTags(``, ``, ``, ``, ``, ``, `group:"fetchers"`)),
		),
		fx.Invoke(
			func(repo dal.IRepo) { repo.InitUpdateDb() },
		),
		fx.ErrorHook(&initErrorHandler{}),
	)
}

// serverOptions adds the HTTP API on top of the core.
func serverOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			server.NewHTTPServer,
			fx.Annotate(server.NewMux, fx.ParamTags(`group:"handler_group"`)),
			asHandlerGroupDef(server.NewApiHandlerGroup),
			asHandlerGroupDef(server.NewMetricsHandlerGroup),
			logic.NewProfiler,
		),
		fx.Invoke(
			registerHooks,
			func(*http.Server, logic.IProfiler) {},
		),
	)
}

func asFetcher(f any) any {
	return fx.Annotate(
		f,
		fx.ResultTags(`group:"fetchers"`),
	)
}

func asHandlerGroupDef(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(server.IHandlerGroup)),
		fx.ResultTags(`group:"handler_group"`),
	)
}

// initLogger writes to stderr, so that stdout only carries reports, and to the log file.
func initLogger(cfg *shared.Config) (*log.Logger, error) {

	var out io.Writer = os.Stderr
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file '%v': %w", cfg.LogFile, err)
		}
		out = io.MultiWriter(os.Stderr, logFile)
	}

	logger := log.New(out)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat("2006-01-02 15:04:05.000")
	switch cfg.LogLevel {
	case "Debug":
		logger.SetLevel(log.DebugLevel)
	case "Info":
		logger.SetLevel(log.InfoLevel)
	case "Warn":
		logger.SetLevel(log.WarnLevel)
	case "Error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.WarnLevel)
	}
	logger.SetReportCaller(true)

	return logger, nil
}

func registerHooks(lc fx.Lifecycle, metrics logic.IMetrics) {
	lc.Append(
		fx.Hook{
			OnStart: func(context.Context) error {
				logger.Printf("Service starting up")
				metrics.ServiceStarted()
				return nil
			},
			OnStop: func(context.Context) error {
				logger.Printf("Service shutting down")
				return nil
			},
		},
	)
}
