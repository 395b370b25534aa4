package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"social_osint/dto"
	"social_osint/logic"
	"social_osint/shared"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var (
	cfgPath      string
	offline      bool
	logLevel     string
	formatFlag   string
	noAutoSave   bool
	stdinMode    bool
	metricsFile  string
	targetFlags  []string
	queryFlag    string
	defaultCount int
	refresh      bool
	purgeYes     bool
)

// exitCode is set by commands that finish without a Go error but must still fail the process.
var exitCode = exitOk

var rootCmd = &cobra.Command{
	Use:           "social-osint",
	Short:         "Collects and analyzes user activity across social platforms",
	Long:          "Fetches public activity from Twitter, Reddit, Bluesky, Mastodon and Hacker News into a local cache, then asks an LLM to analyze it.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "Config file (default: $CONFIG or ./config.jsonc)")
	pf.BoolVar(&offline, "offline", false, "Use cached data only; no network requests and no media analysis")
	pf.StringVar(&logLevel, "log-level", "", "Log level: Debug, Info, Warn or Error")
	pf.StringVar(&formatFlag, "format", "", "Report format: markdown or json")
	pf.BoolVar(&noAutoSave, "no-auto-save", false, "Print the report instead of saving it to the outputs directory")
	pf.StringVar(&metricsFile, "metrics-file", "", "Write metrics in Prometheus text format to this file on exit")
	rootCmd.Flags().BoolVar(&stdinMode, "stdin", false, "Read a JSON analysis request from stdin")

	analyzeCmd := &cobra.Command{
		Use:     "analyze",
		Short:   "Analyze one or more targets",
		Example: "  social-osint analyze -t twitter:jack -t mastodon:user@mastodon.social=100 -q \"What are their interests?\"",
		RunE:    runAnalyze,
	}
	analyzeCmd.Flags().StringArrayVarP(&targetFlags, "target", "t", nil, "Target as platform:identity[=count]; a count also refreshes the target")
	analyzeCmd.Flags().StringVarP(&queryFlag, "query", "q", "", "Question to answer about the targets")
	analyzeCmd.Flags().IntVar(&defaultCount, "default-count", 0, "Items to fetch per target when no count is given")
	analyzeCmd.Flags().BoolVar(&refresh, "refresh", false, "Ignore fresh caches and refetch every target")
	_ = analyzeCmd.MarkFlagRequired("query")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the cache status",
		RunE:  runStatus,
	}

	purgeCmd := &cobra.Command{
		Use:       "purge [all|cache|media|outputs]",
		Short:     "Delete cached data, media or saved reports",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: logic.PurgeTargets,
		RunE:      runPurge,
	}
	purgeCmd.Flags().BoolVar(&purgeYes, "yes", false, "Confirm the deletion")

	platformsCmd := &cobra.Command{
		Use:   "platforms",
		Short: "List the platforms available with the current credentials",
		RunE:  runPlatforms,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE:  runServe,
	}

	rootCmd.AddCommand(analyzeCmd, statusCmd, purgeCmd, platformsCmd, serveCmd)
}

func execute() int {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCritical
	}
	return exitCode
}

// setup loads the config, applies command-line overrides, and initializes the logger and data directories.
func setup() (*shared.Config, error) {
	cfg, err := shared.LoadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	if offline {
		cfg.Offline = true
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if formatFlag != "" {
		if formatFlag != shared.FormatMarkdown && formatFlag != shared.FormatJson {
			return nil, fmt.Errorf("invalid --format '%s'", formatFlag)
		}
		cfg.OutputFormat = formatFlag
	}
	if noAutoSave {
		cfg.AutoSave = false
	}
	if err = cfg.EnsureDataDirs(); err != nil {
		return nil, err
	}
	if logger, err = initLogger(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runInApp builds the container and calls fn inside it.
func runInApp(cfg *shared.Config, fn any) error {
	writeMetrics := func(m logic.IMetrics) error {
		if metricsFile == "" {
			return nil
		}
		return m.WriteTextfile(metricsFile)
	}
	app := fx.New(coreOptions(cfg), fx.Invoke(fn, writeMetrics))
	return app.Err()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !stdinMode {
		return cmd.Help()
	}
	cfg, err := setup()
	if err != nil {
		return err
	}
	if err = cfg.CheckLlm(); err != nil {
		return err
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	var batch dto.BatchRequest
	if err = json.Unmarshal(data, &batch); err != nil {
		return fmt.Errorf("invalid JSON request: %w", err)
	}
	req, err := logic.RequestFromBatch(cfg, &batch)
	if err != nil {
		return err
	}
	return runInApp(cfg, func(a logic.IAnalyzer, rw logic.IReportWriter) {
		exitCode = runAnalysis(cmd.Context(), cfg, a, rw, req)
	})
}

// parseTarget reads platform:identity[=count].
func parseTarget(val string) (platform shared.Platform, identity string, count int, err error) {
	name, rest, found := strings.Cut(val, ":")
	if !found {
		return "", "", 0, fmt.Errorf("target '%s' must be platform:identity", val)
	}
	platform, ok := shared.ParsePlatform(name)
	if !ok {
		return "", "", 0, fmt.Errorf("unknown platform '%s'", name)
	}
	identity = rest
	if i := strings.LastIndex(rest, "="); i >= 0 {
		if count, err = strconv.Atoi(rest[i+1:]); err != nil || count <= 0 {
			return "", "", 0, fmt.Errorf("invalid count in target '%s'", val)
		}
		identity = rest[:i]
	}
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return "", "", 0, fmt.Errorf("target '%s' has no identity", val)
	}
	return platform, identity, count, nil
}

func buildRequest(cfg *shared.Config) (*logic.AnalysisRequest, error) {
	req := &logic.AnalysisRequest{
		Targets:      map[string][]string{},
		Query:        strings.TrimSpace(queryFlag),
		DefaultCount: defaultCount,
		Counts:       map[string]int{},
		Force:        refresh,
		Refresh:      map[string]bool{},
	}
	if req.Query == "" {
		return nil, errors.New("the query must not be empty")
	}
	for _, val := range targetFlags {
		platform, identity, count, err := parseTarget(val)
		if err != nil {
			return nil, err
		}
		if !cfg.IsAvailable(platform) {
			fmt.Fprintf(os.Stderr, "Skipping %s: platform not configured\n", val)
			continue
		}
		req.Targets[string(platform)] = append(req.Targets[string(platform)], identity)
		if count > 0 {
			key := shared.Target{Platform: platform, Identity: identity}.Key()
			req.Counts[key] = count
			req.Refresh[key] = true
		}
	}
	if len(req.Targets) == 0 {
		return nil, errors.New("no valid targets given")
	}
	return req, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	if err = cfg.CheckLlm(); err != nil {
		return err
	}
	req, err := buildRequest(cfg)
	if err != nil {
		return err
	}
	return runInApp(cfg, func(a logic.IAnalyzer, rw logic.IReportWriter) {
		exitCode = runAnalysis(cmd.Context(), cfg, a, rw, req)
	})
}

// runAnalysis returns the process exit code.
func runAnalysis(ctx context.Context, cfg *shared.Config, a logic.IAnalyzer, rw logic.IReportWriter,
	req *logic.AnalysisRequest) int {

	res, err := a.Analyze(ctx, req)
	if res != nil && len(res.Failures) != 0 {
		fmt.Fprintln(os.Stderr, "Data collection issues:")
		for _, f := range res.Failures {
			fmt.Fprintf(os.Stderr, "- %s/%s: %s\n", f.Platform, f.Identity, f.Reason)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		return exitAnalysis
	}

	if cfg.AutoSave {
		path, err := rw.Save(res, cfg.OutputFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return exitCritical
		}
		fmt.Fprintf(os.Stderr, "Analysis saved to: %s\n", path)
		return exitOk
	}
	out, err := rw.Render(res, cfg.OutputFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCritical
	}
	fmt.Println(string(out))
	return exitOk
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	return runInApp(cfg, func(admin logic.ICacheAdmin) {
		entries := admin.Status()
		if len(entries) == 0 {
			fmt.Println("Cache is empty.")
			return
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Platform", "Identity", "Last fetched", "Age", "Items", "Media (A/F)", "Last outcome")
		for _, e := range entries {
			t.Row(e.Platform, e.Identity, e.LastFetched, e.Age, e.Items,
				fmt.Sprintf("%d/%d", e.MediaAnalyses, e.MediaFiles), e.LastOutcome)
		}
		fmt.Println(t.Render())
	})
}

func runPurge(cmd *cobra.Command, args []string) error {
	what := logic.PurgeAll
	if len(args) == 1 {
		what = args[0]
	}
	if !slices.Contains(logic.PurgeTargets, what) {
		return fmt.Errorf("unknown purge target '%s'", what)
	}
	if !purgeYes {
		return fmt.Errorf("purging '%s' deletes data permanently; pass --yes to confirm", what)
	}
	cfg, err := setup()
	if err != nil {
		return err
	}
	var purgeErr error
	err = runInApp(cfg, func(admin logic.ICacheAdmin) {
		purgeErr = admin.Purge(what)
	})
	if err != nil {
		return err
	}
	if purgeErr != nil {
		return purgeErr
	}
	fmt.Printf("Purged %s.\n", what)
	return nil
}

func runPlatforms(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	for _, p := range cfg.AvailablePlatforms() {
		fmt.Println(p)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	if err = cfg.CheckLlm(); err != nil {
		return err
	}
	app := fx.New(coreOptions(cfg), serverOptions())
	if err = app.Err(); err != nil {
		return err
	}
	app.Run()
	return nil
}
