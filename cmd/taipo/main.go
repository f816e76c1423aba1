// Package main provides the CLI entrypoint for taipo.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/taipo/internal/config"
	"github.com/verte-zerg/taipo/internal/generator"
	"github.com/verte-zerg/taipo/internal/kana"
	"github.com/verte-zerg/taipo/internal/model"
	"github.com/verte-zerg/taipo/internal/pool"
	"github.com/verte-zerg/taipo/internal/stats"
	"github.com/verte-zerg/taipo/internal/store"
	"github.com/verte-zerg/taipo/internal/tui"
	"github.com/verte-zerg/taipo/internal/typing"
	"github.com/verte-zerg/taipo/internal/wordlist"
)

const (
	defaultSlots       = 4
	defaultWeakTop     = 10
	defaultWeakWindow  = 20
	defaultCurveWindow = 10
)

var (
	playList       string
	playSlots      int
	playGoal       int
	playRomaji     bool
	playShuffle    bool
	playWidthFold  bool
	playFocusWeak  bool
	playWeakTop    int
	playWeakWindow int

	parseWidthFold bool

	statsList        string
	statsSince       string
	statsLast        int
	statsCurveWindow int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "taipo",
		Short:         "Kana typing trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playList, "list", "", "word list file or menu label")
	rootCmd.Flags().IntVar(&playSlots, "slots", defaultSlots, "number of prompts on screen")
	rootCmd.Flags().IntVar(&playGoal, "goal", 0, "stop scoring after N prompts (0 = endless)")
	rootCmd.Flags().BoolVar(&playRomaji, "romaji", false, "show romaji instead of kana")
	rootCmd.Flags().BoolVar(&playShuffle, "shuffle", true, "shuffle the word list")
	rootCmd.Flags().BoolVar(&playWidthFold, "width-fold", false, "fold full-width and half-width forms before parsing")
	rootCmd.Flags().BoolVar(&playFocusWeak, "focus-weak", false, "queue prompts with weak chunks first")
	rootCmd.Flags().IntVar(&playWeakTop, "weak-top", defaultWeakTop, "number of weak chunks to focus on")
	rootCmd.Flags().IntVar(&playWeakWindow, "weak-window", defaultWeakWindow, "number of recent sessions to compute weak chunks")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newListsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "list", &playList, fileCfg.Play.List)
	applyIntConfig(cmd, "slots", &playSlots, fileCfg.Play.Slots)
	applyIntConfig(cmd, "goal", &playGoal, fileCfg.Play.Goal)
	applyBoolConfig(cmd, "romaji", &playRomaji, fileCfg.Play.Romaji)
	applyBoolConfig(cmd, "shuffle", &playShuffle, fileCfg.Play.Shuffle)
	applyBoolConfig(cmd, "width-fold", &playWidthFold, fileCfg.Play.WidthFold)
	applyBoolConfig(cmd, "focus-weak", &playFocusWeak, fileCfg.Play.FocusWeak)
	applyIntConfig(cmd, "weak-top", &playWeakTop, fileCfg.Play.WeakTop)
	applyIntConfig(cmd, "weak-window", &playWeakWindow, fileCfg.Play.WeakWindow)

	cfg := model.Config{
		List:       playList,
		Slots:      playSlots,
		Goal:       playGoal,
		Help:       playRomaji,
		Shuffle:    playShuffle,
		WidthFold:  playWidthFold,
		FocusWeak:  playFocusWeak,
		WeakTop:    playWeakTop,
		WeakWindow: playWeakWindow,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	opts := wordlist.Options{WidthFold: cfg.WidthFold}
	lists, err := wordlist.Resolve(cfg.List, config.DefaultMenuPath(), config.DefaultWordListDir(), opts)
	if err != nil {
		return wordListLoadError(cfg.List, err)
	}
	for _, list := range lists {
		if len(list.Dropped) > 0 {
			logErrf("%s: skipped %d unparseable lines (see: taipo parse %s)\n", list.Path, len(list.Dropped), list.Path)
		}
	}
	targets := wordlist.Targets(lists)

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if cfg.Shuffle {
		targets = generator.New().Shuffle(targets)
	}
	if cfg.FocusWeak {
		targets = prioritizeWeak(st, cfg, targets)
	}

	board, err := typing.NewBoard(pool.New(targets), controlPrompts(), cfg.Slots)
	if err != nil {
		return fmt.Errorf("failed to start session: %w (word list %q is too small or ambiguous for --slots %d)", err, cfg.List, cfg.Slots)
	}
	session := typing.NewSession(board, cfg.List, cfg.Help, cfg.Goal)
	m := tui.NewModel(session, st, cfg.List)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func prioritizeWeak(st *store.Store, cfg model.Config, targets []model.Target) []model.Target {
	aggs, err := st.GetWeakChunks(context.Background(), cfg.WeakWindow, cfg.List)
	if err != nil {
		logErrf("failed to load weak chunks: %v\n", err)
		return targets
	}
	weakSet := stats.SelectWeakChunks(aggs, cfg.WeakTop)
	if len(weakSet) == 0 {
		logErrln("no stats available for weak-chunk focus yet; using normal order")
		return targets
	}
	return generator.Prioritize(targets, weakSet)
}

func controlPrompts() []typing.Prompt {
	return []typing.Prompt{
		{Target: model.NewPlainTarget("help"), Action: model.ActionToggleHelp},
		{Target: model.NewPlainTarget("quit"), Action: model.ActionQuit},
	}
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Print the targets parsed from a word list",
		Args:  cobra.ExactArgs(1),
		RunE:  runParseCmd,
	}
	cmd.Flags().BoolVar(&parseWidthFold, "width-fold", false, "fold full-width and half-width forms before parsing")
	return cmd
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read word list: %w", err)
	}
	out := cmd.OutOrStdout()
	if wordlist.KindForPath(path) == model.KindPlain {
		return writeTargets(out, wordlist.ParsePlain(string(data)))
	}

	report := kana.Parser{WidthFold: parseWidthFold}.ParseReport(string(data))
	if err := writeTargets(out, report.Targets); err != nil {
		return err
	}
	for _, d := range report.Dropped {
		logErrf("%s:%d:%d: dropped %q\n", path, d.Line, d.Column, d.Text)
	}
	s := report.Stats
	logErrf("%d lines, %d blank, %d parsed, %d dropped\n", s.TotalLines, s.BlankLines, s.ParsedLines, s.DroppedLines)
	return nil
}

func writeTargets(w io.Writer, targets []model.Target) error {
	for _, t := range targets {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", t.Label(), t.Text(), strings.Join(t.Typed, " ")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "List menu entries and word list files",
		Args:  cobra.NoArgs,
		RunE:  runListsCmd,
	}
}

func runListsCmd(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	found := false

	menuPath := config.DefaultMenuPath()
	if _, err := os.Stat(menuPath); err == nil {
		menu, err := wordlist.LoadMenu(menuPath)
		if err != nil {
			return err
		}
		for _, item := range menu.Items {
			found = true
			if _, err := fmt.Fprintf(out, "%s\t%s\n", item.Label, strings.Join(item.Files, ", ")); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat menu: %w", err)
	}

	files, err := wordListFiles(config.DefaultWordListDir())
	if err != nil {
		return err
	}
	for _, file := range files {
		found = true
		if _, err := fmt.Fprintln(out, file); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if !found {
		logErrf("No word lists found. Put .txt or .jp.txt files in %s or add a %s\n", config.DefaultWordListDir(), menuPath)
		return fmt.Errorf("no word lists found")
	}
	return nil
}

func wordListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read word list directory: %w", err)
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsList, "list", "", "word list filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "last", &statsLast, fileCfg.Stats.Last)
	applyIntConfig(cmd, "curve-window", &statsCurveWindow, fileCfg.Stats.CurveWindow)

	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if statsCurveWindow < 1 {
		return fmt.Errorf("--curve-window must be >= 1")
	}

	cfg := model.StatsConfig{
		List:        statsList,
		Since:       sinceTime,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	report, err := stats.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	if err := stats.Render(cmd.OutOrStdout(), report, cfg.CurveWindow); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# taipo configuration
# Uncomment a value to enable it. CLI flags override config values.

[play]
# list = "hiragana"       # Word list file or menu label
# slots = %d              # Prompts on screen
# goal = 0                # Stop scoring after N prompts (0 = endless)
# romaji = false          # Show romaji instead of kana
# shuffle = true          # Shuffle the word list
# width-fold = false      # Fold full-width and half-width forms
# focus-weak = false      # Queue prompts with weak chunks first
# weak-top = %d           # Number of weak chunks to focus on
# weak-window = %d        # Number of recent sessions to compute weak chunks

[stats]
# last = 0                # Limit to last N sessions
# curve-window = %d       # Moving average window
`,
		defaultSlots,
		defaultWeakTop,
		defaultWeakWindow,
		defaultCurveWindow,
	)
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.List) == "" {
		return fmt.Errorf("--list must not be empty (see: taipo lists)")
	}
	if cfg.Slots <= 0 {
		return fmt.Errorf("--slots must be > 0")
	}
	if cfg.Goal < 0 {
		return fmt.Errorf("--goal must be >= 0")
	}
	if cfg.WeakTop < 0 {
		return fmt.Errorf("--weak-top must be >= 0")
	}
	if cfg.WeakWindow < 0 {
		return fmt.Errorf("--weak-window must be >= 0")
	}
	return nil
}

func wordListLoadError(list string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected a file path or a label in %s, got %q", config.DefaultMenuPath(), list),
		"Run: taipo lists",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
