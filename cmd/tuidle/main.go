// Package main provides the CLI entrypoint for tuidle.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuidle/internal/config"
	"github.com/verte-zerg/tuidle/internal/game"
	"github.com/verte-zerg/tuidle/internal/generator"
	"github.com/verte-zerg/tuidle/internal/logging"
	"github.com/verte-zerg/tuidle/internal/model"
	"github.com/verte-zerg/tuidle/internal/stats"
	"github.com/verte-zerg/tuidle/internal/statsui"
	"github.com/verte-zerg/tuidle/internal/store"
	"github.com/verte-zerg/tuidle/internal/tui"
	"github.com/verte-zerg/tuidle/internal/wordlist"
)

const (
	defaultAvoidRecent  = 50
	defaultDailySalt    = "tuidle"
	defaultRevealStepMs = 300
	defaultMessageMs    = 1500
	maxPlainBarWidth    = 60
)

var (
	playAnswers     string
	playAllowed     string
	playDaily       bool
	playDailySalt   string
	playAvoidRecent int
	playRevealStep  int
	playMessage     int
	logLevel        string
	logFile         string

	statsLast  int
	statsPlain bool
	statsReset bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuidle",
		Short:         "Terminal word-guessing puzzle",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playAnswers, "answers", "", "answers word list file (one word per line)")
	rootCmd.Flags().StringVar(&playAllowed, "allowed", "", "extra accepted guesses file (one word per line)")
	rootCmd.Flags().BoolVar(&playDaily, "daily", false, "play the word of the day first")
	rootCmd.Flags().IntVar(&playAvoidRecent, "avoid-recent", defaultAvoidRecent, "number of recent targets not to repeat")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

// loadFileConfig reads .env, the TOML file and TUIDLE_* overrides, in that order.
func loadFileConfig() (config.FileConfig, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return config.FileConfig{}, err
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	config.ApplyEnv(&fileCfg, os.Getenv)
	return fileCfg, nil
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}
	playDailySalt = defaultDailySalt
	playRevealStep = defaultRevealStepMs
	playMessage = defaultMessageMs
	applyStringConfig(cmd, "answers", &playAnswers, fileCfg.Game.Answers)
	applyStringConfig(cmd, "allowed", &playAllowed, fileCfg.Game.Allowed)
	applyBoolConfig(cmd, "daily", &playDaily, fileCfg.Game.Daily)
	applyIntConfig(cmd, "avoid-recent", &playAvoidRecent, fileCfg.Game.AvoidRecent)
	applyStringConfig(cmd, "daily-salt", &playDailySalt, fileCfg.Game.DailySalt)
	applyIntConfig(cmd, "reveal-step-ms", &playRevealStep, fileCfg.Game.RevealStepMs)
	applyIntConfig(cmd, "message-ms", &playMessage, fileCfg.Game.MessageMs)

	cfg := model.Config{
		AnswersPath:  playAnswers,
		AllowedPath:  playAllowed,
		Daily:        playDaily,
		DailySalt:    playDailySalt,
		AvoidRecent:  playAvoidRecent,
		RevealStepMs: playRevealStep,
		MessageMs:    playMessage,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, closer, err := openLogger(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	words, err := wordlist.Load(cfg.AnswersPath, cfg.AllowedPath)
	if err != nil {
		return fmt.Errorf("failed to load word lists: %w", err)
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

	ctx := context.Background()
	gen := generator.New()
	recent, err := st.RecentTargets(ctx, cfg.AvoidRecent)
	if err != nil {
		logger.Warn().Err(err).Msg("load recent targets")
	}
	gen.AvoidRecent(cfg.AvoidRecent, recent)
	words.SetPicker(gen)

	statsStore := stats.Load(ctx, st, stats.WithLogger(logger))
	opts := []game.Option{
		game.WithRecorder(statsStore),
		game.WithHistory(st),
		game.WithLogger(logger),
		game.WithTimings(game.Timings{
			RevealStep: time.Duration(cfg.RevealStepMs) * time.Millisecond,
			Message:    time.Duration(cfg.MessageMs) * time.Millisecond,
		}),
	}
	title := "TUIDLE"
	if cfg.Daily {
		now := time.Now()
		target := generator.Daily(words.Answers(), now, cfg.DailySalt)
		opts = append(opts, game.WithTarget(target, model.ModeDaily))
		title = "TUIDLE · " + generator.DateKey(now)
	}

	answers, allowed := words.Stats()
	logger.Info().
		Int("answers", answers).
		Int("allowed", allowed).
		Bool("daily", cfg.Daily).
		Msg("starting game")

	engine := game.NewEngine(words, opts...)
	m := tui.NewModel(engine, statsStore, logger, title)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func openLogger(cmd *cobra.Command, fileCfg config.FileConfig) (zerolog.Logger, io.Closer, error) {
	logFile = config.DefaultLogPath()
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	if fileCfg.Log.File != nil && *fileCfg.Log.File != "" {
		logFile = *fileCfg.Log.File
	}
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return logging.OpenFile(logFile, level)
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
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit history to the last N games")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print to stdout instead of opening the browser")
	cmd.Flags().BoolVar(&statsReset, "reset", false, "reset the statistics aggregate")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	if statsLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	cfg := model.StatsConfig{
		Last:  statsLast,
		Plain: statsPlain,
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

	ctx := context.Background()
	out := cmd.OutOrStdout()
	if statsReset {
		if err := stats.Load(ctx, st).Reset(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, "Statistics reset."); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	if cfg.Plain {
		report, err := stats.BuildReport(ctx, st, cfg)
		if err != nil {
			return fmt.Errorf("failed to build report: %w", err)
		}
		width := stats.OutputWidth(out)
		if width > maxPlainBarWidth {
			width = maxPlainBarWidth
		}
		return stats.RenderReport(out, report, width, time.Now())
	}

	m := statsui.NewModel(st, cfg)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Show word list sizes",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.PersistentFlags().StringVar(&playAnswers, "answers", "", "answers word list file")
	cmd.PersistentFlags().StringVar(&playAllowed, "allowed", "", "extra accepted guesses file")
	cmd.AddCommand(&cobra.Command{
		Use:   "check WORD",
		Short: "Report whether a word is accepted",
		Args:  cobra.ExactArgs(1),
		RunE:  runWordsCheckCmd,
	})
	return cmd
}

func loadWordsForCmd(cmd *cobra.Command) (*wordlist.List, error) {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return nil, err
	}
	applyStringConfig(cmd, "answers", &playAnswers, fileCfg.Game.Answers)
	applyStringConfig(cmd, "allowed", &playAllowed, fileCfg.Game.Allowed)
	words, err := wordlist.Load(playAnswers, playAllowed)
	if err != nil {
		return nil, fmt.Errorf("failed to load word lists: %w", err)
	}
	return words, nil
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	words, err := loadWordsForCmd(cmd)
	if err != nil {
		return err
	}
	answers, allowed := words.Stats()
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "answers: %d\naccepted guesses: %d\n", answers, allowed); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runWordsCheckCmd(cmd *cobra.Command, args []string) error {
	words, err := loadWordsForCmd(cmd)
	if err != nil {
		return err
	}
	word := strings.ToUpper(strings.TrimSpace(args[0]))
	if !words.IsValid(word) {
		return fmt.Errorf("%s: %w", word, game.ErrUnknownWord)
	}
	kind := "accepted guess"
	if words.IsAnswer(word) {
		kind = "accepted guess and possible answer"
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", word, kind); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag != nil && flag.Changed {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuidle configuration
# Uncomment a value to enable it. CLI flags and TUIDLE_* variables override config values.

[game]
# answers = ""              # Answers word list file (default: built-in list)
# allowed = ""              # Extra accepted guesses file (default: built-in list)
# avoid-recent = %d         # Number of recent targets not to repeat
# daily = false             # Play the word of the day first
# daily-salt = %q      # Changes which word is picked each day
# reveal-step-ms = %d      # Per-letter reveal duration
# message-ms = %d         # How long messages stay visible

[log]
# level = "info"            # debug, info, warn, error
# file = ""                 # Log file (default: $XDG_STATE_HOME/tuidle/tuidle.log)
`,
		defaultAvoidRecent,
		defaultDailySalt,
		defaultRevealStepMs,
		defaultMessageMs,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.AvoidRecent < 0 {
		return fmt.Errorf("--avoid-recent must be >= 0")
	}
	if cfg.RevealStepMs <= 0 {
		return fmt.Errorf("reveal-step-ms must be > 0")
	}
	if cfg.MessageMs <= 0 {
		return fmt.Errorf("message-ms must be > 0")
	}
	if cfg.Daily && cfg.DailySalt == "" {
		return fmt.Errorf("daily-salt must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
