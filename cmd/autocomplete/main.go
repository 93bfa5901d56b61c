package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/drake/autocomplete/config"
	"github.com/drake/autocomplete/debug"
	"github.com/drake/autocomplete/lua"
	"github.com/drake/autocomplete/suggest"
	"github.com/drake/autocomplete/ui/app"
)

var (
	configPath  string
	wordsFile   string
	scriptPath  string
	placeholder string
	maxVisible  int
)

var rootCmd = &cobra.Command{
	Use:   "autocomplete",
	Short: "Interactive demo of the autocomplete widget",
	Long: `Runs a text field with a dropdown of suggestions.

Suggestions come from a word list (built-in animals by default, or --words),
plus any words an init.lua script registers with autocomplete.words().
The script may also change how rows look with autocomplete.render_item().`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.File(), "config file")
	rootCmd.Flags().StringVarP(&wordsFile, "words", "w", "", "word list, one per line")
	rootCmd.Flags().StringVarP(&scriptPath, "script", "s", "", "Lua init script (default: init.lua in the config dir, if present)")
	rootCmd.Flags().StringVar(&placeholder, "placeholder", "", "placeholder text")
	rootCmd.Flags().IntVar(&maxVisible, "max", 0, "maximum visible rows")
}

func run(cmd *cobra.Command, args []string) error {
	logger := debug.NewLogger(config.Dir())

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("words") {
		cfg.WordsFile = wordsFile
	}
	if cmd.Flags().Changed("script") {
		cfg.Script = scriptPath
	}
	if cmd.Flags().Changed("placeholder") {
		cfg.Placeholder = placeholder
	}
	if maxVisible > 0 {
		cfg.MaxVisible = maxVisible
	}

	source := suggest.Default()
	if cfg.WordsFile != "" {
		if source, err = suggest.LoadFile(cfg.WordsFile); err != nil {
			return err
		}
	}

	opts := app.Options{Config: cfg, Source: source, Logger: logger}

	script := cfg.Script
	if script == "" {
		if _, err := os.Stat(config.InitFile()); err == nil {
			script = config.InitFile()
		}
	}
	if script != "" {
		engine, err := lua.Open(script, logger)
		if err != nil {
			return err
		}
		defer engine.Close()

		if words := engine.Words(); len(words) > 0 {
			opts.Source = suggest.New(append(words, source.Words()...))
		}
		if engine.HasRenderer() {
			opts.Render = engine.RenderItem
		}
	}

	logger.Printf("starting with %d words", opts.Source.Len())
	if _, err := tea.NewProgram(app.New(opts)).Run(); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
