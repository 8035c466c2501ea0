package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xolan/dayreport/internal/config"
	"github.com/xolan/dayreport/internal/discover"
	"github.com/xolan/dayreport/internal/pipeline"
	"github.com/xolan/dayreport/internal/render"
	"github.com/xolan/dayreport/internal/timeutil"
)

var rootCmd = &cobra.Command{
	Use:   "dayreport",
	Short: "Generate a daily activity report from commits, working changes, and notes",
	Long: `dayreport aggregates one day of work activity from git and svn commit
history, uncommitted working changes, and manual notes, and renders it
as markdown, html, csv, or json.

Usage:
  dayreport                                    Report for today, saved to the output dir
  dayreport --date 2025-09-20                  Report for a specific day
  dayreport --git ~/src/app --svn ~/src/old    Collect from explicit repositories
  dayreport --discover --roots ~/src           Auto-discover repositories
  dayreport --add '09:10 crash dump analysis'  Add a manual note line
  dayreport --notes notes.txt                  Parse a note file
  dayreport --format json --stdout             Print JSON to stdout
  dayreport tui                                Interactive preview

Note lines start with an optional HH:MM time; lines without one keep
their file order and sort after all timed entries.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		generateReport(cmd)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("date", "", "Report date (YYYY-MM-DD or DD/MM/YYYY, default: today)")
	pf.StringSlice("git", nil, "Git repository paths (overrides config)")
	pf.StringSlice("svn", nil, "Subversion working copy paths (overrides config)")
	pf.String("notes", "", "Note file path (each line: 'HH:MM text' or free text)")
	pf.StringArray("add", nil, "Add a manual note line (repeatable)")
	pf.Bool("no-vcs", false, "Skip commit and working-change collection")
	pf.Bool("no-working", false, "Skip uncommitted working-change detection")
	pf.Bool("discover", false, "Auto-discover repositories under the discovery roots")
	pf.StringSlice("roots", nil, "Discovery root paths (default: current directory)")
	pf.String("author", "", "Only include commits by this author")
	pf.String("config", "", "Config file path (default: user config dir)")

	f := rootCmd.Flags()
	f.StringP("format", "f", "", "Output format: md, html, csv, or json (default: md or config)")
	f.StringP("output", "o", "", "Write the report to this path")
	f.Bool("stdout", false, "Print the report to stdout instead of saving a file")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"dayreport version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// resolveOptions builds pipeline options from flags and config. Flags
// override config values. Returns ok=false after reporting an error.
func resolveOptions(cmd *cobra.Command) (pipeline.Options, config.Config, bool) {
	flags := cmd.Flags()
	var opts pipeline.Options

	cfgPath, _ := flags.GetString("config")
	if cfgPath == "" {
		var err error
		cfgPath, err = deps.ConfigPath()
		if err != nil {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to determine config location")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
			deps.Exit(1)
			return opts, config.Config{}, false
		}
	}

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check the config file: %s\n", cfgPath)
		deps.Exit(1)
		return opts, config.Config{}, false
	}

	day := timeutil.Today()
	if dateStr, _ := flags.GetString("date"); dateStr != "" {
		day, err = timeutil.ParseDate(dateStr)
		if err != nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --date value\n")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
			deps.Exit(1)
			return opts, cfg, false
		}
	}

	gitRepos, _ := flags.GetStringSlice("git")
	if len(gitRepos) == 0 {
		gitRepos = cfg.GitPaths
	}
	svnRepos, _ := flags.GetStringSlice("svn")
	if len(svnRepos) == 0 {
		svnRepos = cfg.SvnPaths
	}

	discoverFlag, _ := flags.GetBool("discover")
	if discoverFlag || cfg.Discover {
		roots, _ := flags.GetStringSlice("roots")
		if len(roots) == 0 {
			roots = cfg.DiscoverRoots
		}
		if len(roots) == 0 {
			if cwd, err := os.Getwd(); err == nil {
				roots = []string{cwd}
			}
		}
		foundGit, foundSvn := discover.Repos(roots)
		gitRepos = discover.DedupPaths(append(gitRepos, foundGit...))
		svnRepos = discover.DedupPaths(append(svnRepos, foundSvn...))
	}

	if noVCS, _ := flags.GetBool("no-vcs"); noVCS {
		gitRepos, svnRepos = nil, nil
	}

	notesFile, _ := flags.GetString("notes")
	if notesFile == "" {
		notesFile = cfg.NotesFile
	}
	if notesFile == "" && cfg.NotesDir != "" {
		candidate := filepath.Join(cfg.NotesDir, day.Format("2006-01-02")+".txt")
		if _, err := os.Stat(candidate); err == nil {
			notesFile = candidate
		}
	}

	noWorking, _ := flags.GetBool("no-working")
	author, _ := flags.GetString("author")
	if author == "" {
		author = cfg.Author
	}
	manualNotes, _ := flags.GetStringArray("add")

	opts = pipeline.Options{
		Date:           day,
		GitRepos:       gitRepos,
		SvnRepos:       svnRepos,
		Author:         author,
		IncludeWorking: cfg.IncludeWorking && !noWorking,
		NotesFile:      notesFile,
		ManualNotes:    manualNotes,
		Runner:         deps.Runner,
	}
	return opts, cfg, true
}

// generateReport runs the pipeline and hands the rendered text to the
// chosen sink (file or stdout).
func generateReport(cmd *cobra.Command) {
	opts, cfg, ok := resolveOptions(cmd)
	if !ok {
		return
	}

	formatStr, _ := cmd.Flags().GetString("format")
	if formatStr == "" {
		formatStr = cfg.Format
	}
	format, err := render.ParseFormat(formatStr)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Invalid output format")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Use --format md, html, csv, or json")
		deps.Exit(1)
		return
	}
	opts.Format = format

	result, err := pipeline.Run(cmd.Context(), opts)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to render report")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	for _, w := range result.Warnings {
		_, _ = fmt.Fprintln(deps.Stderr, styled(deps.Stderr, warningStyle,
			fmt.Sprintf("Warning: %s skipped: %v", w.Source, w.Err)))
	}

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		_, _ = fmt.Fprint(deps.Stdout, result.Text)
		return
	}

	outPath, _ := cmd.Flags().GetString("output")
	if outPath == "" {
		dir := cfg.OutputDir
		if dir == "" {
			dir = "reports"
		}
		outPath = filepath.Join(dir, opts.Date.Format("2006-01-02")+result.Ext)
	}
	if err := writeReport(outPath, result.Text); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to write report")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that the directory is writable: %s\n", filepath.Dir(outPath))
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, styled(deps.Stdout, successStyle,
		fmt.Sprintf("Report saved: %s", outPath)))
}

// writeReport writes the rendered text, creating parent directories as
// needed.
func writeReport(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(text), 0644)
}
