package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/n2code/docindex"
	"github.com/n2code/docindex/cmd/docindex/flags"
	"github.com/n2code/docindex/internal/config"
)

type CliRequest struct {
	verbose    bool
	quiet      bool
	plain      bool
	root       string
	configPath string //empty if the default location shall be used
	action     string
	override   func(*config.Settings)
}

const (
	actionGenerate = "generate"
	actionStdout   = "stdout"
	actionCheck    = "check"
	actionTree     = "tree"
	actionWatch    = "watch"
)

var errStale = errors.New("index is out of date (run without --check to regenerate it)")

type usageError struct {
	cause error
}

func (e usageError) Error() string {
	return e.cause.Error()
}

func newApp(out io.Writer, errOut io.Writer, action cli.ActionFunc) *cli.App {
	return &cli.App{
		Name:  "docindex",
		Usage: "Generate a markdown index linking to all documents below a directory",
		UsageText: "docindex [FLAGS] [ROOT]\n\n" +
			"   ROOT defaults to the working directory. The index is written to ROOT/Index.md unless\n" +
			"   configured otherwise, either by flags or by a " + config.DefaultFileName + " file in ROOT.",
		HideVersion:               true,
		UseShortOptionHandling:    true,
		DisableSliceFlagSeparator: true,
		Writer:                    out,
		ErrWriter:                 errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: flags.Verbose, Aliases: []string{"v"}, Usage: "Output more details on what is done (verbose mode)"},
			&cli.BoolFlag{Name: flags.Quiet, Aliases: []string{"q"}, Usage: "Output as little as possible, i.e. only requested information (quiet mode)"},
			&cli.BoolFlag{Name: flags.Plain, Aliases: []string{"p"}, Usage: "Never use terminal escape sequences for formatting"},
			&cli.StringFlag{Name: flags.Output, Aliases: []string{"o"}, Usage: "File name of the index inside ROOT (never linked itself)"},
			&cli.StringFlag{Name: flags.Config, Aliases: []string{"c"}, Usage: "Settings file (default: ROOT/" + config.DefaultFileName + ")"},
			&cli.StringSliceFlag{Name: flags.Exclude, Aliases: []string{"e"}, Usage: "Skip paths matching the glob pattern, relative to ROOT (e.g. --exclude '.git' --exclude '**/drafts/**')"},
			&cli.StringFlag{Name: flags.Order, Usage: "Order of entries: \"" + config.OrderByName + "\" or \"" + config.OrderByFilesystem + "\" (as enumerated by the OS)"},
			&cli.BoolFlag{Name: flags.FollowSymlinks, Aliases: []string{"L"}, Usage: "Follow symbolic links, every directory is indexed at most once"},
			&cli.BoolFlag{Name: flags.Headings, Usage: "Use the first heading of each document as link text"},
			&cli.BoolFlag{Name: flags.StripIds, Usage: "Remove document IDs of standardized filenames (name.md.<ID>.ndoc.md) from link texts"},
			&cli.BoolFlag{Name: flags.Stdout, Usage: "Print the index instead of writing it"},
			&cli.BoolFlag{Name: flags.Check, Usage: "Only verify that the index is up to date, exit code 1 if not"},
			&cli.BoolFlag{Name: flags.Tree, Aliases: []string{"t"}, Usage: "Print the indexed documents as a tree instead of writing the index"},
			&cli.BoolFlag{Name: flags.Watch, Aliases: []string{"w"}, Usage: "Keep regenerating the index whenever something changes"},
		},
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			return usageError{cause: err}
		},
		ExitErrHandler: func(c *cli.Context, err error) {}, //exit codes are handled by run
		Action:         action,
	}
}

func parseFlags(args []string, out io.Writer, errOut io.Writer) (request *CliRequest, exitCode int) {
	app := newApp(out, errOut, func(c *cli.Context) error {
		rq, err := requestFromContext(c)
		if err != nil {
			return usageError{cause: err}
		}
		request = rq
		return nil
	})

	if err := app.Run(append([]string{app.Name}, args...)); err != nil {
		fmt.Fprintf(errOut, "%s\nUsage help: docindex -h\n", err)
		return nil, 2
	}
	return request, 0 //request is nil if only help was shown
}

func requestFromContext(c *cli.Context) (*CliRequest, error) {
	rq := &CliRequest{
		verbose:    c.Bool(flags.Verbose),
		quiet:      c.Bool(flags.Quiet),
		plain:      c.Bool(flags.Plain),
		root:       ".",
		configPath: c.String(flags.Config),
		action:     actionGenerate,
	}
	if rq.verbose && rq.quiet {
		return nil, errors.New("quiet mode and verbose mode are mutually exclusive")
	}

	switch c.NArg() {
	case 0:
	case 1:
		rq.root = c.Args().First()
	default:
		return nil, errors.New("too many arguments, at most one ROOT expected")
	}

	selected := 0
	for _, action := range []string{actionStdout, actionCheck, actionTree, actionWatch} {
		if c.Bool(action) {
			rq.action = action
			selected++
		}
	}
	if selected > 1 {
		return nil, fmt.Errorf("flags --%s, --%s, --%s, and --%s are mutually exclusive", flags.Stdout, flags.Check, flags.Tree, flags.Watch)
	}

	output := c.String(flags.Output)
	outputSet := c.IsSet(flags.Output)
	excludes := c.StringSlice(flags.Exclude)
	order := c.String(flags.Order)
	orderSet := c.IsSet(flags.Order)
	followSymlinks := c.Bool(flags.FollowSymlinks)
	headings := c.Bool(flags.Headings)
	stripIds := c.Bool(flags.StripIds)
	rq.override = func(s *config.Settings) {
		if outputSet {
			s.Output = output
		}
		s.Exclude = append(s.Exclude, excludes...)
		if orderSet {
			s.Order = order
		}
		if followSymlinks {
			s.FollowSymlinks = true
		}
		if headings {
			s.Labels = config.LabelsFromHeading
		}
		if stripIds {
			s.StripIds = true
		}
	}
	return rq, nil
}

func (rq *CliRequest) loadSettings() (config.Settings, error) {
	path := rq.configPath
	if path == "" {
		path = filepath.Join(rq.root, config.DefaultFileName)
	} else if _, err := os.Stat(path); err != nil {
		return config.Settings{}, fmt.Errorf("settings file unavailable: %w", err)
	}
	settings, err := config.Load(path)
	if err != nil {
		return settings, err
	}
	rq.override(&settings)
	return settings, nil
}

func (rq *CliRequest) execute(out io.Writer, errOut io.Writer) error {
	settings, err := rq.loadSettings()
	if err != nil {
		return err
	}

	createConfig := docindex.CreateConfig{
		Settings:     settings,
		AllowEscapes: !rq.plain && escapesSupported(out),
		Out:          out,
		ErrOut:       errOut,
	}
	if rq.verbose {
		createConfig.Verbosity = docindex.VerboseMode
	}
	if rq.quiet {
		createConfig.Verbosity = docindex.QuietMode
	}

	api, err := docindex.New(rq.root, createConfig)
	if err != nil {
		return err
	}

	switch rq.action {
	case actionGenerate:
		_, err = api.Generate()
		return err
	case actionStdout:
		index, err := api.Build()
		if err != nil {
			return err
		}
		fmt.Fprint(out, index)
	case actionCheck:
		current, err := api.Check()
		if err != nil {
			return err
		}
		if !current {
			return errStale
		}
	case actionTree:
		return api.PrintTree()
	case actionWatch:
		ctx, stop := interruptibleContext()
		defer stop()
		return api.Watch(ctx)
	default:
		panic("bad action")
	}
	return nil
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	rq, rc := parseFlags(args, out, errOut)
	if rc != 0 || rq == nil {
		return rc
	}
	if err := rq.execute(out, errOut); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
