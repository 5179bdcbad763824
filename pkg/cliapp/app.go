// SPDX-License-Identifier: MPL-2.0

package cliapp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"clistart/internal/config"
	"clistart/internal/manifest"
	"clistart/internal/update"
	"clistart/pkg/clierr"
	"clistart/pkg/clihelp"
	"clistart/pkg/cliopts"
	"clistart/pkg/cmdtree"
)

//nolint:gochecknoglobals // Test seam for os.Chdir().
var osChdir = os.Chdir

type (
	// App is the application shell: the package descriptor, the host
	// configuration, the command registry and the output streams, wired
	// together by Run for each invocation.
	App struct {
		manifest *manifest.Manifest
		host     *config.Config
		registry *cmdtree.Registry
		checker  update.Checker
		out      io.Writer
		errOut   io.Writer
	}

	// Option configures an App during construction.
	Option func(*App)
)

// WithOutput redirects the regular and diagnostic streams. The defaults
// are os.Stdout and os.Stderr.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

// WithHostConfig supplies the host-level settings. The default is
// config.DefaultConfig(); a main package that loads config files passes
// the loaded value here.
func WithHostConfig(c *config.Config) Option {
	return func(a *App) { a.host = c }
}

// WithUpdateChecker enables the end-of-run update notification. Without
// a checker the notification step is skipped entirely.
func WithUpdateChecker(c update.Checker) Option {
	return func(a *App) { a.checker = c }
}

// New builds an application shell from its package descriptor. The
// descriptor must carry a name and a version; the schema validation in
// the manifest package normally guarantees both.
func New(m *manifest.Manifest, opts ...Option) (*App, error) {
	if m == nil {
		return nil, errors.New("package descriptor is required")
	}
	if m.Name == "" || m.Version == "" {
		return nil, errors.New("package descriptor must declare name and version")
	}
	a := &App{
		manifest: m,
		host:     config.DefaultConfig(),
		registry: cmdtree.NewRegistry(),
		out:      os.Stdout,
		errOut:   os.Stderr,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Add registers a command (and its declared subcommands) with the shell.
// The handler of every Spec must be a CommandFactory.
func (a *App) Add(spec cmdtree.Spec) error {
	_, err := a.registry.Add(spec)
	return err
}

// Registry exposes the command tree, mainly for tests and for hosts that
// need to inspect the registered commands.
func (a *App) Registry() *cmdtree.Registry { return a.registry }

// Run executes one invocation. argv is the raw argument vector without
// the program name. The returned exit code is what the process should
// exit with; Run itself never calls os.Exit.
func (a *App) Run(argv []string) clierr.ExitCode {
	cfg := cliopts.NewConfig()

	// Early pass: the common options act here, so the working directory,
	// the log level and the help/version requests settle before any
	// command is resolved. Resolution continues on what the pass left.
	common := commonGroup(a.host.LogLevel)
	early := cliopts.New()
	early.AddCommonGroups(common)
	early.InitConfig(cfg)
	rest, err := early.ParseEarly(cfg, argv)
	if err != nil {
		fmt.Fprintf(a.errOut, "error: %v\n", err)
		a.printProgramHelp()
		return clierr.ExitSyntax
	}

	if cfg.WorkingDir != "" {
		if err := osChdir(cfg.WorkingDir); err != nil {
			fmt.Fprintf(a.errOut, "error: %v\n", err)
			return clierr.ExitInput
		}
	}

	if cfg.IsVersion {
		fmt.Fprintln(a.out, a.manifest.Version)
		return clierr.ExitSuccess
	}

	if len(rest) == 0 || strings.HasPrefix(rest[0], "-") {
		a.printProgramHelp()
		if cfg.IsHelp {
			return clierr.ExitSuccess
		}
		return clierr.ExitSyntax
	}

	res, err := a.registry.Resolve(rest)
	if err != nil {
		fmt.Fprintf(a.errOut, "error: %v\n", err)
		a.printProgramHelp()
		return clierr.ExitSyntax
	}

	node := res.Node
	if node.Handler() == nil {
		// A namespace node was reached without a runnable subcommand.
		a.printCommandHelp(node, a.commonOnly())
		if cfg.IsHelp {
			return clierr.ExitSuccess
		}
		return clierr.ExitSyntax
	}
	factory, ok := node.Handler().(CommandFactory)
	if !ok {
		fmt.Fprintf(a.errOut, "error: command '%s' has no runnable handler\n",
			strings.Join(node.CanonicalPath(), " "))
		return clierr.ExitApplication
	}

	ctx := &Context{
		ProgramName: a.manifest.Name,
		Version:     a.manifest.Version,
		Config:      cfg,
		Log:         a.newLogger(cfg.LogLevel),
		Out:         a.out,
		ErrOut:      a.errOut,
		CommandPath: node.CanonicalPath(),
	}
	cmd := factory(ctx)

	// The command's own defaults apply now; the common defaults were
	// already established by the early engine, so the common group joins
	// after InitConfig to avoid resetting what the early pass decided.
	opts := cliopts.New()
	opts.AddGroups(cmd.OptionGroups()...)
	opts.InitConfig(cfg)
	opts.AddCommonGroups(common)

	outcome, err := opts.Parse(cfg, res.Rest)
	if err != nil {
		fmt.Fprintf(a.errOut, "error: %v\n", err)
		a.printCommandHelp(node, opts)
		return clierr.ExitSyntax
	}

	args := a.filterUnsupported(outcome.Remaining)

	if cfg.IsHelp {
		a.printCommandHelp(node, opts)
		return clierr.ExitSuccess
	}

	if len(outcome.MissingMandatory) > 0 {
		for _, msg := range outcome.MissingMandatory {
			fmt.Fprintf(a.errOut, "error: %s\n", msg)
		}
		a.printCommandHelp(node, opts)
		return clierr.ExitSyntax
	}

	code, err := cmd.Run(args)
	if err != nil {
		fmt.Fprintf(a.errOut, "error: %v\n", err)
		if code == clierr.ExitSuccess {
			code = clierr.CodeOf(err)
		}
		if code == clierr.ExitSyntax {
			a.printCommandHelp(node, opts)
		}
	}

	a.maybeNotifyUpdate(cfg)
	return code
}

// filterUnsupported strips option-looking tokens the parse left behind,
// warning once per token. Everything after the "--" separator passes
// through verbatim, the separator itself removed.
func (a *App) filterUnsupported(remaining []string) []string {
	var args []string
	for i := 0; i < len(remaining); i++ {
		tok := remaining[i]
		if tok == "--" {
			args = append(args, remaining[i+1:]...)
			break
		}
		if strings.HasPrefix(tok, "-") && tok != "-" {
			fmt.Fprintf(a.errOut, "warning: Option '%s' not supported; ignored\n", tok)
			continue
		}
		args = append(args, tok)
	}
	return args
}

// maybeNotifyUpdate runs the update check after a command completes,
// unless the notifier is disabled by flag or host configuration.
func (a *App) maybeNotifyUpdate(cfg *cliopts.Config) {
	if a.checker == nil || cfg.NoUpdateNotifier || a.host.NoUpdateNotifier {
		return
	}
	latest, newer, err := a.checker.Check(a.manifest.Version)
	if err != nil || !newer {
		return
	}
	fmt.Fprintln(a.errOut, update.Notice(a.manifest.Name, a.manifest.Version, latest))
}

func (a *App) newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(a.errOut, log.Options{
		Prefix: a.manifest.Name,
	})
	logger.SetLevel(parseLevel(level))
	return logger
}

// commonOnly builds an options engine carrying just the common group,
// for help screens rendered before any command contributes groups.
func (a *App) commonOnly() *cliopts.Options {
	opts := cliopts.New()
	opts.AddCommonGroups(commonGroup(a.host.LogLevel))
	return opts
}

func (a *App) printProgramHelp() {
	h := clihelp.New(a.out)
	h.OutputTitle(a.manifest.Description)
	h.OutputUsage(a.manifest.Name, nil, a.registry.Len() > 0)
	h.OutputCommands(a.registry.Names())
	h.OutputOptionGroups(a.commonOnly().AllGroups())
}

func (a *App) printCommandHelp(node *cmdtree.Node, opts *cliopts.Options) {
	h := clihelp.New(a.out)
	h.OutputTitle(a.manifest.Description)
	h.OutputUsage(a.manifest.Name, node.CanonicalPath(), node.HasSubcommands())
	if node.HasSubcommands() {
		h.OutputCommands(node.Subcommands().Names())
	}
	h.OutputOptionGroups(opts.AllGroups())
}
