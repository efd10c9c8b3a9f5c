// Package cli implements textctl, the command line tool used to inspect
// and validate the game text.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"cabriolet/internal/application"
	"cabriolet/internal/domain"
	"cabriolet/internal/domain/entities"
	"cabriolet/internal/infrastructure/i18n"
	"cabriolet/internal/infrastructure/usage"
	"cabriolet/internal/ports/output"
)

const usageText = `usage: textctl [-variant name] <command> [arguments]

commands:
  variants                 list content variants
  namespaces               list namespaces
  keys [namespace]         list keys, optionally of one namespace
  get <key>                show an entry
  resolve <key> [args...]  render an entry with arguments
  check [-dir d] [pkgs...] compare keys used in Go code with the table
  export                   print the table as a go-i18n TOML file
  preview                  print the game screens with sample values
`

// errUsage makes Run print the usage text.
var errUsage = errors.New("invalid usage")

// ScanFunc finds the keys requested by the Go packages under dir.
type ScanFunc func(dir string, patterns ...string) (entities.Usage, error)

// App is the textctl command set.
type App struct {
	catalog output.TextCatalog
	out     io.Writer
	logger  zerolog.Logger
	scan    ScanFunc
}

func New(catalog output.TextCatalog, out io.Writer, logger zerolog.Logger) *App {
	return &App{
		catalog: catalog,
		out:     out,
		logger:  logger,
		scan:    usage.Scan,
	}
}

// WithScanner replaces the package scanner used by "check".
func (a *App) WithScanner(scan ScanFunc) *App {
	a.scan = scan
	return a
}

// Run executes one command and returns the process exit code.
func (a *App) Run(args []string) int {
	fs := flag.NewFlagSet("textctl", flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.Usage = func() { fmt.Fprint(a.out, usageText) }
	variant := fs.String("variant", "", "content variant (default: canonical)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	res, err := application.NewVariantResolver(a.catalog, *variant)
	if err != nil {
		a.logger.Error().Err(err).Msg("select variant")
		return 1
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "variants":
		err = a.variants()
	case "namespaces":
		err = a.namespaces(res)
	case "keys":
		err = a.keys(res, rest)
	case "get":
		err = a.get(res, rest)
	case "resolve":
		err = a.resolve(res, rest)
	case "check":
		var ok bool
		ok, err = a.check(res, rest)
		if err == nil && !ok {
			return 1
		}
	case "export":
		err = a.export(*variant)
	case "preview":
		err = a.preview(res)
	default:
		err = errUsage
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fs.Usage()
		return 2
	default:
		a.logger.Error().Err(err).Str("command", cmd).Str("code", domain.Code(err)).Msg("command failed")
		return 1
	}
}

func (a *App) variants() error {
	for _, v := range a.catalog.Variants() {
		fmt.Fprintln(a.out, v)
	}
	return nil
}

func (a *App) namespaces(res *application.Resolver) error {
	for _, ns := range res.Namespaces() {
		fmt.Fprintf(a.out, "%-12s %d\n", ns, len(res.KeysIn(ns)))
	}
	return nil
}

func (a *App) keys(res *application.Resolver, args []string) error {
	var keys []entities.Key
	switch len(args) {
	case 0:
		keys = res.Keys()
	case 1:
		keys = res.KeysIn(args[0])
		if len(keys) == 0 {
			return fmt.Errorf("unknown namespace %q", args[0])
		}
	default:
		return errUsage
	}
	for _, k := range keys {
		fmt.Fprintln(a.out, k)
	}
	return nil
}

func (a *App) get(res *application.Resolver, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	e, err := res.Get(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (%s)\n", e.Key(), e.Kind())
	switch e.Kind() {
	case entities.KindLiteral:
		fmt.Fprintln(a.out, e.Text())
	case entities.KindList:
		for i, item := range e.Items() {
			fmt.Fprintf(a.out, "%d. %s\n", i+1, item)
		}
	case entities.KindTemplate:
		params := make([]string, 0, len(e.Params()))
		for _, p := range e.Params() {
			params = append(params, p.Name+":"+string(p.Kind))
		}
		fmt.Fprintf(a.out, "params: %s\n", strings.Join(params, ", "))
		for _, f := range e.Forms() {
			body, _ := e.Source(f)
			fmt.Fprintf(a.out, "%-5s %s\n", f, body)
		}
	}
	return nil
}

func (a *App) resolve(res *application.Resolver, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	e, err := res.Get(args[0])
	if err != nil {
		return err
	}
	values, err := application.ParseArgs(e, args[1:])
	if err != nil {
		return err
	}
	text, err := res.Resolve(args[0], values...)
	if err != nil {
		return err
	}
	for _, line := range text.Lines() {
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// check reports keys used in code but missing from the table (failure)
// and table keys no code uses (informational).
func (a *App) check(res *application.Resolver, args []string) (bool, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(a.out)
	dir := fs.String("dir", ".", "module directory to scan")
	if err := fs.Parse(args); err != nil {
		return false, errUsage
	}

	used, err := a.scan(*dir, fs.Args()...)
	if err != nil {
		return false, err
	}
	table, err := a.catalog.Variant(res.Variant())
	if err != nil {
		return false, err
	}
	report := application.Audit(table, used)

	for _, m := range report.Missing {
		for _, ref := range m.Refs {
			fmt.Fprintf(a.out, "missing  %s  %s\n", m.Key, ref)
		}
	}
	for _, k := range report.Orphaned {
		fmt.Fprintf(a.out, "unused   %s\n", k)
	}
	fmt.Fprintf(a.out, "%d keys used, %d missing, %d unused\n", len(used), len(report.Missing), len(report.Orphaned))

	a.logger.Debug().
		Int("used", len(used)).
		Int("missing", len(report.Missing)).
		Int("unused", len(report.Orphaned)).
		Msg("key audit")
	return report.OK(), nil
}

func (a *App) export(variant string) error {
	table, err := a.catalog.Variant(variant)
	if err != nil {
		return err
	}
	return i18n.Export(a.out, table)
}
