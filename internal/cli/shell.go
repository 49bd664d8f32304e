// Package cli is the interactive terminal front end of the registry.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/logger"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/phone"
	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/query"
)

// Registry is the engine surface the shell drives.
type Registry interface {
	Check(ctx context.Context, raw string) model.MatchResult
	ReportWithPrompt(ctx context.Context, raw string, prompter model.Prompter) (model.ScamEntry, error)
	Remove(ctx context.Context, raw string, confirmer model.Confirmer) (model.ScamEntry, bool, error)
	Search(ctx context.Context, term string) []model.ScamEntry
	Stats(ctx context.Context) model.Stats
	Entries(ctx context.Context) []model.ScamEntry
}

// Terminal reads command lines and answers prompts.
type Terminal interface {
	model.Confirmer
	model.Prompter
	ReadLine() (string, bool)
}

const helpText = `Commands:
  check <number>    look a number up
  report <number>   add a scam number (asks for category and description)
  remove <number>   delete a number after confirmation
  list              show every entry, newest first
  search <term>     find entries by number, category or description
  stats             show registry counts
  format <digits>   preview how a number is written
  help              show this help
  quit              leave
`

// Shell runs a read-eval-print loop over a Terminal.
type Shell struct {
	registry Registry
	term     Terminal
	out      io.Writer
	logger   *logger.Logger
}

// NewShell creates a Shell writing results to out.
func NewShell(registry Registry, term Terminal, out io.Writer, logger *logger.Logger) *Shell {
	return &Shell{registry: registry, term: term, out: out, logger: logger}
}

// Run processes commands until quit, end of input or ctx cancellation.
func (s *Shell) Run(ctx context.Context) {
	s.printStats(ctx)
	fmt.Fprintln(s.out, `Type "help" for commands.`)

	for ctx.Err() == nil {
		fmt.Fprint(s.out, "> ")
		line, ok := s.term.ReadLine()
		if !ok {
			fmt.Fprintln(s.out)
			return
		}
		if !s.Exec(ctx, line) {
			return
		}
	}
}

// Exec runs one command line. It returns false when the shell should exit.
func (s *Shell) Exec(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "":
	case "check":
		s.check(ctx, arg)
	case "report":
		s.report(ctx, arg)
	case "remove", "delete":
		s.remove(ctx, arg)
	case "list":
		s.printEntries(s.registry.Entries(ctx), true)
	case "search":
		s.printEntries(s.registry.Search(ctx, arg), false)
	case "stats":
		s.printStats(ctx)
	case "format":
		s.format(arg)
	case "help":
		fmt.Fprint(s.out, helpText)
	case "quit", "exit":
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type \"help\" for commands.\n", cmd)
	}

	return true
}

func (s *Shell) check(ctx context.Context, raw string) {
	if raw == "" {
		fmt.Fprintln(s.out, "Please enter a number to check.")
		return
	}

	res := s.registry.Check(ctx, raw)
	if !res.Matched {
		fmt.Fprintln(s.out, "This number is not in our database.")
		return
	}
	fmt.Fprintf(s.out, "WARNING: This phone number is currently recognized as a scam number (%s).\n", res.Category)
}

func (s *Shell) report(ctx context.Context, raw string) {
	entry, err := s.registry.ReportWithPrompt(ctx, raw, s.term)
	switch {
	case err == nil:
		fmt.Fprintf(s.out, "Thank you for reporting %s! It has been added to our database.\n", entry.Number)
	case errors.Is(err, model.ErrEmptyInput):
		fmt.Fprintln(s.out, "Please enter a number to report.")
	case errors.Is(err, model.ErrDuplicate):
		fmt.Fprintln(s.out, "This number has already been reported as a scam.")
	default:
		s.printError(err)
	}
}

func (s *Shell) remove(ctx context.Context, raw string) {
	if raw == "" {
		fmt.Fprintln(s.out, "Please enter a number to delete.")
		return
	}

	entry, removed, err := s.registry.Remove(ctx, raw, s.term)
	switch {
	case errors.Is(err, model.ErrNotFound):
		fmt.Fprintln(s.out, "This number is not in the database.")
	case err != nil:
		s.printError(err)
	case !removed:
		fmt.Fprintln(s.out, "Removal cancelled.")
	default:
		fmt.Fprintf(s.out, "Phone number %s has been removed from the database.\n", entry.Number)
	}
}

func (s *Shell) format(raw string) {
	formatted, ok := phone.FormatPartial(raw)
	if !ok {
		fmt.Fprintf(s.out, "Too many digits: a phone number has %d.\n", phone.Length)
		return
	}
	fmt.Fprintln(s.out, formatted)
}

func (s *Shell) printError(err error) {
	switch {
	case errors.Is(err, model.ErrInvalidLength):
		fmt.Fprintf(s.out, "Please enter a valid %d-digit phone number.\n", phone.Length)
	case errors.Is(err, model.ErrPersistence):
		s.logger.Error("registry not saved", "error", err)
		fmt.Fprintln(s.out, "Could not save the registry; nothing was changed.")
	default:
		s.logger.Error("command failed", "error", err)
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *Shell) printStats(ctx context.Context) {
	st := s.registry.Stats(ctx)
	fmt.Fprintf(s.out, "Registry: %d numbers, %d reported today.\n", st.Total, st.ReportedToday)
}

func (s *Shell) printEntries(entries []model.ScamEntry, sortFirst bool) {
	if len(entries) == 0 {
		fmt.Fprintln(s.out, "No matching entries.")
		return
	}
	if sortFirst {
		entries = query.SortByRecency(entries)
	}

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tCATEGORY\tREPORTED\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Number, e.Category, e.Timestamp.Local().Format("2006-01-02"), e.Description)
	}
	_ = w.Flush()
}
