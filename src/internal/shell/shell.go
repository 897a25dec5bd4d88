// FILE: logbook/src/internal/shell/shell.go
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"logbook/src/internal/core"

	"github.com/lixenwraith/log"
)

// LogStore is the store surface driven by the shell
type LogStore interface {
	Append(level, message string)
	List() []string
	Update(index int, level, message string) bool
	Delete(index int) bool
	AnalyzeErrors() map[string]int
	Summarize() core.Summary
	Export(path string) error
	Import(path string) (int, error)
}

// Options controls what the shell prints besides results
type Options struct {
	// Print the numbered menu before every choice
	ShowMenu bool
	// Print input prompts
	Prompts bool
	// Filename used when the export/import prompt is left empty
	DefaultFile string
}

// errExit ends the loop from within a handler
var errExit = errors.New("exit requested")

type handler func(s *Shell) error

// Shell runs the numbered menu over a reader/writer pair
type Shell struct {
	store    LogStore
	in       *bufio.Reader
	out      io.Writer
	opts     Options
	logger   *log.Logger
	handlers map[Command]handler
}

// New creates a shell bound to store
func New(store LogStore, in io.Reader, out io.Writer, opts Options, logger *log.Logger) *Shell {
	if logger == nil {
		logger = log.NewLogger()
	}
	return &Shell{
		store:  store,
		in:     bufio.NewReader(in),
		out:    out,
		opts:   opts,
		logger: logger,
		handlers: map[Command]handler{
			CmdCreate:    (*Shell).create,
			CmdRead:      (*Shell).read,
			CmdUpdate:    (*Shell).update,
			CmdDelete:    (*Shell).remove,
			CmdAnalyze:   (*Shell).analyze,
			CmdSummarize: (*Shell).summarize,
			CmdExport:    (*Shell).export,
			CmdImport:    (*Shell).importLogs,
			CmdExit:      (*Shell).exit,
		},
	}
}

// Run reads choices until exit or end of input
func (s *Shell) Run() error {
	for {
		if s.opts.ShowMenu {
			s.printMenu()
		}

		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.exit()
				return nil
			}
			return err
		}

		cmd, ok := ParseCommand(choice)
		if !ok {
			s.println("Invalid option.")
			continue
		}

		s.logger.Debug("msg", "Dispatching command",
			"component", "shell",
			"command", cmd.String())

		if err := s.handlers[cmd](s); err != nil {
			if errors.Is(err, errExit) {
				return nil
			}
			if errors.Is(err, io.EOF) {
				s.exit()
				return nil
			}
			return err
		}
	}
}

func (s *Shell) printMenu() {
	s.println("\nMenu:")
	for _, cmd := range menuOrder {
		s.printf("%s: %s\n", cmd.Key(), cmd)
	}
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

// prompt prints text when prompts are on and returns the next input line
// without its terminator. A final line without newline is still returned.
func (s *Shell) prompt(text string) (string, error) {
	if s.opts.Prompts {
		s.printf("%s", text)
	}

	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) promptIndex(text string) (int, bool, error) {
	raw, err := s.prompt(text)
	if err != nil {
		return 0, false, err
	}
	index, convErr := strconv.Atoi(strings.TrimSpace(raw))
	if convErr != nil {
		return 0, false, nil
	}
	return index, true, nil
}

func (s *Shell) promptFile(text string) (string, error) {
	if s.opts.DefaultFile != "" {
		text = fmt.Sprintf("%s[%s] ", text, s.opts.DefaultFile)
	}
	name, err := s.prompt(text)
	if err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.opts.DefaultFile
	}
	return name, nil
}

func (s *Shell) create() error {
	level, err := s.prompt("Enter log level (INFO, WARNING, ERROR): ")
	if err != nil {
		return err
	}
	message, err := s.prompt("Enter log message: ")
	if err != nil {
		return err
	}
	s.store.Append(level, message)
	return nil
}

func (s *Shell) read() error {
	s.println("\nLog Entries:")
	for _, line := range s.store.List() {
		s.println(line)
	}
	return nil
}

func (s *Shell) update() error {
	index, ok, err := s.promptIndex("Enter log index to update: ")
	if err != nil {
		return err
	}
	level, err := s.prompt("Enter new log level: ")
	if err != nil {
		return err
	}
	message, err := s.prompt("Enter new log message: ")
	if err != nil {
		return err
	}

	if ok && s.store.Update(index, level, message) {
		s.println("Log updated successfully.")
	} else {
		s.println("Invalid index.")
	}
	return nil
}

func (s *Shell) remove() error {
	index, ok, err := s.promptIndex("Enter log index to delete: ")
	if err != nil {
		return err
	}

	if ok && s.store.Delete(index) {
		s.println("Log deleted successfully.")
	} else {
		s.println("Invalid index.")
	}
	return nil
}

func (s *Shell) analyze() error {
	s.println("\nError Analysis:")
	WriteErrorTally(s.out, s.store.AnalyzeErrors())
	return nil
}

func (s *Shell) summarize() error {
	s.println("\nLog Summary:")
	WriteSummary(s.out, s.store.Summarize())
	return nil
}

func (s *Shell) export() error {
	path, err := s.promptFile("Enter filename to export logs: ")
	if err != nil {
		return err
	}
	if path == "" {
		s.println("Error exporting logs: no filename given")
		return nil
	}

	if err := s.store.Export(path); err != nil {
		s.logger.Error("msg", "Export failed",
			"component", "shell",
			"path", path,
			"error", err)
		s.printf("Error exporting logs: %v\n", err)
		return nil
	}
	s.println("Logs exported successfully.")
	return nil
}

func (s *Shell) importLogs() error {
	path, err := s.promptFile("Enter filename to import logs: ")
	if err != nil {
		return err
	}
	if path == "" {
		s.println("Error importing logs: no filename given")
		return nil
	}

	n, err := s.store.Import(path)
	if err != nil {
		WriteImportError(s.out, n, err)
		return nil
	}
	s.printf("Logs imported successfully (%d entries).\n", n)
	return nil
}

func (s *Shell) exit() error {
	s.println("\nGoodbye!")
	return errExit
}

// WriteImportError reports a failed import and how many entries it left behind
func WriteImportError(w io.Writer, kept int, err error) {
	fmt.Fprintf(w, "Error importing logs: %v\n", err)
	if kept > 0 {
		fmt.Fprintf(w, "%d entries imported before the error were kept.\n", kept)
	}
}

// WriteErrorTally prints one "message: count" line per message, sorted
func WriteErrorTally(w io.Writer, tally map[string]int) {
	if len(tally) == 0 {
		fmt.Fprintln(w, "No errors found.")
		return
	}

	messages := make([]string, 0, len(tally))
	for message := range tally {
		messages = append(messages, message)
	}
	sort.Strings(messages)

	for _, message := range messages {
		fmt.Fprintf(w, "%s: %d\n", message, tally[message])
	}
}

// WriteSummary prints the summary counts
func WriteSummary(w io.Writer, summary core.Summary) {
	fmt.Fprintf(w, "total_entries: %d\n", summary.TotalEntries)
	fmt.Fprintf(w, "error_count: %d\n", summary.ErrorCount)
	fmt.Fprintf(w, "warning_count: %d\n", summary.WarningCount)
}
