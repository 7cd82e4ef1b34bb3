package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizterm/internal/catalog"
	"github.com/abhisek/quizterm/internal/session"
	"github.com/abhisek/quizterm/internal/view"
)

var previewCmd = &cobra.Command{
	Use:   "preview <subject>",
	Short: "Take a quiz on plain stdin/stdout (no database)",
	Long: `Ask every question of a subject on the command line and print the score.

Answer with a letter A-D; an empty line or "q" stops early. Nothing is saved,
which makes this handy for checking a catalog or scripting a run.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog(cmd, stderrLogger())
		if err != nil {
			return err
		}
		return runPreview(c, args[0], cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

var (
	correctColor = color.New(color.FgGreen, color.Bold)
	wrongColor   = color.New(color.FgRed, color.Bold)
)

// runPreview plays one quiz reading answers from in. It returns the session
// error for an unknown subject; running out of input ends the quiz early.
func runPreview(c *catalog.Catalog, subject string, in io.Reader, out io.Writer) error {
	s := session.New(c)
	if _, err := s.SelectSubject(subject); err != nil {
		if errors.Is(err, session.ErrSubjectNotFound) {
			return fmt.Errorf("%w (available: %s)", err, strings.Join(c.Names(), ", "))
		}
		return err
	}

	scanner := bufio.NewScanner(in)
	for s.State().Phase == session.PhaseInProgress {
		f := view.Project(c, s.State())
		fmt.Fprintf(out, "── %s: %s ──\n", f.Badge.Name, f.Counter())
		fmt.Fprintln(out, f.Prompt)
		for _, o := range f.Options {
			fmt.Fprintf(out, "  %s) %s\n", o.Letter, o.Text)
		}

		choice, ok := readChoice(scanner, out)
		if !ok {
			fmt.Fprintln(out, "\n(stopped)")
			break
		}

		q, _ := s.CurrentQuestion()
		if s.IsCorrect(choice) {
			correctColor.Fprintln(out, "✓ Correct!")
		} else {
			wrongColor.Fprint(out, "✗ Wrong.")
			fmt.Fprintf(out, " Answer: %s\n", q.Answer)
		}
		if _, err := s.SubmitAnswer(choice); err != nil {
			return fmt.Errorf("submit answer: %w", err)
		}
		fmt.Fprintln(out)
	}

	st := s.State()
	fmt.Fprintf(out, "── Score: %d/%d ──\n", st.Score, st.Total())
	return nil
}

// readChoice prompts until a valid letter is entered. ok is false when the
// input ends or the player quits.
func readChoice(scanner *bufio.Scanner, out io.Writer) (session.Choice, bool) {
	for {
		fmt.Fprint(out, "Your answer: ")
		if !scanner.Scan() {
			return session.NoChoice, false
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.EqualFold(text, "q") {
			return session.NoChoice, false
		}
		choice, err := session.ChoiceFromLetter(text)
		if err == nil {
			return choice, true
		}
		fmt.Fprintln(out, "Please answer A, B, C or D.")
	}
}
