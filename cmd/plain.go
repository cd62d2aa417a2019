package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/shiseikan/internal/content"
	"github.com/abhisek/shiseikan/internal/session"
	"github.com/spf13/cobra"
)

var plainCmd = &cobra.Command{
	Use:   "plain",
	Short: "Take the quiz in line mode, without the full-screen UI",
	Long: `Take the quiz reading answers from stdin, one per line.

Useful for terminals without full-screen support and for scripting, e.g.

  printf '\n5\n5\n5\n5\n' | shiseikan plain --provider mock --questions 4`,
	RunE: runPlain,
}

func runPlain(cmd *cobra.Command, args []string) error {
	d, err := buildDeps(cmd.Context(), cmd, true)
	if err != nil {
		return err
	}
	defer d.Close()

	cfg := d.cfg.Session()
	cfg.AdvanceDelay = 0
	c := session.New(cfg, d.logger)

	return playPlain(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), c, d.provider)
}

// errInputClosed is returned when stdin ends before the quiz does.
var errInputClosed = errors.New("input closed before the quiz finished")

// playPlain runs one quiz over a line-oriented reader and writer.
func playPlain(ctx context.Context, in io.Reader, out io.Writer, c *session.Controller, p content.Provider) error {
	lines := bufio.NewScanner(in)
	readLine := func() (string, bool) {
		if !lines.Scan() {
			return "", false
		}
		return strings.TrimSpace(lines.Text()), true
	}

	fmt.Fprintln(out, "Preparing your questions...")
	if err := session.Drive(ctx, c, p, c.Init()); err != nil {
		return err
	}
	if st, ok := c.State().(session.Start); ok && st.Err != "" {
		return errors.New(st.Err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Explore your view of life and death.")
	fmt.Fprintln(out, "Answer each question from 1 to 10 on instinct.")
	fmt.Fprintln(out)
	fmt.Fprint(out, "Press Enter to begin. ")
	if _, ok := readLine(); !ok {
		return errInputClosed
	}
	if err := session.Drive(ctx, c, p, c.Begin()); err != nil {
		return err
	}

	for c.Phase() == session.PhaseQuiz {
		q, _ := c.Current()
		answered, total := c.Progress()

		fmt.Fprintln(out)
		fmt.Fprintf(out, "Question %d / %d\n", answered+1, total)
		fmt.Fprintln(out, q.Text)
		fmt.Fprintf(out, "  1 = %s ... 10 = %s\n", q.Pair.Low().Label(), q.Pair.High().Label())
		fmt.Fprint(out, "> ")

		line, ok := readLine()
		if !ok {
			return errInputClosed
		}
		score, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(out, "Please enter a number from %d to %d.\n", session.MinScore, session.MaxScore)
			continue
		}
		effects, err := c.Answer(score)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if err := session.Drive(ctx, c, p, effects); err != nil {
			return err
		}
	}

	switch st := c.State().(type) {
	case session.Result:
		printResult(out, st.Result)
		return nil
	case session.Failed:
		return errors.New(st.Message)
	}
	return fmt.Errorf("quiz ended in %s", c.Phase())
}

func printResult(out io.Writer, res content.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Your worldview type is")
	fmt.Fprintf(out, "  %s  %s\n", res.Type, res.Title)
	fmt.Fprintf(out, "  (%s)\n", strings.Join(res.Type.Labels(), " / "))
	fmt.Fprintln(out)
	for _, para := range content.Paragraphs(res.Description) {
		fmt.Fprintln(out, para)
		fmt.Fprintln(out)
	}
}
