package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/config"
	"github.com/praxisprep/praxis/internal/quiz"
	"github.com/praxisprep/praxis/internal/store"
	"github.com/praxisprep/praxis/internal/syllabus"
	"github.com/praxisprep/praxis/internal/usage"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <topic-id>",
	Short: "Take a quiz on a syllabus topic",
	Long:  "Generate a quiz for the given topic and answer it question by question in the terminal.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		ref, err := syllabus.FindTopic(args[0])
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		user := auth.FromEnv()
		backend := newBackend(cfg)
		events := st.EventRepo()
		tracker := usage.NewTracker(
			st.KVRepo(),
			usage.MultiLogger{usage.NewRemoteLogger(backend), usage.NewStoreLogger(events)},
			cfg.Usage.IsPremium,
			cfg.Usage.FreeDailyLimit,
		)
		defer tracker.Flush()

		svc := quiz.NewService(backend, tracker, events)
		started, err := svc.Generate(cmd.Context(), user, ref)
		if err != nil {
			if errors.Is(err, usage.ErrQuotaExceeded) {
				return fmt.Errorf("daily usage limit reached; try again tomorrow")
			}
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Quiz: %s — %s\n", ref.Subject, ref.Topic.Name)
		if started.Fallback {
			fmt.Fprintln(out, "Backend unreachable; offline sample questions shown.")
		}
		return runQuizPrompt(cmd.Context(), cmd.InOrStdin(), out, svc, started)
	},
}

// runQuizPrompt walks the session question by question over stdin,
// revealing each answer before advancing, then prints the scored
// summary.
func runQuizPrompt(ctx context.Context, in io.Reader, out io.Writer, svc *quiz.Service, started *quiz.Started) error {
	sess := started.Session
	scanner := bufio.NewScanner(in)

	for !sess.Completed() {
		cur := sess.Current()
		fmt.Fprintf(out, "\nQ%d of %d. %s\n", sess.Index()+1, sess.Len(), cur.Prompt)
		for i, opt := range cur.Options {
			fmt.Fprintf(out, "  %c) %s\n", 'A'+i, opt)
		}

		choice, err := readChoice(scanner, out, len(cur.Options))
		if err != nil {
			return err
		}
		if err := sess.Select(choice); err != nil {
			return err
		}
		svc.RecordAnswer(ctx, started.SessionID, sess.Index(), choice == cur.CorrectIndex)

		if choice == cur.CorrectIndex {
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintf(out, "Not quite. Answer: %c) %s\n", 'A'+cur.CorrectIndex, cur.Options[cur.CorrectIndex])
		}
		if cur.Explanation != "" {
			fmt.Fprintln(out, cur.Explanation)
		}

		if err := sess.Advance(); err != nil {
			return err
		}
	}

	sum := sess.Summary()
	svc.RecordCompletion(ctx, started.SessionID, sum)
	fmt.Fprintf(out, "\nYou scored %d out of %d (%d%%). %s\n",
		sum.Score, sum.Total, sum.Percentage, gradeLine(sum.Grade))
	return nil
}

// readChoice reads answers until one names a valid option letter.
func readChoice(scanner *bufio.Scanner, out io.Writer, options int) (int, error) {
	for {
		fmt.Fprint(out, "Your answer: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("input closed before the quiz finished")
		}
		text := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if len(text) == 1 {
			idx := int(text[0] - 'A')
			if idx >= 0 && idx < options {
				return idx, nil
			}
		}
		fmt.Fprintf(out, "Pick a letter between A and %c.\n", 'A'+options-1)
	}
}

func gradeLine(g quiz.Grade) string {
	switch g {
	case quiz.GradeExcellent:
		return "Excellent work!"
	case quiz.GradeGood:
		return "Good job!"
	default:
		return "Keep practicing!"
	}
}
