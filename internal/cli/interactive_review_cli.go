package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/flashcard"
	"github.com/oleksandr-serhiienko/SimpleTestApp/internal/review"
)

var errEnd = errors.New("end")

type Session interface {
	Session(ctx context.Context) error
}

// Run calls session until it ends or ctx is cancelled.
func Run(ctx context.Context, session Session) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := session.Session(ctx); err != nil {
			if errors.Is(err, errEnd) {
				return nil
			}
			return fmt.Errorf("error: %w", err)
		}
	}
}

// ReviewCLI asks for the translation of each due card.
type ReviewCLI struct {
	session      *review.Session
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	red          *color.Color
}

func NewReviewCLI(session *review.Session, stdin io.Reader, stdout io.Writer) *ReviewCLI {
	return &ReviewCLI{
		session:      session,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
	}
}

func (r *ReviewCLI) Session(ctx context.Context) error {
	card, ok := r.session.Current()
	if !ok {
		correct, incorrect := r.session.Stats()
		fmt.Fprintln(r.stdoutWriter, "No more cards to review!")
		fmt.Fprintf(r.stdoutWriter, "Correct: %d, wrong: %d\n", correct, incorrect)
		return errEnd
	}

	fmt.Fprintf(r.stdoutWriter, "[%d left] ", r.session.Remaining())
	_, _ = r.bold.Fprintf(r.stdoutWriter, "%s", card.Word)
	fmt.Fprintf(r.stdoutWriter, " (level %d)\n", card.Level)
	example := firstExample(card)
	if example != nil {
		fmt.Fprintf(r.stdoutWriter, "  %s\n", Emphasize(example.Original, r.bold))
	}
	fmt.Fprint(r.stdoutWriter, "Translation (q to quit): ")

	line, err := r.stdinReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error reading input: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(r.stdoutWriter)
		return errEnd
	}
	if strings.TrimSpace(line) == "q" {
		return errEnd
	}

	answer := gradeAnswer(card.Word, line, card.Translations)
	r.displayResult(answer, example)

	if err := r.session.Answer(ctx, answer.Correct); err != nil {
		return fmt.Errorf("session.Answer() > %w", err)
	}
	return nil
}

func (r *ReviewCLI) displayResult(answer AnswerResponse, example *flashcard.ContextExample) {
	translations := strings.Join(answer.Translations, ", ")
	if answer.Correct {
		fmt.Fprint(r.stdoutWriter, "✅ ")
		_, _ = r.green.Fprintf(r.stdoutWriter, "It's correct. %s means \"%s\"\n",
			r.bold.Sprint(answer.Word), r.italic.Sprint(translations))
	} else {
		fmt.Fprint(r.stdoutWriter, "❌ ")
		_, _ = r.red.Fprintf(r.stdoutWriter, "It's wrong. %s means \"%s\"\n",
			r.bold.Sprint(answer.Word), r.italic.Sprint(translations))
	}
	if example != nil && example.Translation != "" {
		fmt.Fprintf(r.stdoutWriter, "   %s\n", Emphasize(example.Translation, r.italic))
	}
	fmt.Fprintln(r.stdoutWriter)
}

// firstExample skips contexts flagged as bad.
func firstExample(card *flashcard.Card) *flashcard.ContextExample {
	for i := range card.Context {
		if !card.Context[i].IsBad {
			return &card.Context[i]
		}
	}
	return nil
}
