package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"valereview/internal/config"
	"valereview/internal/review"
	"valereview/internal/types"
	"valereview/internal/vale"

	"github.com/fatih/color"
)

const PROJECT_NAME = "valereview"

const MINI_MARK = `📝`

// Exit codes. Anything but exitOK means nothing was written to stdout.
const (
	exitOK        = 0
	exitMalformed = 1
	exitWrite     = 2
)

// valereview reads `vale --output=JSON` on stdin and prints a review payload
// on stdout. It takes no flags; CI_COMMIT_SHA is the only input besides stdin.
func main() {
	os.Exit(run(os.Stdin, os.Stdout, color.Error, config.Load()))
}

func run(stdin io.Reader, stdout, stderr io.Writer, cfg *config.Config) int {
	report, err := vale.ParseReport(stdin)
	if err != nil {
		fail(stderr, "Failed to read Vale report", err)
		return exitCode(err)
	}

	payload := review.Convert(report, cfg.CommitID)

	if err := review.Write(stdout, payload); err != nil {
		fail(stderr, "Failed to write review", err)
		return exitCode(err)
	}

	if cfg.Verbose {
		printSummary(stderr, review.Summarize(payload))
	}
	return exitOK
}

func exitCode(err error) int {
	if errors.Is(err, vale.ErrMalformedInput) {
		return exitMalformed
	}
	return exitWrite
}

func fail(w io.Writer, what string, err error) {
	fmt.Fprintf(w, "❌ %s %s: %v\n", PROJECT_NAME, color.RedString(what), err)
}

func printSummary(w io.Writer, s review.Summary) {
	if s.Event == types.EventApproved {
		fmt.Fprintf(w, "%s %s\n", MINI_MARK, color.GreenString("Vale found no issues, approving"))
		return
	}
	fmt.Fprintf(w, "%s %s %d comments across %d files\n",
		MINI_MARK, color.YellowString("Requesting changes:"), s.Comments, s.Files)
}
