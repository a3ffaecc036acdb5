package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/spf13/cobra"

	"quotemaster/dbctl/internal/config"
	"quotemaster/dbctl/internal/database"
)

var spinnerFrames = []string{"-", "\\", "|", "/"}

// openDatabase resolves the connection configuration and builds the pool.
// The pool dials lazily, so this fails only on configuration problems;
// callers own the Close.
func openDatabase(cmd *cobra.Command) (*database.DB, config.Config, error) {
	cfg, err := config.Resolve(dsnFlag)
	if err != nil {
		return nil, config.Config{}, err
	}
	if echoFlag {
		cfg.Echo = true
	}
	db, err := database.Connect(cmd.Context(), cfg)
	if err != nil {
		return nil, config.Config{}, err
	}
	return db, cfg, nil
}

// confirm prints question and reads one line from stdin. Only the word
// "yes", in any case, counts as agreement; anything else declines.
func confirm(question string) bool {
	fmt.Print(question)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	return strings.ToLower(strings.TrimSpace(answer)) == "yes"
}

// startInlineSpinner animates a single-line spinner with the given text
// until the returned stop function is called. The line is cleared on stop
// and the cursor restored.
func startInlineSpinner(w io.Writer, text string, interval time.Duration) func() {
	cursor.Hide()
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				width := len(text) + 2
				fmt.Fprintf(w, "\r%*s\r", width, "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", spinnerFrames[i%len(spinnerFrames)], text)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
		cursor.Show()
	}
}
