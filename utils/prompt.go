package utils

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Prompt asks for the universe size and generation count on out, reading the
// answers from in. A blank answer keeps the value already in config.
func Prompt(in io.Reader, out io.Writer, config Config) (Config, error) {
	var (
		scanner = bufio.NewScanner(in)
		err     error
	)

	fmt.Fprintln(out, "Enter the size of the Universe")
	if config.Rows, err = askInt(scanner, out, "Rows (18 is recommended): ", config.Rows); err != nil {
		return config, errors.Wrap(err, "[Prompt] rows")
	}
	if config.Cols, err = askInt(scanner, out, "Columns (80 is recommended): ", config.Cols); err != nil {
		return config, errors.Wrap(err, "[Prompt] columns")
	}
	if config.Generations, err = askInt(scanner, out, "Enter the number of generations: ", config.Generations); err != nil {
		return config, errors.Wrap(err, "[Prompt] generations")
	}

	return config, nil
}

func askInt(scanner *bufio.Scanner, out io.Writer, question string, fallback int) (int, error) {
	fmt.Fprint(out, question)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, errors.Wrap(err, "failed to read answer")
		}
		// EOF
		return fallback, nil
	}

	answer := strings.TrimSpace(scanner.Text())
	if answer == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, errors.Wrapf(err, "not a number: %q", answer)
	}
	return n, nil
}
