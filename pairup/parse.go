package pairup

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse splits raw two-column text into the left and right location lists.
// Blank lines are skipped; any other malformed line fails the whole parse.
func Parse(raw string) ([]uint32, []uint32, error) {
	return ParseReader(strings.NewReader(raw))
}

func ParseReader(r io.Reader) ([]uint32, []uint32, error) {
	var left, right []uint32

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()

		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, nil, &LineError{
				Line: line,
				Text: text,
				Err:  fmt.Errorf("%w: got %d", ErrColumnCount, len(fields)),
			}
		}

		lv, err := parseLocationID(fields[0])
		if err != nil {
			return nil, nil, &LineError{Line: line, Text: text, Err: err}
		}
		rv, err := parseLocationID(fields[1])
		if err != nil {
			return nil, nil, &LineError{Line: line, Text: text, Err: err}
		}

		left = append(left, lv)
		right = append(right, rv)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}

	if err := ValidateLists(left, right); err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// ValidateLists checks the only structural invariant the scorers rely on:
// both lists are non-empty and of equal length.
func ValidateLists(left, right []uint32) error {
	if len(left) != len(right) {
		return fmt.Errorf("%w: left has %d, right has %d", ErrLengthMismatch, len(left), len(right))
	}
	if len(left) == 0 {
		return ErrEmptyInput
	}
	return nil
}

func parseLocationID(tok string) (uint32, error) {
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrMalformedToken, tok, err)
	}
	return uint32(v), nil
}
