package patterns

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
)

// ErrInvalidPlaintext is returned for unreadable .cells input.
var ErrInvalidPlaintext = errors.New("patterns: invalid plaintext pattern")

// ParsePlaintext reads the plaintext (.cells) format: lines starting with
// '!' are comments, 'O' or '*' is alive and '.' is dead. The format lets
// rows drop trailing dead cells, so short rows are padded to the widest.
func ParsePlaintext(r io.Reader) ([][]bool, error) {
	var rows [][]bool
	width := 0
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if len(text) > 0 && text[0] == '!' {
			continue
		}
		row := make([]bool, 0, len(text))
		for col, ch := range text {
			switch ch {
			case 'O', '*':
				row = append(row, true)
			case '.':
				row = append(row, false)
			case '\r':
			default:
				return nil, fmt.Errorf("%w: line %d col %d: unexpected %q", ErrInvalidPlaintext, line, col+1, ch)
			}
		}
		rows = append(rows, row)
		width = max(width, len(row))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || width == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrInvalidPlaintext)
	}
	for i, row := range rows {
		if len(row) < width {
			rows[i] = append(row, make([]bool, width-len(row))...)
		}
	}
	return rows, nil
}

// LoadFile parses the plaintext pattern stored at path.
func LoadFile(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "open pattern file %s", path)
	}
	defer f.Close()

	p, err := ParsePlaintext(f)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "parse pattern file %s", path)
	}
	return p, nil
}
