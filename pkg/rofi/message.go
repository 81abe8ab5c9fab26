package rofi

import (
	"io"
	"strings"
)

// Message is everything a script prints for one rofi cycle
type Message struct {
	Opt  ModeOption
	Rows []RowOption
}

// String renders the option block, when not empty, followed by the rows in
// order.
func (m Message) String() string {
	var b strings.Builder

	if !m.Opt.IsEmpty() {
		b.WriteString(m.Opt.String())
	}
	for _, row := range m.Rows {
		b.WriteString(row.String())
	}

	return b.String()
}

// WriteTo writes the rendered message to w with no extra framing
func (m Message) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, m.String())
	return int64(n), err
}
