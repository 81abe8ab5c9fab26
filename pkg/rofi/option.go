package rofi

import (
	"strconv"
	"strings"
)

// optionLine renders one protocol line. Rows put their text before the NUL,
// mode options leave it empty so the line starts with NUL.
func optionLine(text, key, value string) string {
	return text + "\x00" + key + "\x1f" + value + "\n"
}

// ModeOption holds the global directives sent before the rows. Every field is
// optional; the zero value is empty and adds nothing to a Message.
type ModeOption struct {
	prompt     *string
	message    *string
	markupRows *bool
	noCustom   *bool
	urgent     *string
	active     *string
	delim      *string
}

// WithPrompt updates the prompt text
func (m ModeOption) WithPrompt(prompt string) ModeOption {
	m.prompt = &prompt
	return m
}

// WithMessage updates the message text
func (m ModeOption) WithMessage(message string) ModeOption {
	m.message = &message
	return m
}

// WithMarkupRows renders pango markup in rows when true
func (m ModeOption) WithMarkupRows(markup bool) ModeOption {
	m.markupRows = &markup
	return m
}

// WithNoCustom makes rofi accept listed entries only
func (m ModeOption) WithNoCustom(noCustom bool) ModeOption {
	m.noCustom = &noCustom
	return m
}

// WithUrgent marks rows as urgent, e.g. "1,3-5"
func (m ModeOption) WithUrgent(urgent string) ModeOption {
	m.urgent = &urgent
	return m
}

// WithActive marks rows as active, e.g. "0"
func (m ModeOption) WithActive(active string) ModeOption {
	m.active = &active
	return m
}

// WithDelim sets the row delimiter for the following rows
func (m ModeOption) WithDelim(delim string) ModeOption {
	m.delim = &delim
	return m
}

// IsEmpty reports whether no option is set
func (m ModeOption) IsEmpty() bool {
	return m.prompt == nil &&
		m.message == nil &&
		m.markupRows == nil &&
		m.noCustom == nil &&
		m.urgent == nil &&
		m.active == nil &&
		m.delim == nil
}

// String renders the options in fixed order: prompt, message, markup-rows,
// no-custom, urgent, active, delim. The block always ends with an extra
// newline, even when empty; Message skips empty blocks entirely.
func (m ModeOption) String() string {
	var b strings.Builder

	if m.prompt != nil {
		b.WriteString(optionLine("", "prompt", *m.prompt))
	}
	if m.message != nil {
		b.WriteString(optionLine("", "message", *m.message))
	}
	if m.markupRows != nil {
		b.WriteString(optionLine("", "markup-rows", strconv.FormatBool(*m.markupRows)))
	}
	if m.noCustom != nil {
		b.WriteString(optionLine("", "no-custom", strconv.FormatBool(*m.noCustom)))
	}
	if m.urgent != nil {
		b.WriteString(optionLine("", "urgent", *m.urgent))
	}
	if m.active != nil {
		b.WriteString(optionLine("", "active", *m.active))
	}
	if m.delim != nil {
		b.WriteString(optionLine("", "delim", *m.delim))
	}

	b.WriteByte('\n')
	return b.String()
}

// rowAttrKind is ordered by priority, highest last
type rowAttrKind uint8

const (
	attrNone rowAttrKind = iota
	attrNonSelectable
	attrMeta
	attrIcon
)

func (k rowAttrKind) key() string {
	switch k {
	case attrNonSelectable:
		return "nonselectable"
	case attrMeta:
		return "meta"
	case attrIcon:
		return "icon"
	default:
		return ""
	}
}

type rowAttr struct {
	kind  rowAttrKind
	value string
}

// RowOption is a single entry shown by rofi.
//
// Script mode allows only one attribute per row. A row therefore holds a
// single attribute slot: icon outranks meta, which outranks nonselectable,
// and a lower ranked setter never replaces a higher ranked attribute. Setting
// the same attribute twice keeps the last value.
//
// Text and values are written verbatim. They must not contain NUL, 0x1f or
// newline bytes.
type RowOption struct {
	text string
	attr rowAttr
}

// NewRow creates a row with the given display text
func NewRow(text string) RowOption {
	return RowOption{text: text}
}

// Text returns the display text
func (r RowOption) Text() string {
	return r.text
}

// WithIcon sets the icon name or path
func (r RowOption) WithIcon(icon string) RowOption {
	return r.with(attrIcon, icon)
}

// WithMeta sets invisible search terms
func (r RowOption) WithMeta(meta string) RowOption {
	return r.with(attrMeta, meta)
}

// WithNonSelectable prevents the row from being activated when true
func (r RowOption) WithNonSelectable(nonSelectable bool) RowOption {
	return r.with(attrNonSelectable, strconv.FormatBool(nonSelectable))
}

func (r RowOption) with(kind rowAttrKind, value string) RowOption {
	if kind >= r.attr.kind {
		r.attr = rowAttr{kind: kind, value: value}
	}
	return r
}

// String renders the row as a single newline terminated line
func (r RowOption) String() string {
	if r.attr.kind == attrNone {
		return r.text + "\n"
	}
	return optionLine(r.text, r.attr.kind.key(), r.attr.value)
}
