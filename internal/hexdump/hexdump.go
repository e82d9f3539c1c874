// Package hexdump renders binary protocol data as readable hex strings, for
// packet traces and log output.
package hexdump

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

const hexDigits = "0123456789ABCDEF"

// nonPrinting stands in for unprintable bytes in Line output (white bullet).
const nonPrinting = '◦'

// ErrLineTooShort is returned by StrChop when the line width cannot hold a
// single escape sequence.
var ErrLineTooShort = errors.New("cannot wrap to less than 4 columns")

// Num2Str formats n as [-]0xX..., where the hex digits are zero padded to at
// least width characters.
//
//	Num2Str(-0xABCDEF, 8) == "-0x00ABCDEF"
//	Num2Str(12345, 0)     == "0x3039"
func Num2Str(n int64, width int) string {
	prefix := "0x"
	u := uint64(n)
	if n < 0 {
		prefix = "-0x"
		u = uint64(-n)
	}
	if width < 0 {
		width = 0
	}
	return fmt.Sprintf("%s%0*X", prefix, width, u)
}

// Byte returns the two-digit uppercase hex form of b, printable or not.
func Byte(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0x0f]})
}

// Str escapes every byte below 0x20 or above 0x7F as \xXX and copies the
// rest unchanged. Unlike strconv.Quote it never produces short escapes such
// as \t.
func Str(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		if b < 0x20 || b > 0x7F {
			sb.WriteString(`\x`)
			sb.WriteByte(hexDigits[b>>4])
			sb.WriteByte(hexDigits[b&0x0f])
			continue
		}
		sb.WriteByte(b)
	}
	return sb.String()
}

// StrChop splits the output of Str into chunks of at most lineMax bytes.
// Chunks are never broken inside a \xXX escape, so a chunk may be up to
// three bytes shorter than lineMax.
func StrChop(data []byte, lineMax int) ([]string, error) {
	if lineMax < 4 {
		return nil, errors.Wrapf(ErrLineTooShort, "line width %d", lineMax)
	}

	hstr := Str(data)
	var lines []string
	for len(hstr) > lineMax {
		loc := strings.Index(hstr[lineMax-3:lineMax+1], `\x`)
		if loc < 0 {
			loc = lineMax
		} else {
			loc = lineMax + (loc - 3)
		}
		lines = append(lines, hstr[:loc])
		hstr = hstr[loc:]
	}
	if hstr != "" {
		lines = append(lines, hstr)
	}
	return lines, nil
}

// Line renders up to 16 bytes of data, starting at offset, in the classic
// hexdump layout:
//
//	000008:  38 39 41 42 43 44 45 46  48 65 6c 6c 6f 2c 20 57  |89ABCDEFHello, W|
//
// A negative offset, or one at or past the end of data, yields "". Offsets
// never count back from the end. The line carries no trailing newline.
func Line(data []byte, offset int) string {
	if offset < 0 || offset >= len(data) {
		return ""
	}
	end := min(offset+16, len(data))
	chunk := data[offset:end]

	var hx, ch strings.Builder
	for _, b := range chunk {
		fmt.Fprintf(&hx, "%02x ", b)
		if b >= 0x20 && b < 0x7F {
			ch.WriteByte(b)
		} else {
			ch.WriteRune(nonPrinting)
		}
	}

	hex := hx.String() + strings.Repeat(" ", 48-hx.Len())
	chars := ch.String()
	if n := utf8.RuneCountInString(chars); n < 16 {
		chars += strings.Repeat(" ", 16-n)
	}
	return fmt.Sprintf("%06X:  %s %s |%s|", offset, hex[:24], hex[24:48], chars)
}

// Dump renders data as a multi-line hex dump, one newline-terminated line
// per 16 bytes. Empty input yields "".
func Dump(data []byte) string {
	var sb strings.Builder
	for offset := 0; offset < len(data); offset += 16 {
		sb.WriteString(Line(data, offset))
		sb.WriteByte('\n')
	}
	return sb.String()
}
