// Package cfmt formats text the way the C printf family does.
//
// Output is byte-for-byte what the classic formatter produces for the
// conversions d, i, u, o, x, X, c, s, p, f, F and %, with the flags
// '-', '+', ' ', '0' and '#', a field width, a precision, and the length
// modifiers hh, h, l, ll (or q), j, z and t. The central entry points are
// [Fprintf], [Sprintf], [Appendf] and [Marshal]:
//
//	n, err := cfmt.Fprintf(os.Stdout, "%-8s|%08.3f|%#x\n", "name", 3.14159, 255)
//
// # Arguments
//
// Integer conversions take any Go integer type. The value is narrowed to
// the C type the length modifier selects, so "%d" sees a 32-bit int and
// "%u" of -1 prints 4294967295; use "%ld" or "%lu" for 64 bits. "%c"
// writes the low byte of its argument and "%lc" writes a rune as UTF-8.
// "%s" takes strings, byte slices, errors and [fmt.Stringer] values; a nil
// argument prints "(null)". "%p" takes pointers, unsafe.Pointer and
// uintptr; nil prints "(nil)".
//
// Implement [Converter] to decide per verb how a value is formatted.
//
// # Conversions
//
// A directive is resolved in two steps. [Resolve] turns the scanned
// [Tokens] into a [Spec]; it never fails and ignores unknown flags and
// modifiers. The Append functions ([AppendInt], [AppendUint],
// [AppendChar], [AppendString], [AppendPointer], [AppendFloat]) and
// [Spec.Append] then format one argument. Callers that walk templates
// themselves can use these directly.
//
// A few rules are easy to get wrong and are followed exactly:
//
//   - '-' wins over '0': left-justified fields are padded with spaces.
//   - The sign comes before zero fill: "%06d" of -5 is "-00005".
//   - Any precision on an integer conversion disables zero fill.
//   - Precision 0 on the value 0 prints no digit: "%.0d" is empty and
//     "%5.0d" is five spaces.
//
// Directives with an unknown conversion character are copied to the
// output unchanged.
//
// # Display width
//
// [Printer] with DisplayWidth set measures "%s" and "%c" widths in
// terminal columns, so East Asian wide text lines up:
//
//	p := cfmt.Printer{DisplayWidth: true}
//	p.Fprintf(os.Stdout, "%-6s|\n", "你好")
//
// # Errors
//
// The formatting itself never fails. The package exports sentinel errors
// for argument problems:
//
//   - [ErrMissingArgument] — the template needs more arguments
//   - [ErrArgumentType] — an argument does not fit its conversion
//   - [ErrConvert] — a [Converter] returned an error
//
// [Fprintf] and [Marshal] return these errors and write nothing.
// [Sprintf] and [Appendf] ignore them and format the offending argument as
// zero.
package cfmt
