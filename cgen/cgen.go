/*
Package cgen writes C source fragments for generated lookup tables.

Output is streamed line by line as it is produced; nothing is built up in
memory. The first write error is kept and every later call becomes a no-op,
so callers emit a whole fragment and check Flush once.
*/
package cgen

import (
	"bufio"
	"fmt"
	"io"
)

// Writer emits C declarations.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter returns a Writer buffering output to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w: bufio.NewWriter(w),
	}
}

func (w *Writer) printf(format string, a ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, a...)
}

// Include emits a quoted #include line.
func (w *Writer) Include(header string) {
	w.printf("#include \"%s\"\n", header)
}

// StaticAssert emits a compile-time assertion of expr.
func (w *Writer) StaticAssert(expr string) {
	w.printf("static_assert(%s);\n", expr)
}

// BeginArray opens a const array declaration of unspecified length.
func (w *Writer) BeginArray(typ, name string) {
	w.printf("const %s %s[] = {\n", typ, name)
}

// Element emits one array element.
func (w *Writer) Element(s string) {
	w.printf("%s,\n", s)
}

// Hex emits one array element as an uppercase hexadecimal literal.
func (w *Writer) Hex(v uint64) {
	w.printf("0x%X,\n", v)
}

// EndArray closes the current array declaration.
func (w *Writer) EndArray() {
	w.printf("};\n")
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// Flush writes any buffered output and returns the first error encountered.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}
