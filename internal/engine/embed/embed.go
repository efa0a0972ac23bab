// Package embed generates C headers that carry a file's contents as a
// static array. The generated header is included with EMBED_NAME defined
// to the variable name:
//
//	#define EMBED_NAME my_embed
//	#include "my_embed.h"
package embed

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"go.trai.ch/zerr"
)

// Mode selects the shape of the generated array.
type Mode int

const (
	// StringArray embeds the file as a const char*[] with one element per
	// line.
	StringArray Mode = iota
	// ByteArray embeds the file as an unsigned char[] of its raw bytes.
	ByteArray
)

// Generator writes embed headers.
type Generator struct {
	fs afero.Fs
}

// Option configures a Generator.
type Option func(*Generator)

// WithFs sets a custom filesystem for the generator. This is primarily
// useful for testing with in-memory filesystems.
func WithFs(fsys afero.Fs) Option {
	return func(g *Generator) {
		g.fs = fsys
	}
}

// NewGenerator creates a Generator writing to the operating system
// filesystem.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate embeds the file at src into a C header written to out.
func (g *Generator) Generate(src, out string, mode Mode) error {
	in, err := g.fs.Open(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file for embedding"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	file, err := g.fs.Create(out)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create embed header"), "path", out)
	}

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "/* %s */\n", src)

	if mode == ByteArray {
		err = writeByteArray(w, bufio.NewReader(in))
	} else {
		err = writeStringArray(w, bufio.NewReader(in))
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write embed header"), "path", out)
	}
	return nil
}

// writeStringArray emits one array element per input line. Control
// characters are escaped, bytes outside the printable ASCII range become
// \xHH escapes. The newline itself is not part of any element.
func writeStringArray(w *bufio.Writer, r *bufio.Reader) error {
	if _, err := w.WriteString("static const char *EMBED_NAME[] = {\n\t\""); err != nil {
		return err
	}

	for {
		ch, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch ch {
		case '\t':
			_, err = w.WriteString(`\t`)
		case '\r':
			_, err = w.WriteString(`\r`)
		case '\v':
			_, err = w.WriteString(`\v`)
		case '\f':
			_, err = w.WriteString(`\f`)
		case '\b':
			_, err = w.WriteString(`\b`)
		case 0:
			_, err = w.WriteString(`\0`)
		case '"':
			_, err = w.WriteString(`\"`)
		case '\\':
			_, err = w.WriteString(`\\`)
		case '\n':
			// A trailing newline at EOF closes the last element without
			// opening an empty one.
			if _, perr := r.Peek(1); perr == nil {
				_, err = w.WriteString("\",\n\t\"")
			}
		default:
			if ch >= ' ' && ch <= '~' {
				err = w.WriteByte(ch)
			} else {
				_, err = fmt.Fprintf(w, `\x%02X`, ch)
			}
		}
		if err != nil {
			return err
		}
	}

	_, err := w.WriteString("\",\n};\n#undef EMBED_NAME\n")
	return err
}

// writeByteArray emits the raw bytes as hex literals, ten per line.
func writeByteArray(w *bufio.Writer, r *bufio.Reader) error {
	if _, err := w.WriteString("static unsigned char EMBED_NAME[] = {\n"); err != nil {
		return err
	}

	for i := 0; ; i++ {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if i%10 == 0 {
			if i > 0 {
				if err := w.WriteByte('\n'); err != nil {
					return err
				}
			}
			if err := w.WriteByte('\t'); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "0x%02X, ", b); err != nil {
			return err
		}
	}

	_, err := w.WriteString("\n};\n#undef EMBED_NAME\n")
	return err
}
