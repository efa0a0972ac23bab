package embed_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.chol.dev/cbuild/internal/engine/embed"
)

func generate(t *testing.T, content []byte, mode embed.Mode) string {
	t.Helper()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "note.txt", content, 0o644))

	gen := embed.NewGenerator(embed.WithFs(fsys))
	require.NoError(t, gen.Generate("note.txt", "note.h", mode))

	out, err := afero.ReadFile(fsys, "note.h")
	require.NoError(t, err)
	return string(out)
}

func TestGenerateStringArray(t *testing.T) {
	out := generate(t, []byte("hello\nworld\n"), embed.StringArray)

	want := "/* note.txt */\n" +
		"static const char *EMBED_NAME[] = {\n" +
		"\t\"hello\",\n" +
		"\t\"world\",\n" +
		"};\n" +
		"#undef EMBED_NAME\n"
	assert.Equal(t, want, out)
}

func TestGenerateStringArrayEscapes(t *testing.T) {
	out := generate(t, []byte("a\"b\\c\td\x01"), embed.StringArray)

	want := "/* note.txt */\n" +
		"static const char *EMBED_NAME[] = {\n" +
		"\t\"a\\\"b\\\\c\\td\\x01\",\n" +
		"};\n" +
		"#undef EMBED_NAME\n"
	assert.Equal(t, want, out)
}

func TestGenerateStringArrayNoTrailingNewline(t *testing.T) {
	out := generate(t, []byte("one\ntwo"), embed.StringArray)

	want := "/* note.txt */\n" +
		"static const char *EMBED_NAME[] = {\n" +
		"\t\"one\",\n" +
		"\t\"two\",\n" +
		"};\n" +
		"#undef EMBED_NAME\n"
	assert.Equal(t, want, out)
}

func TestGenerateByteArray(t *testing.T) {
	out := generate(t, []byte("hello"), embed.ByteArray)

	want := "/* note.txt */\n" +
		"static unsigned char EMBED_NAME[] = {\n" +
		"\t0x68, 0x65, 0x6C, 0x6C, 0x6F, \n" +
		"};\n" +
		"#undef EMBED_NAME\n"
	assert.Equal(t, want, out)
}

func TestGenerateByteArrayWrapsAtTen(t *testing.T) {
	out := generate(t, []byte("0123456789AB"), embed.ByteArray)

	want := "/* note.txt */\n" +
		"static unsigned char EMBED_NAME[] = {\n" +
		"\t0x30, 0x31, 0x32, 0x33, 0x34, 0x35, 0x36, 0x37, 0x38, 0x39, \n" +
		"\t0x41, 0x42, \n" +
		"};\n" +
		"#undef EMBED_NAME\n"
	assert.Equal(t, want, out)
}

func TestGenerateMissingSource(t *testing.T) {
	gen := embed.NewGenerator(embed.WithFs(afero.NewMemMapFs()))
	err := gen.Generate("absent.txt", "absent.h", embed.StringArray)
	assert.Error(t, err)
}
