package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/roman"
	"github.com/reoring/roman/i18n"
	"github.com/reoring/roman/internal/logger"
)

// run executes a fresh command tree with a clean ROMAN_* environment.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{"ROMAN_LANG", "ROMAN_LOG_LEVEL", "ROMAN_LOWERCASE", "ROMAN_MAX_BYTES"} {
		if _, ok := os.LookupEnv(k); ok {
			t.Setenv(k, "")
			require.NoError(t, os.Unsetenv(k))
		}
	}
	cmd := NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestEncodeCmd(t *testing.T) {
	out, _, err := run(t, "", "encode", "1994", "4", " 3999 ")

	require.NoError(t, err)
	assert.Equal(t, "MCMXCIV\nIV\nMMMCMXCIX\n", out)
}

func TestEncodeCmd_Lower(t *testing.T) {
	out, _, err := run(t, "", "--lower", "encode", "14")

	require.NoError(t, err)
	assert.Equal(t, "xiv\n", out)
}

func TestEncodeCmd_Errors(t *testing.T) {
	tests := []struct {
		arg  string
		want error
	}{
		{"4000", roman.ErrRange},
		{"0", roman.ErrRange},
		{"4.5", roman.ErrType},
		{"4.0", roman.ErrType},
		{"abc", roman.ErrType},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			_, _, err := run(t, "", "encode", tt.arg)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.arg)
		})
	}
}

func TestDecodeCmd(t *testing.T) {
	out, _, err := run(t, "", "decode", "xiv", "MMXXV")

	require.NoError(t, err)
	assert.Equal(t, "14\n2025\n", out)
}

func TestDecodeCmd_Prefix(t *testing.T) {
	out, _, err := run(t, "", "decode", "--prefix", "XIVabc")

	require.NoError(t, err)
	assert.Equal(t, "14\tabc\n", out)
}

func TestDecodeCmd_Invalid(t *testing.T) {
	_, _, err := run(t, "", "decode", "IIII")

	require.Error(t, err)
	assert.ErrorIs(t, err, roman.ErrFormat)
	assert.Contains(t, err.Error(), `invalid Roman numeral "IIII"`)
}

func TestDecodeCmd_Japanese(t *testing.T) {
	t.Cleanup(func() { i18n.SetLanguage("en") })

	_, _, err := run(t, "", "--lang", "ja", "decode", "IIII")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "不正なローマ数字です")
}

func TestValidateCmd(t *testing.T) {
	out, _, err := run(t, "", "validate", "XIV", "iiii", "MCMXCIV")

	require.Error(t, err)
	assert.ErrorIs(t, err, roman.ErrFormat)
	assert.Contains(t, err.Error(), "1 of 3")
	assert.Equal(t, "XIV\tvalid\niiii\tinvalid\nMCMXCIV\tvalid\n", out)
}

func TestValidateCmd_AllValid(t *testing.T) {
	out, _, err := run(t, "", "validate", "I", "mmmcmxcix")

	require.NoError(t, err)
	assert.Equal(t, "I\tvalid\nmmmcmxcix\tvalid\n", out)
}

func TestTableCmd(t *testing.T) {
	out, _, err := run(t, "", "table")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "M\t1000", lines[0])
	assert.Equal(t, "CM\t900", lines[1])
	assert.Equal(t, "I\t1", lines[12])
}

func TestSchemaCmd(t *testing.T) {
	out, _, err := run(t, "", "schema", "integer")

	require.NoError(t, err)
	assert.Contains(t, out, `"$schema": "https://json-schema.org/draft/2020-12/schema"`)
	assert.Contains(t, out, `"type": "integer"`)
	assert.Contains(t, out, `"minimum": 1`)
	assert.Contains(t, out, `"maximum": 3999`)

	out, _, err = run(t, "", "schema", "numeral")

	require.NoError(t, err)
	assert.Contains(t, out, `"format": "roman"`)
	assert.Contains(t, out, `"maxLength": 15`)

	_, _, err = run(t, "", "schema", "decimal")
	assert.Error(t, err)
}

func TestConvertCmd_JSONStdin(t *testing.T) {
	out, _, err := run(t, `{"event":"coronation","year":"MMXXV"}`, "convert", "--to", "int", "--path", "/year")

	require.NoError(t, err)
	assert.Equal(t, `{"event":"coronation","year":2025}`+"\n", out)
}

func TestConvertCmd_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Louis\nregnal: 14\n"), 0o600))

	out, _, err := run(t, "", "--lower", "convert", "--to", "roman", "--all", path)

	require.NoError(t, err)
	assert.Equal(t, "name: Louis\nregnal: xiv\n", out)
}

func TestConvertCmd_Issues(t *testing.T) {
	_, stderr, err := run(t, `{"year":"IIII"}`, "convert", "--to", "int", "--path", "/year")

	require.Error(t, err)
	assert.ErrorIs(t, err, roman.ErrFormat)
	assert.Contains(t, err.Error(), "1 issue(s)")
	assert.Contains(t, stderr, `/year: invalid Roman numeral "IIII"`)
}

func TestConvertCmd_MaxBytesFromEnv(t *testing.T) {
	cmd := NewRootCmd()
	t.Setenv("ROMAN_MAX_BYTES", "4")
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(`{"year":"I"}`))
	cmd.SetArgs([]string{"convert", "--to", "int", "--all"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Equal(t, roman.CodeParseError, roman.KindOf(err))
	assert.Contains(t, errOut.String(), "input exceeds 4 bytes")
	assert.Empty(t, out.String())
}

func TestConvertCmd_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing to", []string{"convert", "--all"}, `"to"`},
		{"bad to", []string{"convert", "--to", "hex", "--all"}, "unknown --to"},
		{"no selection", []string{"convert", "--to", "int"}, "nothing to convert"},
		{"bad format", []string{"convert", "--to", "int", "--all", "--format", "toml"}, "unknown --format"},
		{"missing file", []string{"convert", "--to", "int", "--all", "does-not-exist.json"}, "open input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, "{}", tt.args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestVersionCmd(t *testing.T) {
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, _, err := run(t, "", "version")

	require.NoError(t, err)
	assert.Equal(t, "roman version test-version-1.0.0\n", out)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, stderr, err := run(t, "", "--verbose", "encode", "7")

	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"command.start"`)
}

func TestProcessStateRestoredAfterRun(t *testing.T) {
	_, stderr, err := run(t, "", "--verbose", "--lang", "ja", "decode", "IIII")
	require.Error(t, err)
	require.NotEmpty(t, stderr)

	assert.False(t, logger.L().Enabled(context.Background(), slog.LevelError))
	assert.Equal(t, `invalid Roman numeral "IIII"`, i18n.T(roman.CodeInvalidFormat, "IIII"))

	_, _, err = run(t, "", "--verbose", "encode", "7")
	require.NoError(t, err)
	assert.False(t, logger.L().Enabled(context.Background(), slog.LevelError))
}

func TestBadConfig(t *testing.T) {
	cmd := NewRootCmd()
	t.Setenv("ROMAN_LOG_LEVEL", "loud")
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"encode", "1"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
