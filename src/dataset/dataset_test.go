package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadSamples(t *testing.T) {
	p := writeFile(t, "messwerte_10m.txt", "1.0\n2.0\n3.0\n")
	s, err := LoadSamples(p)
	require.NoError(t, err)
	assert.Equal(t, Samples{1, 2, 3}, s)
}

func TestParseSamples_LengthMatchesNonEmptyLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"no trailing newline", "9.91\n10.02\n9.87", 3},
		{"crlf", "9.91\r\n10.02\r\n", 2},
		{"blank lines skipped", "1\n\n2\n  \n3\n\n", 3},
		{"surrounding space", " 4.5 \n", 1},
		{"empty", "", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := ParseSamples(strings.NewReader(c.in))
			require.NoError(t, err)
			assert.Len(t, s, c.want)
		})
	}
}

func TestParseSamples_MalformedAborts(t *testing.T) {
	_, err := ParseSamples(strings.NewReader("1.0\nabc\n3.0\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedLine), "got %v", err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, "abc", pe.Text)
}

func TestParseSamples_RejectsNonFinite(t *testing.T) {
	for _, tok := range []string{"NaN", "inf", "-Inf"} {
		_, err := ParseSamples(strings.NewReader(tok + "\n"))
		assert.ErrorIs(t, err, ErrMalformedLine, tok)
	}
}

func TestLoadSamples_MissingFile(t *testing.T) {
	_, err := LoadSamples(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestParsePositions(t *testing.T) {
	p, err := ParsePositions(strings.NewReader("1.0881285612492124, 3.1703530754570766\n3.0, 4.0\n"))
	require.NoError(t, err)
	require.Len(t, p, 2)
	assert.Equal(t, Point{X: 1.0881285612492124, Y: 3.1703530754570766}, p[0])
	assert.Equal(t, []float64{1.0881285612492124, 3}, p.Xs())
	assert.Equal(t, []float64{3.1703530754570766, 4}, p.Ys())
}

func TestParsePositions_FieldCount(t *testing.T) {
	cases := []string{
		"1.0,2.0",       // wrong delimiter
		"1.0, 2.0, 3.0", // three tokens
		"1.0",           // one token
	}
	for _, in := range cases {
		_, err := ParsePositions(strings.NewReader(in + "\n"))
		assert.ErrorIs(t, err, ErrFieldCount, in)
	}
}

func TestParsePositions_MalformedToken(t *testing.T) {
	_, err := ParsePositions(strings.NewReader("1.0, 2.0\n1.0, y\n"))
	require.ErrorIs(t, err, ErrMalformedLine)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Contains(t, pe.Error(), "line 2")
}

func TestLoadPositions(t *testing.T) {
	p := writeFile(t, "positionsdaten.txt", "1.0, 2.0\n3.0, 4.0\n")
	pos, err := LoadPositions(p)
	require.NoError(t, err)
	assert.Equal(t, Positions{{1, 2}, {3, 4}}, pos)
}
