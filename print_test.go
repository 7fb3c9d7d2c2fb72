package automaton

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	a := build(t, 2, 0, []int{1},
		[]int{1, -1},
		[]int{-1, 0},
	)
	c := a.Copy()

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, a))
	out := buf.String()
	assert.Contains(t, out, "->")
	assert.Contains(t, out, "*")
	assert.Contains(t, out, "-")
	assert.True(t, c.Equals(a))
}

func TestPrintDict(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintDict(&buf, NewDictFrom([]int{2, -1})))
	assert.Contains(t, buf.String(), "2")
	assert.Contains(t, buf.String(), "-1")

	buf.Reset()
	id := NewDictFrom([]int{1, 0, 1}).Invert()
	require.NoError(t, PrintInvertDict(&buf, id))
	assert.NotEmpty(t, buf.String())
}

func TestPrintStateSetList(t *testing.T) {
	l := NewStateSetList()
	l.Add(NewStateSetOf(2, 0))
	l.Add(NewStateSetOf())

	var buf bytes.Buffer
	require.NoError(t, PrintStateSetList(&buf, l))
	assert.Equal(t, "0: {0, 2}\n1: {}\n", buf.String())
}

func TestPlotTikZ(t *testing.T) {
	a := build(t, 2, 0, []int{1},
		[]int{1, 1},
		[]int{-1, 1},
	)
	var buf bytes.Buffer
	labels := func(l int) string { return string(rune('a' + l)) }
	require.NoError(t, PlotTikZ(&buf, a, labels, "example", 1, 1))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "% example\n"))
	assert.Contains(t, out, "state,initial")
	assert.Contains(t, out, "state,accepting")
	assert.Contains(t, out, "node {$a,b$} (1)")
	assert.Contains(t, out, "edge [loop above] node {$b$} (1)")
	assert.True(t, strings.HasSuffix(out, "\\end{tikzpicture}\n"))

	err := PlotTikZ(failingWriter{}, a, nil, "x", 1, 1)
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}
