package automaton

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kr/pretty"
	"github.com/olekukonko/tablewriter"
)

// Print writes the transition table of a: one row per state, one column per letter.
// The initial state is marked with "->" and final states with "*".
func Print(w io.Writer, a *Automaton) error {
	table := tablewriter.NewWriter(w)
	header := make([]string, 0, a.NumLetters()+2)
	header = append(header, "state", "mark")
	for l := 0; l < a.NumLetters(); l++ {
		header = append(header, strconv.Itoa(l))
	}
	table.Header(header)

	initial := initialOrNone(a)
	for s := 0; s < a.NumStates(); s++ {
		mark := ""
		if s == initial {
			mark = "->"
		}
		if a.IsFinal(s) {
			mark += "*"
		}
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(s), mark)
		for l := 0; l < a.NumLetters(); l++ {
			if t, ok := a.Step(s, l); ok {
				row = append(row, strconv.Itoa(t))
			} else {
				row = append(row, "-")
			}
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// PrintDict writes the images of a dictionary.
func PrintDict(w io.Writer, d *Dict) error {
	_, err := pretty.Fprintf(w, "%# v\n", d.images)
	return err
}

// PrintInvertDict writes the preimages of every target letter.
func PrintInvertDict(w io.Writer, id *InvertDict) error {
	_, err := pretty.Fprintf(w, "%# v\n", id.preimages)
	return err
}

// PrintStateSetList writes every set of the list with its position.
func PrintStateSetList(w io.Writer, l *StateSetList) error {
	_, err := io.WriteString(w, l.String())
	return err
}

// PlotTikZ writes a TikZ picture of a for LaTeX. labels names the letters; sx and sy scale the
// layout horizontally and vertically. States are laid out on a circle.
func PlotTikZ(w io.Writer, a *Automaton, labels func(letter int) string, name string, sx, sy float64) error {
	if labels == nil {
		labels = strconv.Itoa
	}
	n := a.NumStates()
	initial := initialOrNone(a)
	bw := &errWriter{w: w}

	bw.printf("%% %s\n", name)
	bw.printf("\\begin{tikzpicture}[->,>=stealth',shorten >=1pt,auto,node distance=2cm,xscale=%g,yscale=%g]\n", sx, sy)
	for s := 0; s < n; s++ {
		style := "state"
		if s == initial {
			style += ",initial"
		}
		if a.IsFinal(s) {
			style += ",accepting"
		}
		angle := 0.0
		if n > 0 {
			angle = 360.0 * float64(s) / float64(n)
		}
		bw.printf("\\node[%s] (%d) at (%g:%gcm) {$%d$};\n", style, s, angle, float64(n)/2+1, s)
	}

	bw.printf("\\path\n")
	for s := 0; s < n; s++ {
		// letters grouped by destination so parallel edges share one arrow
		byDest := make(map[int][]int)
		dests := make([]int, 0)
		a.successors(s, func(l, t int) {
			if _, ok := byDest[t]; !ok {
				dests = append(dests, t)
			}
			byDest[t] = append(byDest[t], l)
		})
		for _, t := range dests {
			label := ""
			for i, l := range byDest[t] {
				if i > 0 {
					label += ","
				}
				label += labels(l)
			}
			edge := "edge"
			if t == s {
				edge = "edge [loop above]"
			} else if s < t {
				edge = "edge [bend left]"
			}
			bw.printf("(%d) %s node {$%s$} (%d)\n", s, edge, label, t)
		}
	}
	bw.printf(";\n\\end{tikzpicture}\n")
	return bw.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
