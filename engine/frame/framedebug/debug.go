/*
Package framedebug draws lines and their boxes for debugging.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package framedebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/linebox/core"
	"github.com/npillmayer/linebox/engine/frame"
	"github.com/npillmayer/linebox/engine/frame/inline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'tyse.frame'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.frame")
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	RunTmpl  *template.Template
	BoxTmpl  *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz creates a graphical representation of the runs of a line.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
// Runs are chained from left to right, each run is connected to the box it
// belongs to.
func ToGraphViz(l *inline.Line, boxes *frame.BoxTable, w io.Writer) error {
	header, err := template.New("line").Parse(graphHeadTmpl)
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot parse graph template")
	}
	funcs := template.FuncMap{
		"shortstring": shortText,
		"label":       label,
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.RunTmpl = template.Must(template.New("run").Funcs(funcs).Parse(runTmpl))
	gparams.BoxTmpl = template.Must(template.New("box").Parse(boxTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	seen := make(map[frame.BoxRef]bool, boxes.Len())
	runs := l.Runs()
	for i := range runs {
		r := &runs[i]
		ref := r.Box()
		if !seen[ref] {
			seen[ref] = true
			b := cbox{Name: boxName(ref), Box: boxes.Box(ref)}
			if err = gparams.BoxTmpl.Execute(w, b); err != nil {
				return err
			}
		}
		if err = gparams.RunTmpl.Execute(w, &crun{Run: r, Name: runName(i)}); err != nil {
			return err
		}
		e := cedge{From: boxName(ref), To: runName(i), Style: "dashed"}
		if err = gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
		if i > 0 {
			e = cedge{From: runName(i - 1), To: runName(i), Style: "solid"}
			if err = gparams.EdgeTmpl.Execute(w, e); err != nil {
				return err
			}
		}
	}
	tracer().Debugf("framedebug: drew %d runs of %d boxes", len(runs), len(seen))
	_, err = w.Write([]byte("}\n"))
	return err
}

func runName(i int) string {
	return fmt.Sprintf("run%04d", i)
}

func boxName(ref frame.BoxRef) string {
	return fmt.Sprintf("box%04d", ref)
}

// Helper structs
type crun struct {
	Run  *inline.Run
	Name string
}

type cbox struct {
	Name string
	Box  *frame.Box
}

type cedge struct {
	From, To string
	Style    string
}

func shortText(r *crun) string {
	txt := []rune(r.Run.Text())
	if len(txt) > 10 {
		txt = append(txt[:10], '…')
	}
	s := string(txt)
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "\u2423", -1)
	s = strings.Replace(s, `"`, `\"`, -1)
	return fmt.Sprintf(`"\"%s\"\n%s + %s"`, s, r.Run.Left().Pixels(), r.Run.Width().Pixels())
}

// ---------------------------------------------------------------------------

func label(r *crun) string {
	return "\"" + RunLabel(r.Run) + "\""
}

// RunLabel returns a short description of a non-text run.
func RunLabel(r *inline.Run) string {
	if r == nil {
		return "<no run>"
	}
	return fmt.Sprintf("%s\\n%s + %s", r.Kind(), r.Left().Pixels(), r.Width().Pixels())
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const runTmpl = `{{ if .Run.HasText }}
{{ .Name }}	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ label . }} shape=box style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const boxTmpl = `{{ .Name }}	[ label="{{ .Box.Kind }} {{ .Box.Name }}" shape=ellipse ] ;
`

const edgeTmpl = `{{ .From }} -> {{ .To }} [weight=1 style={{ .Style }}] ;
`
