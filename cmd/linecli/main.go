/*
Command linecli is an interactive tool for building a single line box.

Items are appended one at a time with commands like

	text Hello world
	span letter-spacing: 2px
	end
	img 20

and the resulting runs may be inspected, trimmed and justified. Try 'help'
for a list of commands.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/cords"
	"github.com/npillmayer/linebox/core"
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/core/parameters"
	"github.com/npillmayer/linebox/engine/frame"
	"github.com/npillmayer/linebox/engine/frame/framedebug"
	"github.com/npillmayer/linebox/engine/frame/inline"
	"github.com/npillmayer/linebox/engine/glyphing/harfbuzz"
	"github.com/npillmayer/linebox/engine/itemize"
	"github.com/npillmayer/linebox/engine/style"
	"github.com/npillmayer/linebox/input/html"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	flag "github.com/spf13/pflag"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"
)

// tracer traces with key 'tyse.frame'
func tracer() tracing.Trace {
	return tracing.Select("tyse.frame")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.tyse.frame":   "Error",
		"trace.tyse.itemize": "Error",
		"trace.tyse.input":   "Error",
		"trace.tyse.style":   "Error",
		"trace.tyse.glyphs":  "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.StringP("trace", "t", "Error", "Trace `level` [Debug|Info|Error]")
	quirks := flag.BoolP("quirks", "q", false, "Keep trailing whitespace in front of line breaks")
	em := flag.Float64("em", 10, "Em-size of the font, in `pixels`")
	fontname := flag.StringP("font", "f", "", "Measure with a system `font`, e.g. DejaVuSans.ttf, or 'go' for Go Regular")
	flag.Parse()
	for _, key := range []string{"tyse.frame", "tyse.itemize", "tyse.input", "tyse.style"} {
		tracing.Select(key).SetTraceLevel(traceLevel(*tlevel))
	}
	pterm.Info.Println("Welcome to the line box CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("line > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	regs := parameters.NewTypesettingRegisters()
	regs.Push(parameters.P_INTEGRATIONQUIRKS, *quirks)
	regs.Push(parameters.P_EM, dimen.FromPixels(*em))
	intp := NewIntp(repl, regs)
	if *fontname != "" {
		if err := intp.useFont(*fontname, regs); err != nil {
			pterm.Error.Println(core.ErrorReport(err))
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

func traceLevel(l string) tracing.TraceLevel {
	switch strings.ToLower(l) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object. It holds a single line and the boxes its
// items refer to.
type Intp struct {
	repl     *readline.Instance
	conf     inline.Config
	boxes    *frame.BoxTable
	line     *inline.Line
	open     *arraystack.Stack // handles of open inline boxes
	itemizer *itemize.Itemizer
	src      strings.Builder // all text appended so far
}

// NewIntp creates an interpreter with an empty line.
func NewIntp(repl *readline.Instance, regs *parameters.TypesettingRegisters) *Intp {
	conf := inline.ConfigFromRegisters(regs)
	intp := &Intp{
		repl:     repl,
		conf:     conf,
		itemizer: itemize.New(conf.Measurer),
	}
	intp.setRoot(style.Initial())
	return intp
}

// useFont switches from monospace measuring to shaping with a font.
func (intp *Intp) useFont(name string, regs *parameters.TypesettingRegisters) error {
	fbytes := goregular.TTF
	if name != "go" {
		var err error
		if fbytes, err = harfbuzz.SystemFont(name); err != nil {
			return err
		}
	}
	lang, _ := language.Parse(regs.S(parameters.P_LANGUAGE))
	m, err := harfbuzz.NewMeasurer(fbytes, regs.D(parameters.P_EM), lang, regs.Dir(parameters.P_TEXTDIRECTION))
	if err != nil {
		return err
	}
	intp.conf.Measurer = m
	intp.itemizer = itemize.New(m)
	intp.setRoot(style.Initial())
	pterm.Info.Printfln("measuring text with font %s", name)
	return nil
}

func (intp *Intp) setRoot(st *style.Style) {
	intp.boxes = frame.NewBoxTable(st)
	intp.line = inline.NewLine(intp.boxes, intp.boxes.Root(), intp.conf)
	intp.open = arraystack.New()
	intp.open.Push(intp.boxes.Root())
	intp.src.Reset()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(core.ErrorReport(err))
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.ErrorReport(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command is a single REPL command with its argument string.
type Command struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	STYLE
	TEXT
	SPAN
	END
	BOX
	IMG
	BR
	NL
	WBR
	TRIM
	JUSTIFY
	HYPHEN
	HTML
	SHOW
	DOT
	RESET
)

var commands = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"style":   STYLE,
	"text":    TEXT,
	"span":    SPAN,
	"end":     END,
	"box":     BOX,
	"img":     IMG,
	"br":      BR,
	"nl":      NL,
	"wbr":     WBR,
	"trim":    TRIM,
	"justify": JUSTIFY,
	"hyphen":  HYPHEN,
	"html":    HTML,
	"show":    SHOW,
	"dot":     DOT,
	"reset":   RESET,
}

func parseCommand(line string) (*Command, error) {
	line = strings.TrimLeft(line, " \t")
	word, arg := line, ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		word, arg = line[:i], line[i+1:]
	}
	code, ok := commands[strings.ToLower(word)]
	if !ok {
		return nil, core.Error(core.EINVALID, "unknown command %q, try 'help'", word)
	}
	tracer().Debugf("parse command = %s(%q)", word, arg)
	if code != TEXT { // text is taken verbatim
		arg = strings.TrimSpace(arg)
	}
	return &Command{code: code, arg: arg}, nil
}

func (intp *Intp) execute(cmd *Command) (quit bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			if !core.IsInvariantViolation(r) {
				panic(r)
			}
			err = r.(error)
		}
	}()
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case STYLE:
		st, err := style.ParseDeclarations(cmd.arg, nil)
		if err != nil {
			return false, err
		}
		intp.setRoot(st)
		pterm.Printfln("new line, root style %q", cmd.arg)
	case TEXT:
		intp.text(cmd.arg)
	case SPAN:
		st, err := style.ParseDeclarations(cmd.arg, intp.boxes.Style(intp.current()))
		if err != nil {
			return false, err
		}
		ref := intp.boxes.Add(frame.NewBox(frame.InlineBox, "span", st))
		intp.line.Append(inline.NewInlineBoxStartItem(ref), 0)
		intp.open.Push(ref)
	case END:
		if intp.open.Size() <= 1 {
			return false, core.Error(core.EINVALID, "no open span")
		}
		top, _ := intp.open.Pop()
		intp.line.Append(inline.NewInlineBoxEndItem(top.(frame.BoxRef)), 0)
	case BOX, IMG:
		return false, intp.atomic(cmd)
	case BR:
		intp.line.Append(inline.NewHardLineBreakItem(intp.current()), 0)
	case NL:
		cord, pos := intp.appendSource("\n")
		intp.line.Append(inline.NewSoftLineBreakItem(intp.current(), cord, pos), 0)
	case WBR:
		intp.line.Append(inline.NewWordBreakOpportunityItem(intp.current()), 0)
	case TRIM, JUSTIFY:
		available, err := dimenArg(cmd.arg)
		if err != nil {
			return false, err
		}
		extra := available - intp.line.ContentLogicalWidth()
		if cmd.code == TRIM {
			intp.line.RemoveCollapsibleContent(extra)
		} else {
			intp.line.ApplyRunExpansion(extra)
		}
		intp.show()
	case HYPHEN:
		w := intp.conf.Measurer.Width(intp.boxes.Style(intp.current()).HyphenString)
		intp.line.AddTrailingHyphen(w)
	case HTML:
		return false, intp.html(cmd.arg)
	case SHOW:
		intp.show()
	case DOT:
		return false, intp.dot(cmd.arg)
	case RESET:
		intp.line.Initialize()
		pterm.Printfln("line cleared")
	}
	return false, nil
}

func (intp *Intp) current() frame.BoxRef {
	top, ok := intp.open.Peek()
	core.Invariant(ok, "no open box")
	return top.(frame.BoxRef)
}

// appendSource appends text to the source and returns a cord for all of the
// source, together with the start position of text.
func (intp *Intp) appendSource(text string) (cords.Cord, uint64) {
	pos := uint64(intp.src.Len())
	intp.src.WriteString(text)
	return cords.FromString(intp.src.String()), pos
}

func (intp *Intp) text(text string) {
	cord, pos := intp.appendSource(text)
	items := intp.itemizer.ItemizeSpan(cord, pos, uint64(len(text)), intp.current(), intp.boxes)
	for _, item := range items {
		intp.line.Append(item.Item, item.Width)
	}
	pterm.Printfln("appended %d items, content width = %spx", len(items),
		intp.line.ContentLogicalWidth().Pixels())
}

func (intp *Intp) atomic(cmd *Command) error {
	args := strings.Fields(cmd.arg)
	if len(args) == 0 {
		return core.Error(core.EMISSING, "width missing")
	}
	w, err := dimenArg(args[0])
	if err != nil {
		return err
	}
	st := style.Inherit(intp.boxes.Style(intp.current()))
	st.Width = w
	if len(args) > 1 {
		if st.MarginLeft, err = dimenArg(args[1]); err != nil {
			return err
		}
		if st.IsRTL() {
			st.MarginLeft, st.MarginRight = 0, st.MarginLeft
		}
	}
	kind, name := frame.AtomicBox, "inline-block"
	if cmd.code == IMG {
		kind, name = frame.ReplacedBox, "img"
	}
	box := frame.NewBox(kind, name, st)
	intp.line.Append(inline.NewAtomicBoxItem(intp.boxes.Add(box)), box.MarginBoxWidth())
	return nil
}

func (intp *Intp) html(markup string) error {
	para, err := html.ParagraphItems(strings.NewReader(markup), "", intp.conf.Measurer)
	if err != nil {
		return err
	}
	intp.boxes = para.Boxes
	intp.line = inline.NewLine(para.Boxes, para.Boxes.Root(), intp.conf)
	intp.open = arraystack.New()
	intp.open.Push(para.Boxes.Root())
	intp.src.Reset()
	for _, item := range para.Items {
		intp.line.Append(item.Item, item.Width)
	}
	intp.show()
	return nil
}

// show prints the runs of the line as a table.
func (intp *Intp) show() {
	data := pterm.TableData{
		{"#", "kind", "box", "left", "width", "text", "trailing ws", "expansion"},
	}
	for i, r := range intp.line.Runs() {
		text := ""
		if r.HasText() {
			text = strconv.Quote(r.Text())
		}
		if w, ok := r.HyphenWidth(); ok {
			text += fmt.Sprintf(" + hyphen(%spx)", w.Pixels())
		}
		data = append(data, []string{
			strconv.Itoa(i),
			r.Kind().String(),
			intp.boxes.Box(r.Box()).Name,
			r.Left().Pixels(),
			r.Width().Pixels(),
			text,
			r.TrailingWhitespace().String(),
			r.Expansion().Width.Pixels(),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
	hyphen := ""
	if w, ok := intp.line.TrailingSoftHyphenWidth(); ok {
		hyphen = fmt.Sprintf(", soft hyphen %spx", w.Pixels())
	}
	pterm.Printfln("content width = %spx, trimmable = %spx, inline-level boxes = %d%s",
		intp.line.ContentLogicalWidth().Pixels(), intp.line.TrimmableTrailingWidth().Pixels(),
		intp.line.NonSpanningInlineLevelBoxCount(), hyphen)
}

// dot writes the runs of the line as a Graphviz file.
func (intp *Intp) dot(filename string) error {
	if filename == "" {
		filename = "line.dot"
	}
	f, err := os.Create(filename)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create %s", filename)
	}
	defer f.Close()
	if err = framedebug.ToGraphViz(intp.line, intp.boxes, f); err != nil {
		return err
	}
	pterm.Printfln("wrote %s", filename)
	return nil
}

// dimenArg parses a dimension. Plain numbers are pixels.
func dimenArg(arg string) (dimen.Dimen, error) {
	if px, err := strconv.ParseFloat(arg, 64); err == nil {
		return dimen.FromPixels(px), nil
	}
	d, ispcnt, err := dimen.ParseDimen(arg)
	if err != nil || ispcnt {
		return 0, core.Error(core.EINVALID, "not a dimension: %q", arg)
	}
	return d, nil
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	style <css>              start a new line with a root style, e.g. 'style text-align: justify'
	text <string>            append text to the current box
	span [css]               open an inline box
	end                      close the innermost inline box
	box <width> [margin]     append an inline-block, with optional start margin
	img <width> [margin]     append an image
	br | nl | wbr            append a forced break, a preserved newline or a break opportunity
	trim <available>         remove collapsible trailing content
	justify <available>      distribute the remaining space (needs text-align: justify)
	hyphen                   append a hyphen to the last text run
	html <markup>            build a line from the first <p> of some HTML
	show                     print the runs of the line
	dot [file]               write the runs of the line as a Graphviz graph
	reset                    clear the line
	quit                     leave the CLI

	Dimensions without a unit are pixels.
	`)
}
