package html

import (
	"io"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/cords"
	"github.com/npillmayer/linebox/core"
	"github.com/npillmayer/linebox/core/dimen"
	"github.com/npillmayer/linebox/engine/frame"
	"github.com/npillmayer/linebox/engine/frame/inline"
	"github.com/npillmayer/linebox/engine/glyphing"
	"github.com/npillmayer/linebox/engine/itemize"
	"github.com/npillmayer/linebox/engine/style"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Paragraph is the inline content of an HTML paragraph.
type Paragraph struct {
	Boxes *frame.BoxTable       // layout boxes, with the paragraph as the root box
	Text  cords.Cord            // text of the paragraph, referenced by items
	Items []inline.MeasuredItem // items in logical order
}

// ParagraphItems parses HTML from r and extracts the inline content of the
// first element matching selector. An empty selector selects the first <p>.
// Text is measured with m, which may be nil to measure monospace.
func ParagraphItems(r io.Reader, selector string, m glyphing.Measurer) (*Paragraph, error) {
	if selector == "" {
		selector = "p"
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		tracer().Errorf("invalid selector %q: %v", selector, err)
		return nil, core.WrapError(err, core.EINVALID, "invalid selector %q", selector)
	}
	doc, err := html.Parse(r)
	if err != nil {
		tracer().Errorf("cannot parse HTML: %v", err)
		return nil, core.WrapError(err, core.EINVALID, "cannot parse HTML input")
	}
	p := sel.MatchFirst(doc)
	if p == nil {
		return nil, core.Error(core.EMISSING, "no element matches %q", selector)
	}
	rootStyle, err := styleOf(p, nil)
	if err != nil {
		return nil, err
	}
	pr := &paragraphReader{
		boxes:    frame.NewBoxTable(rootStyle),
		open:     arraystack.New(),
		itemizer: itemize.New(m),
	}
	pr.open.Push(pr.boxes.Root())
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		if err = pr.walk(c); err != nil {
			return nil, err
		}
	}
	core.Invariant(pr.open.Size() == 1, "html: unbalanced inline boxes")
	return pr.paragraph(), nil
}

// paragraphReader collects items while walking the paragraph's subtree.
// Text is collected first and itemized after the walk, so that all items
// share a single cord.
type paragraphReader struct {
	boxes    *frame.BoxTable
	open     *arraystack.Stack // handles of open inline boxes
	itemizer *itemize.Itemizer
	text     strings.Builder
	pieces   []piece
}

// piece is either a finished item or a span of text yet to be itemized.
type piece struct {
	item   inline.MeasuredItem
	isText bool
	start  uint64
	length uint64
	box    frame.BoxRef
}

func (pr *paragraphReader) current() frame.BoxRef {
	top, ok := pr.open.Peek()
	core.Invariant(ok, "html: no open box")
	return top.(frame.BoxRef)
}

func (pr *paragraphReader) add(item inline.Item, w dimen.Dimen) {
	pr.pieces = append(pr.pieces, piece{item: inline.MeasuredItem{Item: item, Width: w}})
}

func (pr *paragraphReader) walk(n *html.Node) error {
	switch n.Type {
	case html.TextNode:
		text := norm.NFC.String(n.Data)
		if text == "" {
			return nil
		}
		start := uint64(pr.text.Len())
		pr.text.WriteString(text)
		pr.pieces = append(pr.pieces, piece{
			isText: true,
			start:  start,
			length: uint64(len(text)),
			box:    pr.current(),
		})
		return nil
	case html.ElementNode:
		return pr.element(n)
	}
	return nil
}

func (pr *paragraphReader) element(n *html.Node) error {
	tag := strings.ToLower(n.Data)
	switch tag {
	case "script", "style", "template":
		return nil
	case "br":
		pr.add(inline.NewHardLineBreakItem(pr.current()), 0)
		return nil
	case "wbr":
		pr.add(inline.NewWordBreakOpportunityItem(pr.current()), 0)
		return nil
	}
	st, err := styleOf(n, pr.boxes.Style(pr.current()))
	if err != nil {
		return err
	}
	if st.Display == style.DisplayNone {
		return nil
	}
	if tag == "img" {
		if st.Width == 0 {
			st.Width = widthAttr(n)
		}
		box := frame.NewBox(frame.ReplacedBox, tag, st)
		ref := pr.boxes.Add(box)
		pr.add(inline.NewAtomicBoxItem(ref), box.MarginBoxWidth())
		return nil
	}
	if st.Display == style.DisplayInlineBlock || st.Display == style.DisplayBlock {
		// content of atomic boxes is not part of the line
		box := frame.NewBox(frame.AtomicBox, tag, st)
		ref := pr.boxes.Add(box)
		pr.add(inline.NewAtomicBoxItem(ref), box.MarginBoxWidth())
		return nil
	}
	ref := pr.boxes.Add(frame.NewBox(frame.InlineBox, tag, st))
	pr.add(inline.NewInlineBoxStartItem(ref), 0)
	pr.open.Push(ref)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err = pr.walk(c); err != nil {
			return err
		}
	}
	pr.open.Pop()
	pr.add(inline.NewInlineBoxEndItem(ref), 0)
	return nil
}

func (pr *paragraphReader) paragraph() *Paragraph {
	para := &Paragraph{
		Boxes: pr.boxes,
		Text:  cords.FromString(pr.text.String()),
		Items: make([]inline.MeasuredItem, 0, len(pr.pieces)*2),
	}
	for _, p := range pr.pieces {
		if !p.isText {
			para.Items = append(para.Items, p.item)
			continue
		}
		items := pr.itemizer.ItemizeSpan(para.Text, p.start, p.length, p.box, pr.boxes)
		para.Items = append(para.Items, items...)
	}
	tracer().Debugf("html: paragraph has %d items in %d boxes", len(para.Items), pr.boxes.Len())
	return para
}

// styleOf creates the style of an element from its style attribute.
func styleOf(n *html.Node, parent *style.Style) (*style.Style, error) {
	st, err := style.ParseDeclarations(attr(n, "style"), parent)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "style of <%s>", n.Data)
	}
	return st, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// widthAttr reads the width attribute of an image, in pixels.
func widthAttr(n *html.Node) dimen.Dimen {
	w := strings.TrimSuffix(strings.TrimSpace(attr(n, "width")), "px")
	if w == "" {
		return 0
	}
	px, err := strconv.ParseFloat(w, 64)
	if err != nil {
		tracer().Errorf("html: illegal image width %q", w)
		return 0
	}
	return dimen.FromPixels(px)
}
