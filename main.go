package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"showkit/core"
	"showkit/layout"
	"showkit/showcase"
	"showkit/terminal"
)

// step is one stop on the demo tour: a named target region plus the text
// shown in the status line while it is highlighted.
type step struct {
	name   string
	target *layout.Region
}

func main() {
	padding := flag.Float64("padding", 1, "highlight padding, in cells, on every side")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Interactive demo of showcase target positioning.\n")
		fmt.Fprintf(os.Stderr, "Keys: tab/n next target, p previous, q/esc quit.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(core.PaddingAll(*padding)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(padding core.Padding) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	root := layout.NewRoot(terminal.ScreenSize(screen))

	// A small mock application layout: a toolbar, a sidebar with a nested
	// button, and a content pane. The nested button exercises transforms
	// across more than one level of the tree.
	toolbar := root.NewChild(core.Point{X: 1, Y: 0}, core.Size{Width: 40, Height: 1})
	sidebar := root.NewChild(core.Point{X: 1, Y: 2}, core.Size{Width: 18, Height: 12})
	button := sidebar.NewChild(core.Point{X: 2, Y: 9}, core.Size{Width: 12, Height: 1})
	content := root.NewChild(core.Point{X: 21, Y: 2}, core.Size{Width: 36, Height: 12})

	steps := []step{
		{name: "toolbar", target: toolbar},
		{name: "sidebar", target: sidebar},
		{name: "save button", target: button},
		{name: "content pane", target: content},
	}

	current := 0
	pos, err := showcase.NewTargetPosition(steps[current].target, root, terminal.ScreenSize(screen),
		showcase.WithPadding(padding))
	if err != nil {
		return err
	}

	for {
		draw(screen, root, toolbar, sidebar, button, content, pos, steps[current].name)

		ev := screen.PollEvent()
		if terminal.IsDimensionEvent(ev) {
			// A new screen size means a new calculator: screen bounds are
			// fixed at construction, and the root frame changed too.
			root.Resize(terminal.ScreenSize(screen))
			pos, err = showcase.NewTargetPosition(steps[current].target, root, terminal.ScreenSize(screen),
				showcase.WithPadding(padding))
			if err != nil {
				return err
			}
			screen.Sync()
			continue
		}

		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch {
		case key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC || key.Rune() == 'q':
			return nil
		case key.Key() == tcell.KeyTab || key.Rune() == 'n' || key.Rune() == ' ':
			current = (current + 1) % len(steps)
		case key.Rune() == 'p':
			current = (current - 1 + len(steps)) % len(steps)
		default:
			continue
		}
		pos, err = showcase.NewTargetPosition(steps[current].target, root, terminal.ScreenSize(screen),
			showcase.WithPadding(padding))
		if err != nil {
			return err
		}
	}
}

func draw(screen tcell.Screen, root, toolbar, sidebar, button, content *layout.Region,
	pos *showcase.TargetPosition, name string) {
	screen.Clear()

	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	drawRegion(screen, root, toolbar, " File  Edit  View  Help ", dim)
	drawRegion(screen, root, sidebar, " sidebar ", dim)
	drawRegion(screen, root, button, "[ Save ]", dim)
	drawRegion(screen, root, content, " content ", dim)

	highlight := pos.HighlightRect()
	drawFrame(screen, highlight, tcell.StyleDefault.Foreground(tcell.ColorYellow))

	status := fmt.Sprintf(" %s  highlight l=%.0f t=%.0f r=%.0f b=%.0f  center x=%.1f  (tab: next, q: quit) ",
		name, highlight.Left, highlight.Top, highlight.Right, highlight.Bottom, pos.HorizontalCenter())
	sz := terminal.ScreenSize(screen)
	drawText(screen, 0, int(sz.Height)-1, status, tcell.StyleDefault.Reverse(true))

	screen.Show()
}

// drawRegion renders a region's bounds (in root space) as a labelled box.
func drawRegion(screen tcell.Screen, root layout.Element, r *layout.Region, label string, style tcell.Style) {
	bounds, err := r.Bounds(root)
	if err != nil {
		return
	}
	if bounds.Height() <= 1 {
		drawText(screen, int(bounds.Left), int(bounds.Top), label, style)
		return
	}
	drawFrame(screen, bounds, style)
	drawText(screen, int(bounds.Left)+1, int(bounds.Top), label, style)
}

// drawFrame renders a rectangle outline. Inverted or degenerate rects
// (possible after aggressive clamping) draw nothing.
func drawFrame(screen tcell.Screen, r core.Rect, style tcell.Style) {
	left, top := int(r.Left), int(r.Top)
	right, bottom := int(r.Right)-1, int(r.Bottom)-1
	if right <= left || bottom <= top {
		return
	}
	for x := left + 1; x < right; x++ {
		screen.SetContent(x, top, tcell.RuneHLine, nil, style)
		screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		screen.SetContent(left, y, tcell.RuneVLine, nil, style)
		screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(left, top, tcell.RuneULCorner, nil, style)
	screen.SetContent(right, top, tcell.RuneURCorner, nil, style)
	screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
