// Package console runs dodge directly on a tcell screen with a bounded-wait
// poll loop: each iteration waits at most one tick for a key, then steps the
// session with that key (or none) and redraws.
package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
	"github.com/vovakirdan/tui-dodge/internal/platform/tui"
)

// Options configures Run. Zero values fall back to defaults.
type Options struct {
	Clock  core.Clock
	Tick   time.Duration // input poll timeout
	Seed   int64         // 0 means time-based
	Logger *log.Logger
	KeyMap *tui.KeyMap
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = core.SystemClock{}
	}
	if o.Tick <= 0 {
		o.Tick = core.DefaultConfig().Tick
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.KeyMap == nil {
		km := tui.DefaultKeyMap()
		o.KeyMap = &km
	}
	return o
}

// Run plays one session on screen, which must already be initialized. Run owns
// the screen from then on and finalizes it before returning, panics included.
// Cancelling ctx ends the session as a quit.
func Run(ctx context.Context, screen tcell.Screen, opts Options) (dodge.Result, error) {
	opts = opts.withDefaults()

	defer func() {
		maybePanic := recover()
		screen.Fini()
		if maybePanic != nil {
			panic(maybePanic)
		}
	}()

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	stop := make(chan struct{})
	defer close(stop)
	events := make(chan tcell.Event, 16)
	go poll(screen, events, stop)

	session := dodge.NewSession(opts.Clock.Now(), opts.Seed, dodge.WithLogger(opts.Logger))
	w, h := dodge.FrameSize(dodge.DefaultGrid)
	buf := core.NewScreen(w, h)
	draw(screen, session, buf)

	timer := time.NewTimer(opts.Tick)
	defer timer.Stop()

	for {
		action := core.ActionNone
		timer.Reset(opts.Tick)

		select {
		case <-ctx.Done():
			action = core.ActionQuit
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action = opts.KeyMap.Action(nameOf(ev))
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-timer.C:
		}

		res := session.Step(opts.Clock.Now(), action)
		if res.State == dodge.StateEnded {
			return session.Result(), nil
		}
		draw(screen, session, buf)
	}
}

// poll forwards screen events until the screen is finalized or stop closes.
func poll(screen tcell.Screen, events chan<- tcell.Event, stop <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-stop:
			return
		}
	}
}

// draw renders the session snapshot and copies it to the tcell screen.
func draw(screen tcell.Screen, session *dodge.Session, buf *core.Screen) {
	dodge.Render(session.Snapshot(), buf)

	screen.Clear()
	for y := range buf.Height() {
		for x := range buf.Width() {
			cell := buf.GetCell(x, y)
			screen.SetContent(x, y, cell.Rune, nil, styles[cell.Color])
		}
	}
	screen.Show()
}

var styles = map[core.Color]tcell.Style{
	core.ColorDefault:      tcell.StyleDefault,
	core.ColorYellow:       tcell.StyleDefault.Foreground(tcell.ColorOlive),
	core.ColorGray:         tcell.StyleDefault.Foreground(tcell.ColorGray),
	core.ColorBrightRed:    tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	core.ColorBrightYellow: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorBrightWhite:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
}

// keyName names a tcell key the way Bubble Tea does, so one KeyMap serves
// both drivers.
type keyName string

func (k keyName) String() string {
	return string(k)
}

func nameOf(ev *tcell.EventKey) keyName {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return keyName(fmt.Sprintf("alt+%c", ev.Rune()))
		}
		return keyName(string(ev.Rune()))
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	}
	return keyName(ev.Name())
}
