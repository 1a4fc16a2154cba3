package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Held keys repeat after keyRepeatDelay ticks, every keyRepeatInterval ticks.
const (
	keyRepeatDelay    = 12
	keyRepeatInterval = 3
)

type binding struct {
	keys   []ebiten.Key
	action core.Action
	repeat bool
}

var defaultBindings = []binding{
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, core.ActionLeft, true},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, core.ActionRight, true},
	{[]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, core.ActionSoftDrop, true},
	{[]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, core.ActionRotate, false},
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionHardDrop, false},
	{[]ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, core.ActionPause, false},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionRestart, false},
}

var quitKeys = []ebiten.Key{ebiten.KeyQ}

// keyboard turns Ebitengine key state into input frames.
type keyboard struct {
	bindings []binding
	frame    core.InputFrame
}

func newKeyboard() *keyboard {
	return &keyboard{
		bindings: defaultBindings,
		frame:    core.NewInputFrame(),
	}
}

// poll returns this tick's actions and whether a quit key was pressed.
// The returned frame is reused on the next poll.
func (k *keyboard) poll() (core.InputFrame, bool) {
	for _, key := range quitKeys {
		if inpututil.IsKeyJustPressed(key) {
			return k.frame, true
		}
	}

	k.frame.Clear()
	for _, b := range k.bindings {
		for _, key := range b.keys {
			if inpututil.IsKeyJustPressed(key) || (b.repeat && repeatFires(inpututil.KeyPressDuration(key))) {
				k.frame.Set(b.action)
				break
			}
		}
	}
	return k.frame, false
}

// repeatFires reports whether a key held for d ticks should fire again.
func repeatFires(d int) bool {
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}
