package client

import (
	"CanvasPong/core"
	"time"
	"unicode"
)

// Binding is what a movement key asks for.
type Binding struct {
	Side   core.Side
	Intent core.Intent
}

const PauseKey = 'b'

func DefaultBindings() map[rune]Binding {
	return map[rune]Binding{
		'q': {Side: core.Left, Intent: core.Up},
		'a': {Side: core.Left, Intent: core.Down},
		'p': {Side: core.Right, Intent: core.Up},
		'l': {Side: core.Right, Intent: core.Down},
	}
}

// Controls turns key transitions into loop commands. A key-up only stops a
// side when the released key is the one that side is currently following, so
// rolling from one key to the other never stalls the paddle.
//
// Terminals report presses and auto-repeats but no releases; Release treats a
// key that went quiet as let go. Until a key has repeated once it gets the
// longer repeatDelay window, because the terminal waits that long before its
// first auto-repeat. After that the gap between repeats is short and release
// applies.
type Controls struct {
	bindings    map[rune]Binding
	repeatDelay time.Duration
	release     time.Duration
	actions     [2]core.Intent
	held        map[rune]heldKey
}

type heldKey struct {
	last     time.Time
	repeated bool
}

func NewControls(bindings map[rune]Binding, repeatDelay, release time.Duration) *Controls {
	return &Controls{
		bindings:    bindings,
		repeatDelay: repeatDelay,
		release:     release,
		held:        make(map[rune]heldKey),
	}
}

// KeyDown handles a press (or auto-repeat) of r at now.
func (c *Controls) KeyDown(r rune, now time.Time) []core.Command {
	r = unicode.ToLower(r)
	if r == PauseKey {
		return []core.Command{core.PauseCommand()}
	}

	binding, ok := c.bindings[r]
	if !ok {
		return nil
	}
	_, repeat := c.held[r]
	c.held[r] = heldKey{last: now, repeated: repeat}
	if c.actions[binding.Side] == binding.Intent {
		return nil
	}
	c.actions[binding.Side] = binding.Intent
	return []core.Command{core.IntentCommand(binding.Side, binding.Intent)}
}

func (c *Controls) KeyUp(r rune) []core.Command {
	r = unicode.ToLower(r)
	binding, ok := c.bindings[r]
	if !ok {
		return nil
	}
	delete(c.held, r)
	if c.actions[binding.Side] != binding.Intent {
		return nil
	}
	c.actions[binding.Side] = core.Stop
	return []core.Command{core.IntentCommand(binding.Side, core.Stop)}
}

// Release synthesizes key-ups for keys that went quiet for their window.
func (c *Controls) Release(now time.Time) []core.Command {
	var commands []core.Command
	for r, key := range c.held {
		window := c.repeatDelay
		if key.repeated {
			window = c.release
		}
		if now.Sub(key.last) >= window {
			commands = append(commands, c.KeyUp(r)...)
		}
	}
	return commands
}

func (c *Controls) Action(side core.Side) core.Intent {
	return c.actions[side]
}
