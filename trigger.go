package sapling

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// Trigger identifies an input that a sprite callback can be bound to.
type Trigger uint8

const (
	TriggerA Trigger = iota
	TriggerB
	TriggerC
	TriggerD
	TriggerE
	TriggerF
	TriggerG
	TriggerH
	TriggerI
	TriggerJ
	TriggerK
	TriggerL
	TriggerM
	TriggerN
	TriggerO
	TriggerP
	TriggerQ
	TriggerR
	TriggerS
	TriggerT
	TriggerU
	TriggerV
	TriggerW
	TriggerX
	TriggerY
	TriggerZ
	Trigger0
	Trigger1
	Trigger2
	Trigger3
	Trigger4
	Trigger5
	Trigger6
	Trigger7
	Trigger8
	Trigger9
	TriggerLeft  // left arrow
	TriggerRight // right arrow
	TriggerUp    // up arrow
	TriggerDown  // down arrow
	TriggerSpace
	TriggerClick // pointer pressed inside the sprite's bounds

	triggerCount
)

var triggerNames = [triggerCount]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"left", "right", "up", "down", "space", "click",
}

// keyTriggers maps host key codes to the key-press triggers.
var keyTriggers = map[ebiten.Key]Trigger{
	ebiten.KeyA:          TriggerA,
	ebiten.KeyB:          TriggerB,
	ebiten.KeyC:          TriggerC,
	ebiten.KeyD:          TriggerD,
	ebiten.KeyE:          TriggerE,
	ebiten.KeyF:          TriggerF,
	ebiten.KeyG:          TriggerG,
	ebiten.KeyH:          TriggerH,
	ebiten.KeyI:          TriggerI,
	ebiten.KeyJ:          TriggerJ,
	ebiten.KeyK:          TriggerK,
	ebiten.KeyL:          TriggerL,
	ebiten.KeyM:          TriggerM,
	ebiten.KeyN:          TriggerN,
	ebiten.KeyO:          TriggerO,
	ebiten.KeyP:          TriggerP,
	ebiten.KeyQ:          TriggerQ,
	ebiten.KeyR:          TriggerR,
	ebiten.KeyS:          TriggerS,
	ebiten.KeyT:          TriggerT,
	ebiten.KeyU:          TriggerU,
	ebiten.KeyV:          TriggerV,
	ebiten.KeyW:          TriggerW,
	ebiten.KeyX:          TriggerX,
	ebiten.KeyY:          TriggerY,
	ebiten.KeyZ:          TriggerZ,
	ebiten.KeyDigit0:     Trigger0,
	ebiten.KeyDigit1:     Trigger1,
	ebiten.KeyDigit2:     Trigger2,
	ebiten.KeyDigit3:     Trigger3,
	ebiten.KeyDigit4:     Trigger4,
	ebiten.KeyDigit5:     Trigger5,
	ebiten.KeyDigit6:     Trigger6,
	ebiten.KeyDigit7:     Trigger7,
	ebiten.KeyDigit8:     Trigger8,
	ebiten.KeyDigit9:     Trigger9,
	ebiten.KeyArrowLeft:  TriggerLeft,
	ebiten.KeyArrowRight: TriggerRight,
	ebiten.KeyArrowUp:    TriggerUp,
	ebiten.KeyArrowDown:  TriggerDown,
	ebiten.KeySpace:      TriggerSpace,
}

// triggerKeys is the inverse of keyTriggers, used to inject key presses by
// trigger.
var triggerKeys = func() map[Trigger]ebiten.Key {
	m := make(map[Trigger]ebiten.Key, len(keyTriggers))
	for k, t := range keyTriggers {
		m[t] = k
	}
	return m
}()

// Valid reports whether t is one of the supported triggers.
func (t Trigger) Valid() bool {
	return t < triggerCount
}

// String returns the trigger's short name, e.g. "a", "7", "left" or "click".
func (t Trigger) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return triggerNames[t]
}

// ParseTrigger returns the trigger with the given short name.
func ParseTrigger(name string) (Trigger, error) {
	for i, n := range triggerNames {
		if n == name {
			return Trigger(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownTrigger, "parse %q", name)
}

// triggerForKey maps a host key to its key-press trigger.
func triggerForKey(k ebiten.Key) (Trigger, bool) {
	t, ok := keyTriggers[k]
	return t, ok
}

// keyForTrigger maps a key-press trigger back to its host key. TriggerClick
// has no key.
func keyForTrigger(t Trigger) (ebiten.Key, bool) {
	k, ok := triggerKeys[t]
	return k, ok
}
