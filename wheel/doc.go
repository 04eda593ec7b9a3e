// Package wheel is the animation core of the picker: it lays enabled
// entries out as angular segments proportional to weight, selects a
// winner with a single weighted draw, and steers a spin-up / cruise /
// ease-out rotation so the wheel settles exactly inside the winner's
// arc.
//
// The package performs no I/O. Time is passed into every method and
// randomness is injected, so the whole lifecycle can be driven
// deterministically from tests. Notifications leave through an
// events.Queue; rendering reads the wheel but never mutates it.
package wheel
