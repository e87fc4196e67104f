// Package terminal hosts the game in a tcell screen.
//
// A background goroutine pumps screen events into a bounded queue, the game
// loop drains it between ticks. Terminals report presses only, so releases
// are synthesized once a key stops repeating.
package terminal
