// Package sim implements the Stack Tower simulation: block placement and
// trimming, scoring and speed progression, power-up timers, camera framing,
// particles and the run state machine.
//
// The package is pure: it never draws, sleeps or touches the terminal.
// A Session is advanced by Update with a normalized frame delta and by Tap
// for the single drop input; renderers read immutable Frame values from
// Snapshot. Privileged effects (slow motion, hint, revive) go through a
// two-phase gate: Request returns a Ticket, and the effect only applies when
// the ticket is resolved as Approved.
package sim
