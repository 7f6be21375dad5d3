// Package match3 implements the ArmorCrush board simulation: a fixed-size
// grid of typed tokens, the swap/detect/explode/collapse/refill turn, and the
// selection controller that drives it from player picks.
//
// The package is UI-agnostic and deterministic for a given random source.
// Presentation code observes the simulation through Emissions delivered to
// subscribed Observers and never mutates board state directly.
package match3
