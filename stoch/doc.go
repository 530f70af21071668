// Package stoch provides an engine for exact stochastic simulation of
// coupled discrete-event processes, in the family of Gillespie's direct
// method and the Gibson-Bruck next-reaction method.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: immutable scheduled events and the Gibson-Bruck retiming rules
//   - system.go: process ownership, the dependency graph, and event application
//   - algo.go: the Advance() step shared by every selection algorithm
//
// # Architecture
//
// The stoch package defines the engine and its contracts; concrete process
// kinds live in sub-packages:
//   - stoch/agent/: populations of discrete species and the mass-action
//     processes that transform them (birth, death, transition, capped)
//   - stoch/decay/: independent first-order decay with analytic expectations
//
// # Key Interfaces
//
// The extension points are small interfaces:
//   - Process: a stable index plus an instantaneous non-negative Rate
//   - System: the engine-facing view of a simulated system
//   - StateUpdater: client hook that applies event semantics (population
//     changes, rate refreshes) after the system records an event
//   - Algorithm: one of ReferenceAlgo, DirectAlgo, NextReactionAlgo
//
// A single *Random instance per simulation is shared by the engine and any
// client-side samplers; runs are reproducible for a fixed seed.
package stoch
