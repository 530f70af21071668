// Package agent models stochastic systems over populations of discrete
// species ("agents"). Processes transform agent populations by
// mass-action kinetics: the instantaneous rate of a process is its rate
// constant times the count of each reactant.
//
// The concrete process kinds are birth (A -> A + A'), death (A -> 0),
// transition (A -> B), and a capacity-capped wrapper that silences its
// base process once the population of a capped agent set reaches a
// fixed capacity.
package agent
