// Package nfa supports building nondeterministic finite automata over an alphabet of runes and
// combining them: word recognition, union, mirroring (language reversal), the shuffle product of
// two languages, and pruning to the states reachable from the initial ones. Automata are built
// incrementally with AddTransition and friends or produced by a transform, which never modifies
// its inputs.
package nfa
