// Package category models the named stages of an almanac and the values
// tagged with them.
//
// A Value is an int64 magnitude tagged with exactly one Category. The tag is
// the only thing distinguishing values of different stages: two values are in
// the same category when their tags match, regardless of magnitude.
//
// The order of stages is not baked into the Category type. A Chain is an
// explicit ordered list of categories; StepBack and StepForward move a value
// to its neighbour in the chain they are given. DefaultChain holds the
// eight-stage sequence from Seed to Location.
package category
