// Package harness runs conformance scenarios against the task core.
//
// A scenario is a YAML file naming a cast of identities, a flow of
// operations with expected outcomes, and assertions over the final
// record state. Every scenario runs with a deterministic clock and named
// identities, so the produced trace is byte-stable and can be compared
// against golden files.
package harness
