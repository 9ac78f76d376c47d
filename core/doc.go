// Package core contains the dashboard's state orchestration and contracts.
//
// Allowed here:
// - the field registry and screen schema
// - the modal UI state machine and its transitions
// - preview building, argument building, command grammar, key registry
// - the bubbletea model routing input to the above
//
// Not allowed here:
// - raw terminal writes (widgets owns the clipping primitives)
// - process spawning or persistence implementations (internal/ owns those)
package core
