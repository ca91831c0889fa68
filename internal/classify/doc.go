// Package classify turns raw simulator event names into control roles and
// base identifiers using a fixed most-specific-first precedence order.
//
// Key functions:
//   - Classify: maps one event name to (base identifier, control kind, role)
//
// Event names can match several superficial patterns (a ground button suffix
// also looks like a generic button suffix), so precedence is load-bearing:
// ground button > wheel > switch right > switch left > button down/up >
// standalone fallback.
package classify
