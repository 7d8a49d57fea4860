// Package store holds the application state shared by the search and profile
// views and the operations that change it.
//
// # State
//
// [State] has two slices. [SearchState] holds the last query, its results,
// and loading/error status. [ProfileState] holds the selected user, their top
// repositories, and their profile README. Views read state through
// [Store.Snapshot] or by subscribing with [Store.Subscribe]; they never write
// fields directly.
//
// # Operations
//
// Views call four operations:
//
//   - [Store.SearchUsers]: validate, search, store results or error
//   - [Store.LoadUserProfile]: fetch user, repositories, and README
//     concurrently, then commit all three or none
//   - [Store.ClearSearchResults], [Store.ClearUserProfile]: reset a slice
//
// Each operation changes state only through a fixed set of mutations. Every
// mutation is atomic and is followed by a synchronous notification of all
// subscribers with the new state. Errors never escape an operation: they are
// stored as a user-facing message in the slice's Error field.
//
// # Ordering
//
// Loading is set before the network call and cleared only after the outcome
// has been committed, so a subscriber never sees Loading == false while the
// request it triggered is in flight.
//
// Overlapping operations on the same slice are not coordinated: whichever
// finishes last overwrites the slice.
package store
