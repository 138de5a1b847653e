// Package subgraph provides the induced-subgraph View the search works on:
// a mutable vertex-membership overlay over an immutable core.Graph.
//
// Edges of a View are the base edges whose endpoints are both active.
// Copying a View copies only its membership bits; the base graph is shared
// and never modified. Every search branch owns its own View, so sibling
// branches never alias.
//
// Two iterators walk a View:
//
//   - VertexIter visits every active vertex once, ascending, by draining a
//     private snapshot of the membership bits. Insert and Remove edit that
//     snapshot mid-walk: removing a not-yet-visited vertex skips it, and
//     inserting one behind the cursor rewinds the cursor so it is visited.
//   - NeighborIter walks v's run in the base neighbor array and skips
//     inactive neighbors lazily. It costs O(deg(v)) in the base graph even
//     when most neighbors are inactive.
//
// The connectivity helpers (ComponentCount, IsConnected, Components,
// BFSOrder) are diagnostics; the search does not need them.
package subgraph
