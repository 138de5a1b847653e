// Package container provides the two ordered containers the search needs:
// a growable LIFO Stack and a FIFO Queue assembled from two stacks.
//
// Stack doubles as a general ordered sequence: it can be sorted, binary
// searched, scanned for a maximum and edited in place by position. Ordering
// operations take an explicit comparison function (negative, zero or
// positive, as cmp.Compare) so the containers hold any element type.
//
// Neither type is safe for concurrent use.
package container
