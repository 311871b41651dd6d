// Package bst animates an integer binary search tree.
//
// A Tree is built synchronously with New or Tree.Add. Animated operations
// (Insert, Search, Delete, Traverse) work on a clone of the tree and return
// an *OpResult whose Tree is the post-operation state; the caller's tree is
// never touched, so it can be swapped for the result once the run completes.
//
// Steps:
//
//	compare  the target was compared with Node
//	place    the target became Side ("root", "left" or "right") child of Node
//	replace  a two-child Node took its in-order successor's value
//	remove   Node was unlinked
//	visit    traversal reached Node; Sequence is the order so far
//	found / not-found / done
//
// Duplicates are ignored: inserting an existing value ends with found.
// Deleting a node with two children copies the minimum of its right subtree
// into it and deletes that successor, so the ordering invariant holds after
// every mutation.
package bst
