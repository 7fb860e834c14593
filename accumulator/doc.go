/*
Package accumulator implements a merkle mountain range (MMR), an append-only
cryptographic accumulator. Elements can be added, proven, and verified, but
never removed. The whole commitment is the ordered list of root hashes, so
it stays small no matter how many elements have gone in.

Jargon:

	Perfect tree - a binary tree with 2**h leaves, every interior node
	having exactly 2 children.
	Root - a node with no parent. The accumulator is committed to by its
	current roots and nothing else.
	Witness - a leaf hash, a bottom-up run of sibling hashes, and the path
	bits saying which side each sibling folds in on. Enough to re-derive
	a root.

The forest is a row of perfect trees in strictly shrinking size order, and
the tree sizes are exactly the binary representation of the element count.
After 5 adds (0b101) there's a size 4 tree and a size 1 tree:

	p2
	|-------\
	p0      p1
	|---\   |---\
	e2  e1  e4  e3  e5

Adding works like incrementing a binary counter. The new element becomes a
size 1 tree, and while the smallest existing tree has the same size as the
new one, the two merge into a tree of twice the size and the carry keeps
going. A merge hashes the newer (carried) root on the left and the older
root on the right, which is why e2 sits left of e1 above. After the 6th add
(0b110) the forest is

	p2
	|-------\
	p0      p1      p3
	|---\   |---\   |---\
	e2  e1  e4  e3  e6  e5

All node storage lives in an arena owned by the accumulator, and every
relation between nodes is an index into that arena. A tracker maps digests
back to nodes so witness generation can start from any element ever added;
it also caches the last witness built for each element. Nothing is ever
freed piecemeal; Reset drops the whole forest at once.

An MMR is safe for concurrent use. Adds and witness generation take the
write lock (generation may refresh the witness cache), verification runs
under the read lock so any number of verifies proceed in parallel.
*/
package accumulator
