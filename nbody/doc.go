/*Package nbody enumerates, for each site of a built nlist.PairList, the
canonical n-tuples of its neighbours that form an n-simplex, and reduces
each tuple to the (n(n-1)/2)-length vector of its edge lengths.

A tuple rooted at site i is a strictly increasing sequence of neighbour
positions j1 < j2 < ... < j_{n-1} within i's neighbour slice, restricted
to neighbours whose site index is greater than i. This canonicalisation
visits every unordered (n-1)-subset of i's neighbours, together with i
itself, exactly once across the whole enumeration.
*/
package nbody
