/*Package nstat computes summary statistics over a built nlist.PairList:
mean/variance of the per-site neighbour count and a pair-distance
histogram, using gonum.org/v1/gonum/stat and gonum.org/v1/gonum/floats.
*/
package nstat
