/*Package nplot draws a pair-distance histogram from a built
nlist.PairList using gonum.org/v1/plot, in the same
"compute-a-list, hand-it-to-plot" shape this codebase's Ramachandran
plotter uses for dihedral angles.
*/
package nplot
