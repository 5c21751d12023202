/*
 * doc.go, part of nlist.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * nlist is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */

/*Package nlist builds cell-linked-list neighbour lists for particles in a
(possibly periodic, possibly triclinic) simulation cell, and assembles
pair and n-body site quantities from them.

A build goes: positions + cell + pbc + cutoff -> CellGeometry -> LinkedBins
-> PairList. The PairList is then consumed either directly (Pairs/Sites
iterators) or through the nbody subpackage for higher-order tuples, and
reduced to per-site outputs with the reduce subpackage, which parallelises
over an interlaced range split and sums private per-worker buffers.

nlist does not read trajectories, does not know about interatomic
potentials, and keeps no state beyond a single process-wide worker-count
knob (SetMaxThreads). Everything else is a pure function of its inputs.
*/
package nlist
