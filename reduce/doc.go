/*Package reduce assembles per-site scalar and vector quantities from a
built nlist.PairList or nbody.Enumerator under a symmetric or
antisymmetric reduction, splitting the iteration range across a
configurable number of worker goroutines with private output buffers.

The worker cap is the process-wide knob nlist.SetMaxThreads/MaxThreads;
sequential mode (nlist.MaxThreads() == 1) is the byte-identical reference
path, and parallel mode differs only in floating-point summation order.
*/
package reduce
