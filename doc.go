/*
Package nandsim simulates digital logic circuits built from a single universal
gate (NAND) and a single stateful primitive (a latch).

Everything else, from inverters to adders, an ALU, addressable memory and a
small stored-program computer (see the hwlib and cpu packages), is composed
hierarchically from these two primitives.

Signals are tri-state (unknown, 0, 1). Within a tic, a Signal can only go from
unknown to a known value, so propagation is monotonic: settling a circuit
reaches the same fixed point regardless of the order in which inputs are
driven. Latches break feedback loops by serving the state committed at the end
of the previous tic while capturing the next one.

Circuits are arenas of signals and blocks referenced by integer handles. The
constant rails False and True are allocated first in every Circuit:

	c := nandsim.New()
	a, b := c.NewSignal(), c.NewSignal()
	out := c.Nand(a, b, nandsim.NC)
	_ = c.Drive(a, true)
	_ = c.Drive(b, true)
	fmt.Println(c.Get(out)) // 0
	_ = c.Commit()

*/
package nandsim
