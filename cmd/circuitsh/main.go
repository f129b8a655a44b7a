// Command circuitsh is a tiny composition-root binary: it builds the
// belnap half-adder and 4-bit ripple-adder circuits, drives the half adder
// through its four input combinations and the ripple adder through one
// addition (5+3) via package evaluator, and prints each cycle's outputs to
// stdout. It has no file I/O or wire protocol — it exists only
// to demonstrate the public API end-to-end.
package main

import (
	"fmt"
	"os"

	"github.com/wireforge/hypercircuit/belnap"
	"github.com/wireforge/hypercircuit/construct"
	"github.com/wireforge/hypercircuit/evaluator"
	"github.com/wireforge/hypercircuit/hbuilder"
	"github.com/wireforge/hypercircuit/hgraph"
	"github.com/wireforge/hypercircuit/signal"
	"github.com/wireforge/hypercircuit/signature"
)

func main() {
	sig, err := belnap.Signature()
	if err != nil {
		fatal(err)
	}

	fmt.Println("== half-adder ==")
	runHalfAdder(sig)

	fmt.Println()
	fmt.Println("== 4-bit ripple adder ==")
	runRippleAdder(sig)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "circuitsh:", err)
	os.Exit(1)
}

func buildHalfAdder(sig *signature.Signature[belnap.Value]) (*hgraph.InterfacedHypergraph[belnap.Value], error) {
	b := hbuilder.New[belnap.Value]()
	a, err := b.UseWire(1)
	if err != nil {
		return nil, err
	}
	bb, err := b.UseWire(1)
	if err != nil {
		return nil, err
	}

	xor, _ := sig.Lookup("XOR")
	sum, err := b.UseEdge(hgraph.PrimitiveLabel[belnap.Value](xor), []hgraph.VertexID{a, bb})
	if err != nil {
		return nil, err
	}
	and, _ := sig.Lookup("AND")
	carry, err := b.UseEdge(hgraph.PrimitiveLabel[belnap.Value](and), []hgraph.VertexID{a, bb})
	if err != nil {
		return nil, err
	}
	return b.MakeSubcircuit([]hgraph.VertexID{a, bb}, []hgraph.VertexID{sum[0], carry[0]}, "half-adder")
}

func runHalfAdder(sig *signature.Signature[belnap.Value]) {
	top, err := buildHalfAdder(sig)
	if err != nil {
		fatal(err)
	}
	ev, err := evaluator.New(sig, top)
	if err != nil {
		fatal(err)
	}

	for _, pair := range [][2]belnap.Value{
		{belnap.FALSE, belnap.FALSE},
		{belnap.FALSE, belnap.TRUE},
		{belnap.TRUE, belnap.FALSE},
		{belnap.TRUE, belnap.TRUE},
	} {
		outs, err := ev.PerformCycle([]signal.CycleInput[belnap.Value]{
			signal.DefiniteInput[belnap.Value](signal.Of(pair[0])),
			signal.DefiniteInput[belnap.Value](signal.Of(pair[1])),
		})
		if err != nil {
			fatal(err)
		}
		sum, _ := outs[0].Base().AsDefinite()
		carry, _ := outs[1].Base().AsDefinite()
		fmt.Printf("a=%s b=%s -> sum=%s carry=%s\n", pair[0], pair[1], sum, carry)
	}
}

// buildFullAdderCell builds f: (cin, ab) -> (carry_out, sum), ab packing
// (a, b) LSB-first, for use as construct.RippleMap's step operation.
func buildFullAdderCell(sig *signature.Signature[belnap.Value]) (*hgraph.InterfacedHypergraph[belnap.Value], error) {
	b := hbuilder.New[belnap.Value]()
	cin, err := b.UseWire(1)
	if err != nil {
		return nil, err
	}
	ab, err := b.UseWire(2)
	if err != nil {
		return nil, err
	}
	split, err := b.UseEdge(hgraph.BundlerLabel[belnap.Value]([]int{2}, []int{1, 1}), []hgraph.VertexID{ab})
	if err != nil {
		return nil, err
	}
	a, bb := split[0], split[1]

	xor, _ := sig.Lookup("XOR")
	and, _ := sig.Lookup("AND")
	or, _ := sig.Lookup("OR")

	aXorB, err := b.UseEdge(hgraph.PrimitiveLabel[belnap.Value](xor), []hgraph.VertexID{a, bb})
	if err != nil {
		return nil, err
	}
	sum, err := b.UseEdge(hgraph.PrimitiveLabel[belnap.Value](xor), []hgraph.VertexID{aXorB[0], cin})
	if err != nil {
		return nil, err
	}
	aAndB, err := b.UseEdge(hgraph.PrimitiveLabel[belnap.Value](and), []hgraph.VertexID{a, bb})
	if err != nil {
		return nil, err
	}
	cinAndAxorb, err := b.UseEdge(hgraph.PrimitiveLabel[belnap.Value](and), []hgraph.VertexID{cin, aXorB[0]})
	if err != nil {
		return nil, err
	}
	carryOut, err := b.UseEdge(hgraph.PrimitiveLabel[belnap.Value](or), []hgraph.VertexID{aAndB[0], cinAndAxorb[0]})
	if err != nil {
		return nil, err
	}
	return b.MakeSubcircuit([]hgraph.VertexID{cin, ab}, []hgraph.VertexID{carryOut[0], sum[0]}, "full-adder-cell")
}

func runRippleAdder(sig *signature.Signature[belnap.Value]) {
	cell, err := buildFullAdderCell(sig)
	if err != nil {
		fatal(err)
	}
	b := hbuilder.New[belnap.Value]()
	top, err := construct.RippleMap(b, cell, 4, construct.TopToBottom, "ripple-adder-4")
	if err != nil {
		fatal(err)
	}
	ev, err := evaluator.New(sig, top)
	if err != nil {
		fatal(err)
	}

	a := []belnap.Value{belnap.TRUE, belnap.FALSE, belnap.TRUE, belnap.FALSE}  // 5, LSB-first
	bv := []belnap.Value{belnap.TRUE, belnap.TRUE, belnap.FALSE, belnap.FALSE} // 3, LSB-first

	inputs := make([]signal.CycleInput[belnap.Value], 5)
	inputs[0] = signal.DefiniteInput[belnap.Value](signal.Of(belnap.FALSE))
	for i := 0; i < 4; i++ {
		inputs[1+i] = signal.DefiniteInput[belnap.Value](signal.Bits(a[i], bv[i]))
	}

	outs, err := ev.PerformCycle(inputs)
	if err != nil {
		fatal(err)
	}
	carryOut, _ := outs[0].Base().AsDefinite()
	fmt.Printf("5 + 3: carry_out=%s sum=", carryOut)
	for i := 3; i >= 0; i-- {
		s, _ := outs[1+i].Base().AsDefinite()
		bit, _ := s.Bit(0)
		fmt.Print(bit)
	}
	fmt.Println()
}
