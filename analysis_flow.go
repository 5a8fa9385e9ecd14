package disnes

// vertexSink is the sole extra vertex in the flow graph: "control goes
// somewhere this graph doesn't track." RTI, RTS, KIL, a BRK or JMP (ind)
// whose destination can't be resolved, and any destination lying in a
// different fixed bank all route to it. Its self-loop keeps it always live.
const vertexSink = 0x10000

// flowGraph is the control-flow graph Pass 5 builds over the 65536
// addresses plus vertexSink: outDeg tracks each vertex's remaining live
// out-edges, pred is its transpose adjacency (who points at this vertex),
// used to cascade a vertex's death to its predecessors in O(E) total.
type flowGraph struct {
	outDeg [0x10001]int
	pred   [0x10001][]int
}

func (g *flowGraph) addEdge(src, dst int) {
	g.pred[dst] = append(g.pred[dst], src)
	g.outDeg[src]++
}

// analyzeFlow is Pass 5. 5a propagates NotCode backwards: an instruction
// whose every determinable successor is dead (NotCode, or off the edge of
// the graph) cannot itself execute. 5b then propagates Code forwards along
// chains of single-successor instructions starting from every byte already
// known to be Code (spec §4.3 Pass 5).
func analyzeFlow(analysis *Analysis, input Input) {
	analyzeFlowNotCode(analysis, input)
	analyzeFlowCode(analysis, input)
}

func analyzeFlowNotCode(analysis *Analysis, input Input) {
	memory := input.Memory()
	g := &flowGraph{}

	for v := 0; v < 0x10000; v++ {
		addr := Address(v)
		switch analysis[addr] {
		case Code:
			// A Code vertex is assumed reachable regardless of what follows
			// it; the self-loop keeps its out-degree permanently nonzero.
			g.addEdge(v, v)
		case Unknown:
			op, bankID, err := memory.FetchOp(addr)
			if err != nil {
				g.addEdge(v, v)
				continue
			}
			resolved := memory.ResolveOpSucc(addr, op.Succ())
			addFlowEdges(g, memory, v, bankID, resolved)
		case NotCode:
			// No out-edges: a NotCode vertex contributes nothing to trace.
		}
	}
	g.addEdge(vertexSink, vertexSink)

	queue := make([]int, 0, 64)
	for v := 0; v <= vertexSink; v++ {
		if g.outDeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	for len(queue) > 0 {
		v := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if v != vertexSink {
			analysis.SetNotCode(Address(v))
		}

		for _, p := range g.pred[v] {
			g.outDeg[p]--
			if g.outDeg[p] == 0 {
				queue = append(queue, p)
			}
		}
	}
}

// flowDestVertex maps a resolved destination address to its vertex: itself,
// if it shares addr's bank or lands in a non-fixed (i.e. bank-switched,
// potentially-this-bank) bank, or unmapped; vertexSink if it lies in a
// different fixed bank, so that edge counts as live whatever that
// address's own classification is.
func flowDestVertex(memory *Memory, bankID int, dst Address) int {
	dstBankID, ok := memory.FindBankID(dst)
	if !ok || dstBankID == bankID || !memory.Banks()[dstBankID].IsFixed() {
		return int(dst)
	}
	return vertexSink
}

func addFlowEdges(g *flowGraph, memory *Memory, v int, bankID int, resolved OpSuccResolved) {
	switch resolved.Kind {
	case ResolvedNormal, ResolvedJsr, ResolvedJmpAbs:
		g.addEdge(v, flowDestVertex(memory, bankID, resolved.Addr))
	case ResolvedBrk, ResolvedJmpInd:
		if resolved.HasDst {
			g.addEdge(v, flowDestVertex(memory, bankID, resolved.Dst))
		} else {
			g.addEdge(v, vertexSink)
		}
	case ResolvedBranch:
		g.addEdge(v, flowDestVertex(memory, bankID, resolved.Taken))
		g.addEdge(v, flowDestVertex(memory, bankID, resolved.NotTaken))
	case ResolvedKil, ResolvedRti, ResolvedRts:
		g.addEdge(v, vertexSink)
	}
}

// analyzeFlowCode walks forward from every Code address along chains of
// instructions that have exactly one concrete, non-NotCode successor,
// marking each one Code in turn. It stops at a genuine branch (two distinct
// possible destinations), at an already-visited address (cycle), or at any
// instruction whose successor can't be pinned down.
func analyzeFlowCode(analysis *Analysis, input Input) {
	memory := input.Memory()
	var visited [0x10000]bool

	for v := 0; v < 0x10000; v++ {
		start := Address(v)
		if analysis[start] != Code {
			continue
		}

		cur := start
		for !visited[cur] {
			visited[cur] = true

			op, bankID, err := memory.FetchOp(cur)
			if err != nil {
				break
			}
			resolved := memory.ResolveOpSucc(cur, op.Succ())
			next, ok := uniqueConcreteSucc(memory, bankID, resolved)
			if !ok || analysis[next] == NotCode {
				break
			}

			analysis.SetCode(next)
			cur = next
		}
	}
}

// uniqueConcreteSucc returns resolved's single concrete destination, if it
// has exactly one: a destination not ruled "somewhere in another fixed
// bank", and, for branches, one where the taken and not-taken targets
// happen to coincide.
func uniqueConcreteSucc(memory *Memory, bankID int, resolved OpSuccResolved) (Address, bool) {
	concrete := func(dst Address) (Address, bool) {
		dstBankID, ok := memory.FindBankID(dst)
		if !ok || dstBankID == bankID || !memory.Banks()[dstBankID].IsFixed() {
			return dst, true
		}
		return 0, false
	}

	switch resolved.Kind {
	case ResolvedNormal, ResolvedJsr, ResolvedJmpAbs:
		return concrete(resolved.Addr)
	case ResolvedBrk, ResolvedJmpInd:
		if !resolved.HasDst {
			return 0, false
		}
		return concrete(resolved.Dst)
	case ResolvedBranch:
		taken, tok := concrete(resolved.Taken)
		notTaken, nok := concrete(resolved.NotTaken)
		if !tok || !nok || taken != notTaken {
			return 0, false
		}
		return taken, true
	default: // ResolvedKil, ResolvedRti, ResolvedRts
		return 0, false
	}
}
