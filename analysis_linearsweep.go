package disnes

// analyzeLinearSweep is Pass 6: it walks the target bank byte by byte from
// its first address, resolving each still-Unknown address where a
// statement starts to Code (FetchOp succeeds) or NotCode (the instruction
// is truncated), and emitting one Statement per instruction or raw byte.
// The operand bytes of an instruction decoded this way keep whatever
// classification they had. A label is placed at
// the start of the bank and at every boundary where the run of Code
// statements and the run of data bytes meet, or immediately after a
// terminal flow instruction (spec §4.3 Pass 6).
func analyzeLinearSweep(analysis *Analysis, labels *Labels, input Input) []Statement {
	memory := input.Memory()
	bankRange := input.TargetBank().AddrRange()

	stmts := make([]Statement, 0, bankRange.Len())
	addr := bankRange.Min()
	var prev *Statement

	for {
		stmt := fetchStatement(analysis, memory, addr)

		if prev == nil || needsLabel(*prev, stmt) {
			labels.Set(addr, Label{})
		}
		stmts = append(stmts, stmt)

		next, ok := addr.CheckedAddUnsigned(stmt.Len())
		if !ok || !bankRange.ContainsAddr(next) {
			break
		}

		addr = next
		s := stmt
		prev = &s
	}

	return stmts
}

func fetchStatement(analysis *Analysis, memory *Memory, addr Address) Statement {
	switch analysis[addr] {
	case Unknown:
		op, _, err := memory.FetchOp(addr)
		if err == nil {
			analysis.SetCode(addr)
			return Statement{Kind: StmtOp, Op: op}
		}
		if ie, ok := err.(*IncompleteOpError); ok {
			analysis.SetNotCode(addr)
			return Statement{Kind: StmtByte, Byte: ie.Prefix[0]}
		}
		panic("disnes: linear sweep: target bank address is unmapped")
	case Code:
		op, _, err := memory.FetchOp(addr)
		if err == nil {
			return Statement{Kind: StmtOp, Op: op}
		}
		if ie, ok := err.(*IncompleteOpError); ok {
			return Statement{Kind: StmtIncompleteOp, Incomplete: ie.Prefix}
		}
		panic("disnes: linear sweep: Code address is unmapped")
	case NotCode:
		b, _, ok := memory.GetByte(addr)
		if !ok {
			panic("disnes: linear sweep: NotCode address is unmapped")
		}
		return Statement{Kind: StmtByte, Byte: b}
	default:
		panic("disnes: linear sweep: invalid analysis kind")
	}
}

func needsLabel(prev, cur Statement) bool {
	if prev.IsCode() != cur.IsCode() {
		return true
	}
	return prev.IsTerminalFlow()
}
