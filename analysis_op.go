package disnes

// analyzeOp is Pass 4: it rejects individual instructions that can never
// legitimately execute, then blanks out the non-first bytes of every
// instruction that survived as Code (spec §4.3 Pass 4).
func analyzeOp(analysis *Analysis, input Input, config AnalysisConfig) {
	analyzeOpValidity(analysis, input, config)
	analyzeOpOperandBytes(analysis, input)
}

// analyzeOpValidity marks an Unknown address NotCode if the instruction
// fetched from it is forbidden by config, has a wrapping zero-page pointer,
// has no successor reachable within its own bank, or reads/writes only
// addresses the permission map marks unreadable/unwritable everywhere.
func analyzeOpValidity(analysis *Analysis, input Input, config AnalysisConfig) {
	memory := input.Memory()

	ForEachAddress(func(addr Address) {
		if analysis[addr] != Unknown {
			return
		}

		op, bankID, err := memory.FetchOp(addr)
		if err != nil {
			if _, ok := err.(*IncompleteOpError); ok {
				analysis.SetNotCode(addr)
			}
			return
		}

		if opIsInvalid(input, config, addr, op, bankID) {
			analysis.SetNotCode(addr)
		}
	})
}

func opIsInvalid(input Input, config AnalysisConfig, addr Address, op Op, bankID int) bool {
	if opIsForbidden(config, op) {
		return true
	}
	if operandIsWrappingPtr(op) {
		return true
	}
	if !opHasValidSucc(input, addr, op, bankID) {
		return true
	}
	if op.IsRead() && allUnreadable(input, opReadCandidates(op)) {
		return true
	}
	if op.IsWrite() && allUnwritable(input, opWriteCandidates(op)) {
		return true
	}
	return false
}

func opIsForbidden(config AnalysisConfig, op Op) bool {
	if !op.IsOfficial() {
		return true
	}
	switch op.Opcode.Mnemonic {
	case "BRK":
		return !config.AllowBRK
	case "CLV":
		return !config.AllowCLV
	case "SED":
		return !config.AllowSED
	default:
		return false
	}
}

// operandIsWrappingPtr reports whether op's operand is a pointer whose
// dereference would wrap within a page on real hardware: JMP (ind) with a
// low byte of $FF, or an (ind,X)/(ind),Y zero-page pointer of $FF.
func operandIsWrappingPtr(op Op) bool {
	switch op.Opcode.Mode {
	case Indirect:
		return op.Operand.Absolute()&0xFF == 0xFF
	case IndirectX, IndirectY:
		return op.Operand.Byte == 0xFF
	default:
		return false
	}
}

// opHasValidSucc reports whether op's determinable successor, if any, lands
// within op's own bank. Branches and fall-through instructions whose
// successor would leave the bank (or fall off the end of the address space)
// cannot legitimately execute there.
func opHasValidSucc(input Input, addr Address, op Op, bankID int) bool {
	memory := input.Memory()
	destInBank := func(dst Address) bool {
		dstBankID, ok := memory.FindBankID(dst)
		return ok && dstBankID == bankID
	}

	switch succ := op.Succ(); succ.Kind {
	case SuccNormal:
		dst, ok := addr.CheckedAddUnsigned(succ.Offset)
		return ok && destInBank(dst)
	case SuccBranch:
		dst, ok := addr.CheckedAddSigned(int(succ.Rel) + 2)
		return ok && destInBank(dst)
	default:
		return true
	}
}

func allUnreadable(input Input, candidates []Address) bool {
	if len(candidates) == 0 {
		return false
	}
	for _, a := range candidates {
		if input.Permissions().Get(a).Readable {
			return false
		}
	}
	return true
}

func allUnwritable(input Input, candidates []Address) bool {
	if len(candidates) == 0 {
		return false
	}
	for _, a := range candidates {
		if input.Permissions().Get(a).Writable {
			return false
		}
	}
	return true
}

// opReadCandidates returns the addresses op's effective read address could
// resolve to. For indexed and indirect modes whose index or pointer table
// isn't known statically, that's every address the index byte could select.
func opReadCandidates(op Op) []Address {
	switch op.Opcode.Mode {
	case ZeroPage:
		return []Address{op.Operand.ZeroPage().Address()}
	case ZeroPageX, ZeroPageY, IndirectX:
		return zeroPageAddresses()
	case Absolute:
		return []Address{op.Operand.Absolute()}
	case AbsoluteX, AbsoluteY:
		return wrappingWindow(op.Operand.Absolute(), 256)
	case Indirect:
		ptr := op.Operand.Absolute()
		return []Address{ptr, ptr.WrappingAddUnsigned(1)}
	case IndirectY:
		ptr := op.Operand.ZeroPage().Address()
		return []Address{ptr, ptr.WrappingAddUnsigned(1)}
	default:
		return nil
	}
}

// opWriteCandidates is like opReadCandidates, except indirect pointer modes
// contribute no candidates: the pointer bytes themselves are never the
// write target, so there's nothing to check readability/writability of
// without resolving the pointer, which this pass doesn't attempt.
func opWriteCandidates(op Op) []Address {
	switch op.Opcode.Mode {
	case ZeroPage:
		return []Address{op.Operand.ZeroPage().Address()}
	case ZeroPageX, ZeroPageY:
		return zeroPageAddresses()
	case Absolute:
		return []Address{op.Operand.Absolute()}
	case AbsoluteX, AbsoluteY:
		return wrappingWindow(op.Operand.Absolute(), 256)
	default:
		return nil
	}
}

func zeroPageAddresses() []Address {
	return NewAddressRangeStartLen(0, 256).Addresses()
}

func wrappingWindow(base Address, n int) []Address {
	out := make([]Address, n)
	for i := 0; i < n; i++ {
		out[i] = base.WrappingAddUnsigned(i)
	}
	return out
}

// analyzeOpOperandBytes blanks out the non-first bytes of every Code
// instruction, as NotCode unless some earlier pass already claimed a byte
// as Code. This runs over every Code address regardless of which pass set
// it, since Passes 1-3 can mark Code directly without going through this
// validity check.
func analyzeOpOperandBytes(analysis *Analysis, input Input) {
	memory := input.Memory()

	ForEachAddress(func(addr Address) {
		if analysis[addr] != Code {
			return
		}

		op, _, err := memory.FetchOp(addr)
		if err == nil {
			blankOperandBytes(analysis, addr, op.Len())
			return
		}
		if ie, ok := err.(*IncompleteOpError); ok {
			blankOperandBytes(analysis, addr, len(ie.Prefix))
		}
	})
}

func blankOperandBytes(analysis *Analysis, addr Address, length int) {
	for i := 1; i < length; i++ {
		a := addr.WrappingAddUnsigned(i)
		if analysis[a] != Code {
			analysis[a] = NotCode
		}
	}
}
