package disnes

// analyzeCdl is Pass 1: it seeds Analysis directly from the CDL, and seeds
// Labels for every address the CDL marks as a jump target, an entrypoint,
// or the start of an indirect-data or PCM-data run that falls within the
// target bank (spec §4.3 Pass 1).
func analyzeCdl(analysis *Analysis, labels *Labels, input Input) {
	cdl := input.Cdl()
	targetBank := input.TargetBank()

	ForEachAddress(func(addr Address) {
		if cdl.IsOpcode(addr) {
			analysis.SetCode(addr)
		} else if cdl.IsData(addr) {
			analysis.SetNotCode(addr)
		}

		if !targetBank.ContainsAddr(addr) {
			return
		}

		needsLabel := cdl.IsJumpTarget(addr) || cdl.IsEntrypoint(addr) ||
			cdl.IsIndirectDataStart(addr) || cdl.IsPCMDataStart(addr)
		if needsLabel {
			labels.Set(addr, Label{Entrypoint: cdl.IsEntrypoint(addr)})
		}
	})
}
