package disnes

// analyzeInterrupt is Pass 3: for each enabled interrupt vector (NMI at
// $FFFA, RESET at $FFFC, IRQ/BRK at $FFFE), the vector's two bytes are
// forced to NotCode as a unit — only if neither byte is already Code — the
// vector address is labeled (non-entrypoint) when it falls in the target
// bank, and the vector's resolved destination is marked Code and labeled as
// an entrypoint when that destination lies in the target bank (spec §4.3
// Pass 3).
func analyzeInterrupt(analysis *Analysis, labels *Labels, input Input, config AnalysisConfig, logger Logger) {
	if config.UseNMI {
		analyzeInterruptVector(analysis, labels, input, logger, 0xFFFA, "NMI")
	}
	if config.UseReset {
		analyzeInterruptVector(analysis, labels, input, logger, 0xFFFC, "RESET")
	}
	if config.UseIRQ {
		analyzeInterruptVector(analysis, labels, input, logger, 0xFFFE, "IRQ")
	}
}

func analyzeInterruptVector(analysis *Analysis, labels *Labels, input Input, logger Logger, ptr Address, name string) {
	vecRange := NewAddressRangeStartLen(ptr, 2)

	eligible := true
	for _, a := range vecRange.Addresses() {
		if analysis[a] == Code {
			eligible = false
			break
		}
	}
	if eligible {
		for _, a := range vecRange.Addresses() {
			analysis.SetNotCode(a)
		}
	}

	targetBank := input.TargetBank()
	if targetBank.ContainsAddr(ptr) {
		labels.Set(ptr, Label{})
	}

	dst, dstBankID, ok := input.Memory().FetchAddr(ptr)
	if !ok {
		return
	}

	if analysis[dst] == NotCode {
		logger.Warnf("disnes: %s vector target %s is already NotCode", name, dst)
		return
	}
	analysis.SetCode(dst)

	if dstBankID == input.TargetBankID() {
		labels.Set(dst, Label{Entrypoint: true})
	}
}
