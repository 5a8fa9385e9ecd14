package disnes

// Analyze runs the seven-pass analysis pipeline against input under config,
// producing the disassembled Assembly for input's target bank. Each pass
// only ever moves an address from Unknown towards its terminal
// classification (Code or NotCode); later passes never revisit a decision
// an earlier one already made (spec §3, §4.3).
func Analyze(input Input, config AnalysisConfig, logger Logger) (Assembly, error) {
	analysis := &Analysis{}
	labels := &Labels{}

	analyzeCdl(analysis, labels, input)
	analyzePermission(analysis, input, logger)
	analyzeInterrupt(analysis, labels, input, config, logger)
	analyzeOp(analysis, input, config)
	analyzeFlow(analysis, input)
	statements := analyzeLinearSweep(analysis, labels, input)
	analyzeLabel(analysis, labels, input)

	return NewAssemblyBuilder().
		BankAddrRange(input.TargetBank().AddrRange()).
		BankName(input.TargetBankName()).
		Statements(statements).
		Labels(labels).
		Build()
}
