package disnes

// analyzePermission is Pass 2: every address the permission map marks
// unexecutable is forced to NotCode. If the CDL already claimed it as Code
// (Pass 1), that's a contradiction between the two inputs; it's logged and
// the Code classification wins rather than being overwritten (spec §4.3
// Pass 2, spec §7 "logged, analysis unaffected").
func analyzePermission(analysis *Analysis, input Input, logger Logger) {
	perms := input.Permissions()

	ForEachAddress(func(addr Address) {
		if perms.Get(addr).Executable {
			return
		}
		if analysis[addr] == Code {
			logger.Warnf("disnes: address %s is Code but not executable per permissions", addr)
			return
		}
		analysis[addr] = NotCode
	})
}
