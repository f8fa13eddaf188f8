package genhooks

// BuiltinHooks returns the hook declarations baked into the tool.
// Names must be unique; type expressions refer to identifiers in the
// anki package.
func BuiltinHooks() []Hook {
	return []Hook{
		{Name: "leech", CbArgs: "card: *Card", LegacyHook: "leech"},
		{Name: "odue_invalid"},
		{Name: "mod_schema", CbArgs: "proceed: bool", ReturnType: "bool", LegacyHook: "modSchema"},
		{Name: "sync_stage", CbArgs: "stage: string", LegacyHook: "sync"},
	}
}
