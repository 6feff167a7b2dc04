package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Completed successfully
	SymbolFail     = "✗" // Failed
	SymbolPending  = "○" // Not yet started
	SymbolProgress = "◐" // In progress
	SymbolActive   = "●" // Effect running
	SymbolPaused   = "⊘" // Effect paused
)
