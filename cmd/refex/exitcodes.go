package main

// Exit codes used by all refex commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (not in a workspace, invalid config)
	ExitDataError   = 3 // Data error (no converted papers, unreadable input)
	ExitLLMError    = 4 // LLM provider unavailable or request failed
)
