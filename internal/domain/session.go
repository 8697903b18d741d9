package domain

// SessionContext identifies one full invocation of the test runner.
type SessionContext struct {
	SessionID  string `json:"session_id"`  // e.g. "2026-08-28--003"
	ResultsDir string `json:"results_dir"` // session-level results directory
}
