package ports

// WorkspaceLocator finds the docsite workspace root from a starting directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
