package ports

// WorkspaceInitializer scaffolds a docsite workspace on disk.
type WorkspaceInitializer interface {
	Init(root string, force bool) error
}
