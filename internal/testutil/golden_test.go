package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRepoRootFindsModule(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod in %s: %v", root, err)
	}
}
