package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	root := t.TempDir()
	assert.Empty(t, Snapshot(t, root))

	WriteFile(t, root, filepath.Join("guides", "deployment.mdx"), "body")
	WriteFile(t, root, "index.mdx", "home")

	assert.Equal(t, []string{"guides/", "guides/deployment.mdx=body", "index.mdx=home"}, Snapshot(t, root))
	assert.Equal(t, "home", ReadFile(t, filepath.Join(root, "index.mdx")))
}
