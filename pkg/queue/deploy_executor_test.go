package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeployAffectsPage(t *testing.T) {
	t.Run("no file detail affects everything", func(t *testing.T) {
		assert.True(t, deployAffectsPage(nil, "https://example.com/pricing"))
	})

	t.Run("backend-only deploy affects nothing", func(t *testing.T) {
		files := []string{"internal/api/server.go", "migrations/0042_add_index.sql"}
		assert.False(t, deployAffectsPage(files, "https://example.com/pricing"))
	})

	t.Run("page-named frontend file targets the page", func(t *testing.T) {
		files := []string{"src/pages/pricing.tsx"}
		assert.True(t, deployAffectsPage(files, "https://example.com/pricing"))
	})

	t.Run("shared frontend file affects all pages", func(t *testing.T) {
		files := []string{"src/components/Navbar.tsx"}
		assert.True(t, deployAffectsPage(files, "https://example.com/pricing"))
		assert.True(t, deployAffectsPage(files, "https://example.com/about"))
	})
}

func TestFileTargetsPage(t *testing.T) {
	assert.True(t, fileTargetsPage("src/pages/pricing.tsx", "https://example.com/pricing"))
	assert.True(t, fileTargetsPage("app/pricing/page.tsx", "https://example.com/pricing"))
	assert.False(t, fileTargetsPage("src/pages/about.tsx", "https://example.com/pricing"))
	assert.False(t, fileTargetsPage("src/pages/pricing.tsx", "https://example.com"))
	assert.False(t, fileTargetsPage("src/pages/pricing.tsx", "not-a-url"))
}
