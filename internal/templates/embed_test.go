package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awoplatform/mdxgen/internal/profile"
	"github.com/awoplatform/mdxgen/internal/testutil"
)

func TestValidSets(t *testing.T) {
	assert.Equal(t, []string{"complete", "minimal"}, ValidSets())
	assert.True(t, IsValidSet("minimal"))
	assert.True(t, IsValidSet("complete"))
	assert.False(t, IsValidSet("unknown"))
	assert.False(t, IsValidSet(""))
}

func TestLoad_Categories(t *testing.T) {
	tests := []struct {
		set  string
		want []profile.Category
	}{
		{
			set:  "minimal",
			want: []profile.Category{"api", "guide", "resource", "sdk"},
		},
		{
			set: "complete",
			want: []profile.Category{
				"advanced-features", "api-reference", "architecture", "business",
				"compliance", "core-features", "data-models", "deployment",
				"development", "getting-started", "guides", "infrastructure",
				"integration", "quick-setup", "resources", "security", "testing",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.set, func(t *testing.T) {
			r, err := Load(tt.set)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Categories())
			assert.Equal(t, tt.set, r.Name())
		})
	}
}

func TestLoad_UnknownSet(t *testing.T) {
	_, err := Load("fancy")
	assert.ErrorContains(t, err, `unknown template set "fancy"`)
}

// The golden files hold the exact pages the documentation site expects for the
// titles "Mobile Money" and "Overview".
func TestRender_MatchesGolden(t *testing.T) {
	for _, set := range ValidSets() {
		r, err := Load(set)
		require.NoError(t, err)

		for _, c := range r.Categories() {
			for _, title := range []string{"Mobile Money", "Overview"} {
				name := string(c) + "." + strings.ToLower(strings.ReplaceAll(title, " ", "-")) + ".mdx"
				t.Run(set+"/"+name, func(t *testing.T) {
					want, err := os.ReadFile(filepath.Join("testdata", "golden", set, name))
					require.NoError(t, err)

					got, err := r.Render(c, title)
					require.NoError(t, err)
					assert.Equal(t, string(want), string(got))
				})
			}
		}
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	r, err := Load("complete")
	require.NoError(t, err)

	first, err := r.Render("api-reference", "Cross Border")
	require.NoError(t, err)
	second, err := r.Render("api-reference", "Cross Border")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRender_TitleVariants(t *testing.T) {
	r, err := Load("complete")
	require.NoError(t, err)

	api, err := r.Render("api-reference", "Cross Border")
	require.NoError(t, err)
	assert.Contains(t, string(api), `"https://api.awo-platform.com/v1/cross-border"`)

	core, err := r.Render("core-features", "Mobile Money")
	require.NoError(t, err)
	assert.Contains(t, string(core), "await awo.mobilemoney.method();")

	integration, err := r.Render("integration", "Kyc Integration")
	require.NoError(t, err)
	assert.Contains(t, string(integration), "new KycIntegrationClient({")
}

func TestRender_Header(t *testing.T) {
	r, err := Load("minimal")
	require.NoError(t, err)

	got, err := r.Render("guide", "D")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(got),
		"---\ntitle: \"D\"\ndescription: \"D implementation guide\"\n---\n\n# D\n"))
}

func TestRender_UnknownCategory(t *testing.T) {
	r, err := Load("minimal")
	require.NoError(t, err)

	_, err = r.Render("business", "Market Analysis")
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.ErrorContains(t, err, `"business"`)
}

func TestMissing(t *testing.T) {
	r, err := Load("minimal")
	require.NoError(t, err)

	assert.Empty(t, r.Missing([]profile.Category{"api", "guide"}))
	assert.Equal(t, []profile.Category{"business"}, r.Missing([]profile.Category{"guide", "business"}))
}

func TestBuiltinProfilesHaveAllTemplates(t *testing.T) {
	for _, name := range profile.BuiltinNames() {
		p, _ := profile.Builtin(name)
		r, err := Load(p.TemplateSet())
		require.NoError(t, err)
		assert.Empty(t, r.Missing(p.Categories()), "profile %s", name)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "guide.mdx.tmpl", "---\nsummary: \"Guide\"\ndescription: \"{{ .Title }} notes\"\n---\n\n# {{ .Title }}\n\nSee /{{ slug .Title }}.\n")
	testutil.WriteFile(t, dir, "README.md", "ignored")

	r, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []profile.Category{"guide"}, r.Categories())

	tmpl, err := r.Get("guide")
	require.NoError(t, err)
	assert.Equal(t, "Guide", tmpl.Summary)

	got, err := r.Render("guide", "B C")
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: \"B C\"\ndescription: \"B C notes\"\n---\n\n# B C\n\nSee /b-c.\n", string(got))
}

func TestLoadDir_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "empty directory",
			wantErr: "contains no .mdx.tmpl files",
		},
		{
			name:    "missing front-matter",
			files:   map[string]string{"guide.mdx.tmpl": "# {{ .Title }}\n"},
			wantErr: "missing front-matter",
		},
		{
			name:    "missing description",
			files:   map[string]string{"guide.mdx.tmpl": "---\nsummary: \"x\"\n---\n# {{ .Title }}\n"},
			wantErr: "must define a description",
		},
		{
			name:    "bad template syntax",
			files:   map[string]string{"guide.mdx.tmpl": "---\ndescription: \"x\"\n---\n# {{ .Title \n"},
			wantErr: "parsing",
		},
		{
			name:    "unknown function",
			files:   map[string]string{"guide.mdx.tmpl": "---\ndescription: \"{{ upper .Title }}\"\n---\n"},
			wantErr: "description",
		},
		{
			name:    "invalid category file name",
			files:   map[string]string{"Guide_Page.mdx.tmpl": "---\ndescription: \"x\"\n---\n"},
			wantErr: "invalid category name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				testutil.WriteFile(t, dir, name, content)
			}
			_, err := LoadDir(dir)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadDir_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := testutil.WriteFile(t, dir, "guide.mdx.tmpl", "x")

	_, err := LoadDir(file)
	assert.ErrorContains(t, err, "is not a directory")

	_, err = LoadDir(filepath.Join(dir, "missing"))
	assert.ErrorContains(t, err, "reading template directory")
}

func TestValidateCategoryName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"api", true},
		{"api-reference", true},
		{"e2e", true},
		{"", false},
		{"API", false},
		{"api_reference", false},
		{"-api", false},
		{"api--reference", false},
		{"2fa", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategoryName(tt.name)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
