package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantHeader string
		wantBody   string
		wantHad    bool
		wantErr    error
	}{
		{
			name:       "header and body",
			content:    "---\ndescription: \"x\"\n---\n\n# Title\n",
			wantHeader: "description: \"x\"\n",
			wantBody:   "\n# Title\n",
			wantHad:    true,
		},
		{
			name:     "no header",
			content:  "# Title\n",
			wantBody: "# Title\n",
		},
		{
			name:       "empty header",
			content:    "---\n---\nbody",
			wantHeader: "",
			wantBody:   "body",
			wantHad:    true,
		},
		{
			name:       "crlf normalized",
			content:    "---\r\nsummary: \"s\"\r\n---\r\nbody\r\n",
			wantHeader: "summary: \"s\"\n",
			wantBody:   "body\n",
			wantHad:    true,
		},
		{
			name:    "unterminated",
			content: "---\ntitle: x\n",
			wantErr: ErrMissingClosingDelimiter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, body, had, err := Split([]byte(tt.content))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHad, had)
			assert.Equal(t, tt.wantHeader, string(header))
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestSerialize_KeepsOrderAndQuotes(t *testing.T) {
	out, err := Serialize([]Field{
		{Key: "title", Value: "Mobile Money"},
		{Key: "description", Value: "Mobile Money endpoint documentation"},
	})
	require.NoError(t, err)
	assert.Equal(t, "title: \"Mobile Money\"\ndescription: \"Mobile Money endpoint documentation\"\n", string(out))
}

func TestSerialize_Empty(t *testing.T) {
	out, err := Serialize(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRender(t *testing.T) {
	doc, err := Render([]Field{{Key: "title", Value: "D"}}, []byte("\n# D\n"))
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: \"D\"\n---\n\n# D\n", string(doc))
}

func TestParse(t *testing.T) {
	fields, err := Parse([]byte("summary: \"Guide\"\ndescription: \"{{ .Title }} guide\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "Guide", fields["summary"])
	assert.Equal(t, "{{ .Title }} guide", fields["description"])

	empty, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = Parse([]byte("key: [unclosed"))
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	header, err := Serialize([]Field{{Key: "title", Value: "Overview"}})
	require.NoError(t, err)

	got, body, had, err := Split(Join(header, []byte("body")))
	require.NoError(t, err)
	assert.True(t, had)
	assert.Equal(t, "body", string(body))

	fields, err := Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "Overview", fields["title"])
}
