package sitemap

import (
	"bytes"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-travel/site/page"
)

func TestBuild(t *testing.T) {
	set := Build(page.DefaultRegistry(), "https://example.com", "2024-03-01")

	require.Len(t, set.URLs, 3)
	assert.Equal(t, "https://example.com/help-center", set.URLs[0].Loc)
	assert.Equal(t, "0.8", set.URLs[0].Priority)
	assert.Equal(t, "https://example.com/privacy-policy", set.URLs[1].Loc)
	assert.Equal(t, "0.5", set.URLs[1].Priority)
	assert.Equal(t, "monthly", set.URLs[2].ChangeFreq)
	assert.Equal(t, "2024-03-01", set.URLs[2].LastMod)
}

func TestBuildTrimsBaseURL(t *testing.T) {
	set := Build(page.NewRegistry(page.Page{ID: "about"}), "https://example.com/", "2024-03-01")
	require.Len(t, set.URLs, 1)
	assert.Equal(t, "https://example.com/about", set.URLs[0].Loc)
}

func TestMarshal(t *testing.T) {
	data, err := Marshal(Build(page.DefaultRegistry(), "https://example.com", "2024-03-01"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte(xml.Header)))
	assert.Contains(t, string(data), `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)

	var decoded URLSet
	require.NoError(t, xml.Unmarshal(data, &decoded))
	assert.Len(t, decoded.URLs, 3)
}
