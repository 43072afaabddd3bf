package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webmeld/snapdiff/simhash"
)

func TestFeaturesCountsWords(t *testing.T) {
	page := `<html><body><p>The quick brown fox jumps over the lazy dog. The fox!</p></body></html>`

	features, err := Features(page)
	require.NoError(t, err)

	assert.Equal(t, simhash.Features{
		"the":   3,
		"quick": 1,
		"brown": 1,
		"fox":   2,
		"jumps": 1,
		"over":  1,
		"lazy":  1,
		"dog":   1,
	}, features)
}

func TestFeaturesStripsScriptAndStyle(t *testing.T) {
	page := `<html><head>
		<style>body { color: red }</style>
		<script>var secret = "leaked";</script>
	</head><body><p>visible words only</p></body></html>`

	features, err := Features(page)
	require.NoError(t, err)

	assert.Equal(t, simhash.Features{"visible": 1, "words": 1, "only": 1}, features)
}

func TestFeaturesLowercasesAndDropsPunctuation(t *testing.T) {
	page := `<html><body>Hello, WORLD! (Hello?)</body></html>`

	features, err := Features(page)
	require.NoError(t, err)

	assert.Equal(t, simhash.Features{"hello": 2, "world": 1}, features)
}

func TestFeaturesEmptyPage(t *testing.T) {
	features, err := Features(`<html><body></body></html>`)
	require.NoError(t, err)
	assert.Empty(t, features)
}

func TestFeaturesFeedTheEngine(t *testing.T) {
	engine, err := simhash.NewEngine()
	require.NoError(t, err)

	pageA := `<html><body>alpha beta gamma delta epsilon zeta eta theta</body></html>`
	pageB := `<html><body>alpha beta gamma delta epsilon zeta eta iota</body></html>`

	featA, err := Features(pageA)
	require.NoError(t, err)
	featB, err := Features(pageB)
	require.NoError(t, err)

	fpA, err := engine.Compute(featA)
	require.NoError(t, err)
	fpB, err := engine.Compute(featB)
	require.NoError(t, err)

	// Near-identical pages land close in Hamming space; far closer than
	// the ~32 bits two random fingerprints differ by.
	assert.Less(t, fpA.Hamming(fpB), 32)
}
