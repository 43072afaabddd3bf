// Package extract turns HTML documents into weighted feature sets for
// fingerprinting.
//
// The extraction pipeline strips script and style elements, takes the
// remaining visible text, lowercases it, removes punctuation, normalizes
// whitespace and counts word occurrences. The resulting simhash.Features
// mapping feeds simhash.Engine.Compute.
//
// Pages with no visible text yield an empty feature set; the fingerprint
// engine reports that as errs.ErrEmptyFeatureSet, which batch callers
// should record and skip.
package extract

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/webmeld/snapdiff/simhash"
)

// Features extracts word-frequency features from an HTML document.
func Features(htmlContent string) (simhash.Features, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	gdoc := goquery.NewDocumentFromNode(doc)
	gdoc.Find("script, style").Remove()

	words := strings.Fields(normalizeText(gdoc.Text()))

	features := make(simhash.Features, len(words))
	for _, word := range words {
		features[word]++
	}

	return features, nil
}

// normalizeText lowercases text, drops punctuation and collapses the
// line/chunk structure left behind by block elements.
func normalizeText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}

		return r
	}, text)

	var chunks []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Multi-headline lines are separated by double spaces.
		for _, chunk := range strings.Split(line, "  ") {
			chunk = strings.TrimSpace(chunk)
			if chunk != "" {
				chunks = append(chunks, chunk)
			}
		}
	}

	return strings.Join(chunks, "\n")
}
