package main

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRender_Text(t *testing.T) {
	in := writeTempFile(t, "enhanced.txt", sampleEnhancedText)
	w, out, _ := testStreams()

	err := runRender(defaultConfig(t), renderOptions{Input: inputOptions{Path: in}, As: outputText}, w)
	require.NoError(t, err)

	expected := "Contact Information:\nEmail: a@x.com\nPhone: 555-1234\n\n" +
		"Experience:\nEngineer | Acme | 2020\nBuilt X\nLed Y\n2018 Intern | Beta\n\n" +
		"Skills:\nGo\nRust\n"
	assert.Equal(t, expected, out.String())
}

func TestRunRender_TextReparsesToSameDocument(t *testing.T) {
	in := writeTempFile(t, "enhanced.txt", sampleEnhancedText)
	w, first, _ := testStreams()
	require.NoError(t, runRender(defaultConfig(t), renderOptions{Input: inputOptions{Path: in}, As: outputText}, w))

	again := writeTempFile(t, "again.txt", first.String())
	w, second, _ := testStreams()
	require.NoError(t, runRender(defaultConfig(t), renderOptions{Input: inputOptions{Path: again}, As: outputText}, w))

	assert.Equal(t, first.String(), second.String())
}

func TestRunRender_HTML(t *testing.T) {
	in := writeTempFile(t, "enhanced.txt", sampleEnhancedText)
	w, out, _ := testStreams()

	err := runRender(defaultConfig(t), renderOptions{Input: inputOptions{Path: in}, As: outputHTML}, w)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Find("section").Length())
	assert.Equal(t, 2, doc.Find(".entry").Length())
	assert.Equal(t, 1, doc.Find(".hint-email").Length())
}

func TestRunRender_UnknownOutput(t *testing.T) {
	in := writeTempFile(t, "enhanced.txt", sampleEnhancedText)
	w, _, _ := testStreams()

	err := runRender(defaultConfig(t), renderOptions{Input: inputOptions{Path: in}, As: "pdf"}, w)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
