package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/watcrack/internal/evaluator"
	"github.com/abhisek/watcrack/internal/topics"
)

func TestResolveTopicTitle(t *testing.T) {
	bankTopic, ok := topics.Lookup("1")
	require.True(t, ok)

	assert.Equal(t, bankTopic.Title, resolveTopicTitle("1"))
	assert.Equal(t, "My own topic", resolveTopicTitle("My own topic"))
	assert.Equal(t, "", resolveTopicTitle(""))
}

func TestReadResponseStdin(t *testing.T) {
	got, err := readResponse(strings.NewReader("hello world"), "-")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestPrintFeedbackLowContent(t *testing.T) {
	fb := evaluator.Evaluate("Too short to judge.", "Technology in Education", 30)

	var buf bytes.Buffer
	require.NoError(t, printFeedback(&buf, fb, "Technology in Education", 60, false))

	out := buf.String()
	assert.Contains(t, out, "write a little more")
	assert.NotContains(t, out, "Strengths")
	assert.NotContains(t, out, "Weaknesses")
	assert.Contains(t, out, "Action plan")
}

func TestPrintFeedbackJSON(t *testing.T) {
	fb := evaluator.Evaluate("Some text here.", "", 0)

	var buf bytes.Buffer
	require.NoError(t, printFeedback(&buf, fb, "", 60, true))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.EqualValues(t, fb.Score, decoded["score"])
	assert.EqualValues(t, fb.WordCount, decoded["wordCount"])
	assert.Contains(t, decoded, "metrics")
}

func TestScoreCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader("A brief response about technology."))
	rootCmd.SetArgs([]string{"score", "--topic", "Technology in Education", "--seconds", "60"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Score:")
	assert.Contains(t, out.String(), "WPM:      5")
}
