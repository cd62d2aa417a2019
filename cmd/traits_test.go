package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintTraits(t *testing.T) {
	var out bytes.Buffer
	printTraits(&out)

	s := out.String()
	assert.Contains(t, s, "Fate")
	assert.Contains(t, s, "D Fatalism")
	assert.Contains(t, s, "DSAI  Fatalism / Spiritualism / Acceptance / Individualism")
	assert.Contains(t, s, "WMRC")
	assert.Equal(t, 16, strings.Count(s, " / Individualism\n")+strings.Count(s, " / Communalism\n"))
}

func TestPreviewResultRejectsBadCode(t *testing.T) {
	rootCmd.SetArgs([]string{"preview", "result", "XXXX", "--provider", "mock"})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	assert.Error(t, err)
}
