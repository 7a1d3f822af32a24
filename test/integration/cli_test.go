package integration

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdiff/shamsi-calculator/cmd/jdiff/commands"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLIDiffWithConfigFile(t *testing.T) {
	out, err := runCLI(t, "--config", configFile, "diff", "-f", pairsFile)
	require.NoError(t, err)

	assert.Contains(t, out, "Jalali Date Difference Calculator")
	assert.Contains(t, out, "Line «1388/10/22,1384/12/12»: 3 years and 10 months (second date precedes first) [2010-01-12 → 2006-03-03]")
	assert.Contains(t, out, "Results: 8")
	assert.Contains(t, out, "Mean: 3.41 years")
}

func TestCLIDiffFailOnError(t *testing.T) {
	_, err := runCLI(t, "--config", configFile, "diff", "--fail-on-error", "-f", pairsFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 of 10 line(s)")
}

func TestCLIConvertRoundTrip(t *testing.T) {
	out, err := runCLI(t, "convert", "1399/12/30")
	require.NoError(t, err)
	assert.Contains(t, out, "1399/12/30 = 2021-03-20")

	out, err = runCLI(t, "convert", "--reverse", "2021-03-20")
	require.NoError(t, err)
	assert.Contains(t, out, "1399/12/30 = 2021-03-20")
}
