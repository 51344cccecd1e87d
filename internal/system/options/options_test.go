// Released under an MIT license. See LICENSE.

package options

import (
	"testing"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parser() *docopt.Parser {
	return &docopt.Parser{HelpHandler: docopt.NoHelpHandler}
}

func TestScript(t *testing.T) {
	require.NoError(t, parse(parser(), []string{"-d", "demo.as"}, true))

	assert.Equal(t, "demo.as", Script())
	assert.Equal(t, "", Command())
	assert.True(t, Debug())
	assert.False(t, Interactive())
}

func TestCommand(t *testing.T) {
	require.NoError(t, parse(parser(), []string{"-C", "cfg.yaml", "-c", "trace 1"}, true))

	assert.Equal(t, "trace 1", Command())
	assert.Equal(t, "cfg.yaml", Config())
	assert.False(t, Interactive())
}

func TestInteractive(t *testing.T) {
	require.NoError(t, parse(parser(), []string{}, true))
	assert.True(t, Interactive())

	require.NoError(t, parse(parser(), []string{}, false))
	assert.False(t, Interactive())

	require.NoError(t, parse(parser(), []string{"-i"}, true))
	assert.False(t, Interactive())
}
