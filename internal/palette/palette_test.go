package palette_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcs-tools/stage/internal/palette"
)

func TestParseMode(t *testing.T) {
	m, err := palette.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, palette.Auto, m)

	m, err = palette.ParseMode("always")
	require.NoError(t, err)
	assert.Equal(t, palette.Always, m)

	_, err = palette.ParseMode("sometimes")
	assert.Error(t, err)
}

func TestResolve_NeverIsAllEmpty(t *testing.T) {
	p := palette.Resolve(palette.Never, true)
	assert.Equal(t, &palette.Palette{}, p)
}

func TestResolve_AlwaysIgnoresTerminalCheck(t *testing.T) {
	p := palette.Resolve(palette.Always, false)
	assert.NotEmpty(t, p.Header)
	assert.NotEmpty(t, p.Prompt)
	assert.NotEmpty(t, p.Error)
	assert.NotEmpty(t, p.FragInfo)
}

func TestResolve_AutoFollowsTerminalCheck(t *testing.T) {
	assert.Equal(t, &palette.Palette{}, palette.Resolve(palette.Auto, false))
	assert.NotEqual(t, &palette.Palette{}, palette.Resolve(palette.Auto, true))
}
