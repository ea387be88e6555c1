package udiff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHunk_HeadSentinelWritesVerbatim(t *testing.T) {
	p, err := Parse([]byte("diff --git a/x b/x\nindex 1..2\n@@ -1,1 +1,1 @@\n-a\n+b\n"), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	RenderHunk(&out, &p.Files[0].Head, 0, false, p, "", "")
	assert.Equal(t, "diff --git a/x b/x\nindex 1..2\n", out.String())
}

func TestRenderHunk_RegeneratesHeaderWithDelta(t *testing.T) {
	p, err := Parse([]byte(sampleDiff), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	RenderHunk(&out, &p.Files[0].Hunks[1], 3, false, p, "", "")
	assert.Equal(t, "@@ -20,3 +20,3 @@ func frag()\n context\n-old\n+new\n context\n", out.String())
}

func TestRenderHunk_EmptyTrailerGetsBareNewline(t *testing.T) {
	p, err := Parse([]byte(sampleDiff), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	RenderHunk(&out, &p.Files[0].Hunks[0], 0, false, p, "", "")
	assert.Equal(t, "@@ -10,5 +10,2 @@\n-a\n-b\n-c\n d\n e\n", out.String())
}

func TestRenderHunk_ColoredUsesColoredBuffersAndEscapes(t *testing.T) {
	plain := "diff --git a/x b/x\n@@ -1,2 +1,2 @@\n-a\n+b\n c\n"
	colored := "diff --git a/x b/x\n@@ -1,2 +1,2 @@\n\x1b[31m-a\x1b[0m\n\x1b[32m+b\x1b[0m\n c\n"
	p, err := Parse([]byte(plain), []byte(colored))
	require.NoError(t, err)

	var out bytes.Buffer
	RenderHunk(&out, &p.Files[0].Hunks[0], 0, true, p, "\x1b[0m", "\x1b[35m")
	assert.Equal(t, "@@ -1,2 +1,2 @@\x1b[0m\n\x1b[31m-a\x1b[0m\n\x1b[32m+b\x1b[0m\n c\n", out.String())
}
