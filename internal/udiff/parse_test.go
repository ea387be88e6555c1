package udiff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDiff = "diff --git a/foo.txt b/foo.txt\n" +
	"index 111..222 100644\n" +
	"--- a/foo.txt\n" +
	"+++ b/foo.txt\n" +
	"@@ -10,5 +10,2 @@\n" +
	"-a\n" +
	"-b\n" +
	"-c\n" +
	" d\n" +
	" e\n" +
	"@@ -20,3 +17,3 @@ func frag()\n" +
	" context\n" +
	"-old\n" +
	"+new\n" +
	" context\n"

func TestParse_SplitsFilesAndHunks(t *testing.T) {
	p, err := Parse([]byte(sampleDiff), nil)
	require.NoError(t, err)
	require.Len(t, p.Files, 1)

	fd := p.Files[0]
	require.Len(t, fd.Hunks, 2)

	h0, h1 := fd.Hunks[0].Header, fd.Hunks[1].Header
	assert.Equal(t, Header{OldOffset: 10, OldCount: 5, NewOffset: 10, NewCount: 2, PlainExtraStart: h0.PlainExtraStart, PlainExtraEnd: h0.PlainExtraEnd}, h0)
	assert.Equal(t, 20, h1.OldOffset)
	assert.Equal(t, 3, h1.OldCount)
	assert.Equal(t, 17, h1.NewOffset)
	assert.Equal(t, 3, h1.NewCount)

	// The head hunk covers the prelude through (not including) the first "@@".
	assert.Equal(t, sampleDiff[:strings.Index(sampleDiff, "@@ -10,5")], string(p.Plain[fd.Head.Start:fd.Head.End]))

	// Hunk bodies start right after their header line.
	assert.Equal(t, "-a\n-b\n-c\n d\n e\n", string(p.Plain[fd.Hunks[0].Start:fd.Hunks[0].End]))
	assert.Equal(t, " context\n-old\n+new\n context\n", string(p.Plain[fd.Hunks[1].Start:fd.Hunks[1].End]))
}

func TestParse_TrailerBytesExcludeHeaderButKeepFragment(t *testing.T) {
	p, err := Parse([]byte(sampleDiff), nil)
	require.NoError(t, err)
	fd := p.Files[0]

	trailer0 := string(p.Plain[fd.Hunks[0].Header.PlainExtraStart:fd.Hunks[0].Header.PlainExtraEnd])
	assert.Equal(t, "\n", trailer0)

	trailer1 := string(p.Plain[fd.Hunks[1].Header.PlainExtraStart:fd.Hunks[1].Header.PlainExtraEnd])
	assert.Equal(t, " func frag()\n", trailer1)
}

func TestParse_AddsMissingTrailingNewline(t *testing.T) {
	p, err := Parse([]byte("diff --git a/x b/x\n@@ -1,1 +1,1 @@\n-a\n+b"), nil)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(p.Plain), "\n"))
	assert.Equal(t, "-a\n+b\n", string(p.Plain[p.Files[0].Hunks[0].Start:p.Files[0].Hunks[0].End]))
}

func TestParse_ContentBeforeAnyFileHeaderIsFatal(t *testing.T) {
	_, err := Parse([]byte("not a diff line\n"), nil)
	assert.Error(t, err)
}

func TestParse_MalformedHunkHeaderIsFatal(t *testing.T) {
	_, err := Parse([]byte("diff --git a/x b/x\n@@ garbage @@\n"), nil)
	assert.Error(t, err)
}

func TestParse_WithColoredBuffer(t *testing.T) {
	plain := "diff --git a/x b/x\n@@ -1,2 +1,2 @@\n-a\n+b\n c\n"
	colored := "diff --git a/x b/x\n\x1b[35m@@ -1,2 +1,2 @@\x1b[0m\n\x1b[31m-a\x1b[0m\n\x1b[32m+b\x1b[0m\n c\n"

	p, err := Parse([]byte(plain), []byte(colored))
	require.NoError(t, err)
	require.NotNil(t, p.Colored)

	h := p.Files[0].Hunks[0]
	body := string(p.Colored[h.ColoredStart:h.ColoredEnd])
	assert.Equal(t, "\x1b[31m-a\x1b[0m\n\x1b[32m+b\x1b[0m\n c\n", body)
}

func TestParse_MultipleFiles(t *testing.T) {
	combined := sampleDiff + "diff --git a/bar.txt b/bar.txt\n@@ -1,1 +1,1 @@\n-x\n+y\n"
	p, err := Parse([]byte(combined), nil)
	require.NoError(t, err)
	require.Len(t, p.Files, 2)
	assert.Len(t, p.Files[0].Hunks, 2)
	assert.Len(t, p.Files[1].Hunks, 1)
}
