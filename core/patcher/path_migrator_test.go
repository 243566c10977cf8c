package patcher_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noesisnoema/pbxmend/core/patcher"
	"github.com/noesisnoema/pbxmend/core/pbxproj"
)

func legacyProjectText() string {
	return "// !$*UTF8*$!\n{\n" +
		"\t\t\tattributesByRelativePath = {\n" +
		"\t\t\t\tFrameworks/llama_ios.xcframework = (Required, );\n" +
		"\t\t\t\tFrameworks/llama_macos.xcframework = (Required, );\n" +
		"\t\t\t};\n" +
		"\t\t\tmembershipExceptions = (\n" +
		"\t\t\t\tFrameworks/llama_ios.xcframework,\n" +
		"\t\t\t\tFrameworks/llama_macos.xcframework,\n" +
		"\t\t\t);\n" +
		"}\n"
}

func TestPathMigratorRewritesAndRemoves(t *testing.T) {
	t.Parallel()

	path := writeTempProject(t, legacyProjectText())

	doc, err := pbxproj.Load(path)
	require.NoError(t, err)

	patch, err := patcher.NewPathMigrator(doc, false).Run()
	require.NoError(t, err)
	assert.Equal(t, 2, patch.Rewritten)
	assert.Equal(t, 2, patch.Removed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Frameworks/xcframeworks/llama_ios.xcframework = (Required, );")
	assert.Contains(t, text, "Frameworks/xcframeworks/llama_macos.xcframework = (Required, );")
	assert.NotContains(t, text, "\t\t\t\tFrameworks/llama_ios.xcframework,\n")
	assert.NotContains(t, text, "\t\t\t\tFrameworks/llama_macos.xcframework,\n")

	// Second run is a no-op.
	doc, err = pbxproj.Load(path)
	require.NoError(t, err)
	patch, err = patcher.NewPathMigrator(doc, false).Run()
	require.NoError(t, err)
	assert.False(t, patch.Changed())
}

func TestPathMigratorCleanProjectUnchanged(t *testing.T) {
	t.Parallel()

	original := "// !$*UTF8*$!\n{\n" +
		"\t\t\t\tFrameworks/xcframeworks/llama_ios.xcframework = (Required, );\n" +
		"}\n"
	path := writeTempProject(t, original)

	doc, err := pbxproj.Load(path)
	require.NoError(t, err)

	patch, err := patcher.NewPathMigrator(doc, false).Run()
	require.NoError(t, err)
	assert.False(t, patch.Changed())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestPathMigratorDryRunLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	original := legacyProjectText()
	path := writeTempProject(t, original)

	doc, err := pbxproj.Load(path)
	require.NoError(t, err)

	patch, err := patcher.NewPathMigrator(doc, true).Run()
	require.NoError(t, err)
	assert.True(t, patch.Changed())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}
