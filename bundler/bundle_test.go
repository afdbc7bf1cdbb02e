package bundler_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alastairzotos/eco-parser/bundler"
)

func writeFiles(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	return fs
}

func TestBundleDefaultExport(t *testing.T) {
	fs := writeFiles(t, map[string]string{
		"/app/math.eco": "export default function (n) { return n * 2; };",
		"/app/main.eco": `
import double from './math';
const result = double(21);
`,
	})
	b := bundler.New(bundler.NewFsResolver(fs), nil)
	out, err := b.Bundle("/app", "main.eco")
	require.NoError(t, err)
	assert.Contains(t, out, "__eco_require__")
	assert.Contains(t, out, "/app/math.eco")
	assert.Contains(t, out, "module.exports = function(")
}

func TestBundleNamedExportsAndReExport(t *testing.T) {
	fs := writeFiles(t, map[string]string{
		"/app/a.eco": "export const one = 1;\nexport const two = 2;",
		"/app/b.eco": "export { one, two as deuce } from './a';",
		"/app/main.eco": `
import { one, deuce } from './b';
const sum = one + deuce;
`,
	})
	b := bundler.New(bundler.NewFsResolver(fs), nil)
	out, err := b.Bundle("/app", "main.eco")
	require.NoError(t, err)
	assert.Contains(t, out, `one: __eco_require__("/app/a.eco").one`)
	assert.Contains(t, out, `deuce: __eco_require__("/app/a.eco").two`)
}

func TestBundleExportStarSpreadsFields(t *testing.T) {
	fs := writeFiles(t, map[string]string{
		"/app/a.eco": "export const one = 1;",
		"/app/b.eco": "export * from './a';",
		"/app/main.eco": `
import { one } from './b';
`,
	})
	b := bundler.New(bundler.NewFsResolver(fs), nil)
	out, err := b.Bundle("/app", "main.eco")
	require.NoError(t, err)
	assert.Contains(t, out, `...__eco_require__("/app/a.eco")`)
}

func TestBundleDestructuredNamedExport(t *testing.T) {
	fs := writeFiles(t, map[string]string{
		"/app/a.eco":    "export const { x, y } = { x: 1, y: 2 };",
		"/app/main.eco": "import { x, y } from './a';",
	})
	b := bundler.New(bundler.NewFsResolver(fs), nil)
	out, err := b.Bundle("/app", "main.eco")
	require.NoError(t, err)
	assert.Contains(t, out, "module.exports = { x, y };")
}

func TestBundleIsCycleSafe(t *testing.T) {
	fs := writeFiles(t, map[string]string{
		"/app/a.eco": "import './b';\nexport const a = 1;",
		"/app/b.eco": "import './a';\nexport const b = 2;",
	})
	b := bundler.New(bundler.NewFsResolver(fs), nil)
	out, err := b.Bundle("/app", "a.eco")
	require.NoError(t, err)
	// each module must be emitted exactly once despite the cycle
	assert.Equal(t, 1, strings.Count(out, `"/app/a.eco": (module, __eco_require__) =>`))
	assert.Equal(t, 1, strings.Count(out, `"/app/b.eco": (module, __eco_require__) =>`))
}

func TestBundleMissingModuleErrors(t *testing.T) {
	fs := writeFiles(t, map[string]string{
		"/app/main.eco": "import './missing';",
	})
	b := bundler.New(bundler.NewFsResolver(fs), nil)
	_, err := b.Bundle("/app", "main.eco")
	assert.Error(t, err)
}

func TestBundleSideEffectOnlyImport(t *testing.T) {
	fs := writeFiles(t, map[string]string{
		"/app/setup.eco": "const ran = true;",
		"/app/main.eco":  "import './setup';",
	})
	b := bundler.New(bundler.NewFsResolver(fs), nil)
	out, err := b.Bundle("/app", "main.eco")
	require.NoError(t, err)
	assert.Contains(t, out, `__eco_require__("/app/setup.eco");`)
}
