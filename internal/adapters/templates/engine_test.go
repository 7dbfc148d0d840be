package templates_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bittr.nu/spoolsync/internal/adapters/templates"
	"go.bittr.nu/spoolsync/internal/core/domain"
	"go.bittr.nu/spoolsync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func writeTemplates(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestEngineRender(t *testing.T) {
	dir := writeTemplates(t, map[string]string{
		"filename.template": "{{.name}}.ini",
		"notes.txt":         "not a template",
	})

	engine, err := templates.NewEngine(dir, quietLogger(t))
	require.NoError(t, err)

	out, err := engine.Render("filename.template", map[string]any{"name": "pla"})
	require.NoError(t, err)
	assert.Equal(t, "pla.ini", out)

	// Non-template files are not loaded.
	_, err = engine.Render("notes.txt", nil)
	require.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestEngineMissingDir(t *testing.T) {
	_, err := templates.NewEngine(filepath.Join(t.TempDir(), "nope"), quietLogger(t))
	require.ErrorIs(t, err, domain.ErrTemplateDirMissing)
}

func TestEngineReloadPicksUpEdits(t *testing.T) {
	dir := writeTemplates(t, map[string]string{
		"default.ini.template": "v1",
	})

	engine, err := templates.NewEngine(dir, quietLogger(t))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "default.ini.template"), []byte("v2"), 0o644))
	require.NoError(t, engine.Reload())

	out, err := engine.Render("default.ini.template", nil)
	require.NoError(t, err)
	assert.Equal(t, "v2", out)
}

func TestEngineReloadKeepsPreviousSetOnParseError(t *testing.T) {
	dir := writeTemplates(t, map[string]string{
		"default.ini.template": "v1",
	})

	engine, err := templates.NewEngine(dir, quietLogger(t))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "default.ini.template"), []byte("{{.broken"), 0o644))
	require.Error(t, engine.Reload())

	out, err := engine.Render("default.ini.template", nil)
	require.NoError(t, err)
	assert.Equal(t, "v1", out)
}

// TestSeededTemplateGolden renders the shipped superslicer starter body
// against a representative record and compares it to the golden file.
func TestSeededTemplateGolden(t *testing.T) {
	log := quietLogger(t)
	dir := t.TempDir()
	require.NoError(t, templates.Seed(dir, domain.SlicerSuper, log))

	engine, err := templates.NewEngine(dir, log)
	require.NoError(t, err)

	out, err := engine.Render("default.ini.template", map[string]any{
		"name":                   "Galaxy Black",
		"material":               "PLA",
		"density":                1.24,
		"diameter":               1.75,
		"color_hex":              "AA2233",
		"price":                  29.99,
		"settings_extruder_temp": int64(215),
		"settings_bed_temp":      int64(60),
		"vendor":                 map[string]any{"name": "Prusament"},
		"spool":                  map[string]any{"id": int64(10), "spool_weight": int64(216)},
		"sm2s": map[string]any{
			"name":          "spoolsync",
			"version":       "0.0.0-dev",
			"now":           "Sun Aug 30 12:00:00 2026",
			"now_int":       int64(1787997600),
			"slicer_suffix": "ini",
			"variant":       "",
			"spoolman_url":  "http://spoolman.local:7912",
		},
	})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "superslicer_default_ini", []byte(out))
}
