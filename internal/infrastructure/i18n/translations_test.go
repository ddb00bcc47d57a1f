package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTranslator_T(t *testing.T) {
	tr := NewTranslator("en", zap.NewNop())

	msg := tr.T("en", "dm.role_assigned", map[string]any{"Role": "[EVENT 242] Demo", "Event": "Demo"})
	assert.Contains(t, msg, "[EVENT 242] Demo")

	// Discord reports regional locales like en-US.
	msg = tr.T("en-US", "dm.role_assigned", map[string]any{"Role": "r", "Event": "e"})
	assert.Contains(t, msg, "r")

	fr := tr.T("fr", "dm.role_assigned", map[string]any{"Role": "r", "Event": "e"})
	assert.Contains(t, fr, "rôle")
}

func TestTranslator_T_Fallbacks(t *testing.T) {
	tr := NewTranslator("en", zap.NewNop())

	// Unknown locale falls back to the default language.
	msg := tr.T("xx", "dm.role_assigned", map[string]any{"Role": "r", "Event": "e"})
	assert.Contains(t, msg, "role")

	// Unknown key falls back to the key itself.
	assert.Equal(t, "dm.unknown", tr.T("en", "dm.unknown", nil))

	assert.Equal(t, "", tr.T("en", "", nil))
}
