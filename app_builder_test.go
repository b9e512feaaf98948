package galaxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type MockModule struct {
	installed bool
	order     *[]string
	name      string
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed = true
	if m.order != nil {
		*m.order = append(*m.order, m.name)
	}
}

func TestAppBuilder_UseModule(t *testing.T) {
	builder := NewAppBuilder()
	builder.UseModule(&MockModule{})

	assert.Len(t, builder.modules, 1)
}

func TestAppBuilder_Build_WithModules(t *testing.T) {
	var order []string
	first := &MockModule{name: "first", order: &order}
	second := &MockModule{name: "second", order: &order}

	app := NewAppBuilder().
		UseModule(first).
		UseModule(second).
		Build()

	assert.NotNil(t, app)
	assert.True(t, first.installed)
	assert.True(t, second.installed)
	assert.Equal(t, []string{"first", "second"}, order)
}
