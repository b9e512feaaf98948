package galaxy

type AppBuilder struct {
	app     *App
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{app: NewApp()}
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

// Build installs modules in the order they were added. Later modules may
// depend on resources provided by earlier ones.
func (b *AppBuilder) Build() *App {
	b.app.UseModules(b.modules...)
	return b.app
}
