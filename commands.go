package galaxy

type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// Exit stops App.Run after the current tick completes.
func (cmd *Commands) Exit() {
	cmd.app.exit()
}

// OnShutdown registers fn to run when App.Run returns.
func (cmd *Commands) OnShutdown(fn func()) {
	cmd.app.onShutdown(fn)
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}

func (cmd *Commands) Frame() uint64 {
	return cmd.app.frame
}
