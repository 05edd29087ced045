package assetdirstat

import (
	"sync"

	"github.com/rivo/tview"
)

// App is the part of *tview.Application the inspector needs.
type App interface {
	Run() error
	QueueUpdateDraw(f func())
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	Stop()
	EnableMouse(bool)
	// Done is closed once Run returns.
	Done() <-chan struct{}
}

type (
	UpdateDrawQueuer func(f func())
	Focuser          func(p tview.Primitive)
	RootSetter       func(root tview.Primitive, fullscreen bool)
)

type AppMethod func(na *appProxy)

// NewApp wraps app. Any method can be replaced with an AppMethod.
func NewApp(app *tview.Application, o ...AppMethod) App {
	a := &appProxy{done: make(chan struct{}), closeDone: new(sync.Once)}
	if app != nil {
		a.setFocus = func(primitive tview.Primitive) {
			_ = app.SetFocus(primitive)
		}
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.enableMouse = func(b bool) {
			_ = app.EnableMouse(b)
		}
		a.queueUpdateDraw = func(f func()) {
			_ = app.QueueUpdateDraw(f)
		}
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, m := range o {
		m(a)
	}
	return a
}

func WithQueueUpdateDraw(queueUpdateDraw UpdateDrawQueuer) AppMethod {
	return func(na *appProxy) {
		na.queueUpdateDraw = queueUpdateDraw
	}
}

func WithSetFocus(setFocus Focuser) AppMethod {
	return func(na *appProxy) {
		na.setFocus = setFocus
	}
}

func WithSetRoot(setRoot RootSetter) AppMethod {
	return func(na *appProxy) {
		na.setRoot = setRoot
	}
}

func WithEnableMouse(enableMouse func(bool)) AppMethod {
	return func(na *appProxy) {
		na.enableMouse = enableMouse
	}
}

func WithRun(run func() error) AppMethod {
	return func(na *appProxy) {
		na.run = run
	}
}

func WithStop(stop func()) AppMethod {
	return func(na *appProxy) {
		na.stop = stop
	}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	queueUpdateDraw UpdateDrawQueuer
	setFocus        Focuser
	setRoot         RootSetter
	enableMouse     func(bool)
	run             func() error
	stop            func()
	done            chan struct{}
	closeDone       *sync.Once
}

func (n appProxy) EnableMouse(b bool) {
	if n.enableMouse != nil {
		n.enableMouse(b)
	}
}

func (n appProxy) QueueUpdateDraw(f func()) {
	if n.queueUpdateDraw != nil {
		n.queueUpdateDraw(f)
	}
}

func (n appProxy) SetFocus(p tview.Primitive) {
	if n.setFocus != nil {
		n.setFocus(p)
	}
}

func (n appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	if n.setRoot != nil {
		n.setRoot(root, fullscreen)
	}
}

func (n appProxy) Run() error {
	defer n.closeDone.Do(func() {
		close(n.done)
	})
	if n.run == nil {
		return nil
	}
	return n.run()
}

func (n appProxy) Done() <-chan struct{} {
	return n.done
}

func (n appProxy) Stop() {
	if n.stop != nil {
		n.stop()
	}
}
