package app

import (
	"image"
	"log"
	"os"
	"strconv"
	"time"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/justyntemme/folderlike/internal/assets"
	"github.com/justyntemme/folderlike/internal/catalog"
	"github.com/justyntemme/folderlike/internal/config"
	"github.com/justyntemme/folderlike/internal/debug"
	"github.com/justyntemme/folderlike/internal/gallery"
	"github.com/justyntemme/folderlike/internal/motion"
	"github.com/justyntemme/folderlike/internal/store"
	"github.com/justyntemme/folderlike/internal/ui"
)

// Orchestrator owns the window and everything the shelf needs: the
// controller, the animator, covers and the settings DB. Only the window
// event loop touches the controller.
type Orchestrator struct {
	window  *app.Window
	cfg     config.Config
	catalog *catalog.Catalog
	ctrl    *gallery.Controller
	anim    *motion.Transform
	spring  motion.Spring
	covers  *assets.Cache
	store   *store.DB
	ui      *ui.Renderer
	state   ui.State
	debug   bool

	storeOpen bool
	storeDone chan struct{}
	sizeDp    image.Point
	heightDp  float32 // exact, for Render
	lastFrame time.Time
}

func NewOrchestrator(cfg config.Config, debugMode bool) *Orchestrator {
	books := catalog.Default()

	ctrl := gallery.NewController(books)
	ctrl.SetDismissThreshold(cfg.Gesture.DismissThreshold)

	r := ui.NewRenderer()
	r.GridMinColumn = cfg.Grid.MinColumn
	r.GridMaxColumn = cfg.Grid.MaxColumn
	r.GridSpacing = cfg.Grid.Spacing
	r.SetHotkeys(config.NewHotkeyMatcher(cfg.Hotkeys))

	return &Orchestrator{
		window:    new(app.Window),
		cfg:       cfg,
		catalog:   books,
		ctrl:      ctrl,
		spring:    motion.Spring{Response: cfg.Animation.Response, Damping: cfg.Animation.Damping},
		store:     store.NewDB(),
		ui:        r,
		state:     ui.NewState(books),
		debug:     debugMode,
		storeDone: make(chan struct{}),
	}
}

func (o *Orchestrator) Run() error {
	if o.debug {
		log.Println("Starting folderlike in DEBUG mode")
	}

	// Covers
	covers, err := assets.NewStore(o.cfg.Assets.Dir, o.catalog.All())
	if err != nil {
		log.Printf("Covers: %v (using placeholders)", err)
		o.ui.ShowError("Cover folder unavailable, showing placeholders")
	}
	o.covers = assets.NewCache(covers, o.cfg.Assets.CacheEntries, o.cfg.Assets.MaxPixels)
	o.covers.OnLoad = func(string) { o.window.Invalidate() }
	o.ui.Covers = o.covers
	defer o.covers.Stop()

	if o.cfg.Assets.Dir != "" {
		if w, err := covers.Watch(0); err != nil {
			log.Printf("Covers: %v", err)
		} else {
			defer w.Close()
			go o.reloadCovers(w)
		}
	}

	// Settings DB
	if path, err := store.DefaultPath(); err != nil {
		log.Printf("Failed to locate DB: %v", err)
	} else if err := o.store.Open(path); err != nil {
		log.Printf("Failed to open DB: %v", err)
	} else {
		o.storeOpen = true
	}
	defer o.store.Close()

	go func() {
		o.store.Start()
		close(o.storeDone)
	}()
	go o.processEvents()

	o.window.Option(
		app.Title(o.cfg.Window.Title),
		app.Size(unit.Dp(o.cfg.Window.Width), unit.Dp(o.cfg.Window.Height)),
	)
	if o.storeOpen {
		o.store.RequestChan <- store.Request{Op: store.FetchSettings}
	}

	var ops op.Ops
	for {
		switch e := o.window.Event().(type) {
		case app.DestroyEvent:
			o.shutdown()
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			o.sizeDp = ui.ScreenDp(gtx)
			o.heightDp = ui.ScreenHeightDp(gtx)

			o.retarget()
			o.advance(gtx.Now)

			evt := o.ui.Layout(gtx, &o.state)
			if o.debug && evt.Action != ui.ActionNone {
				log.Printf("[DEBUG] Action: %s, Book: %s, Translation: %v", evt.Action, evt.BookID, evt.Translation)
			}
			o.handleUIEvent(evt)
			o.retarget()

			if !o.anim.Settled() || evt.Action != ui.ActionNone {
				gtx.Execute(op.InvalidateCmd{})
			} else {
				o.lastFrame = time.Time{}
			}
			e.Frame(gtx.Ops)
		}
	}
}

// retarget feeds the controller state through Render into the animator. The
// first call places the animator at rest on the target.
func (o *Orchestrator) retarget() {
	s := o.ctrl.State()
	o.state.Selected = s.Selected
	o.state.Expanded = s.Expanded

	target := gallery.Render(s, o.heightDp)
	if o.anim == nil {
		o.anim = motion.NewTransform(o.spring, target)
		o.state.Transform = target
		return
	}
	o.anim.Follow(target, o.ctrl.Dragging())
}

// advance steps the animator to now.
func (o *Orchestrator) advance(now time.Time) {
	var dt time.Duration
	if !o.lastFrame.IsZero() {
		dt = now.Sub(o.lastFrame)
	}
	o.lastFrame = now
	o.anim.Step(dt)
	o.state.Transform = o.anim.Current()
}

func (o *Orchestrator) handleUIEvent(evt ui.UIEvent) {
	switch evt.Action {
	case ui.ActionSelect:
		b, ok := o.catalog.ByID(evt.BookID)
		if !ok {
			log.Printf("Select: unknown book %q", evt.BookID)
			return
		}
		o.ctrl.SelectItem(b)
		o.state.Focus = o.catalog.Index(b.ID)
	case ui.ActionToggle:
		o.ctrl.ToggleExpanded()
	case ui.ActionCollapse:
		if o.ctrl.Phase() == gallery.Expanded {
			o.ctrl.ToggleExpanded()
		}
	case ui.ActionDragChanged:
		o.ctrl.OnDragChanged(evt.Translation)
		debug.Log(debug.GESTURE, "drag %v", evt.Translation)
	case ui.ActionDragEnded:
		o.ctrl.OnDragEnded(evt.Translation)
		debug.Log(debug.GESTURE, "drag ended %v -> %s", evt.Translation, o.ctrl.Phase())
	case ui.ActionBuy:
		o.purchase(evt.BookID)
	}
}

// shutdown saves the window size and drains the store worker.
func (o *Orchestrator) shutdown() {
	if o.storeOpen && o.sizeDp.X > 0 && o.sizeDp.Y > 0 {
		o.store.RequestChan <- store.Request{Op: store.SaveSetting, Key: store.KeyWindowWidth, Value: strconv.Itoa(o.sizeDp.X)}
		o.store.RequestChan <- store.Request{Op: store.SaveSetting, Key: store.KeyWindowHeight, Value: strconv.Itoa(o.sizeDp.Y)}
	}
	close(o.store.RequestChan)
	<-o.storeDone
}

// reloadCovers drops decoded covers whenever the cover directory changes so
// the grid picks up new files.
func (o *Orchestrator) reloadCovers(w *assets.Watcher) {
	for range w.Notify() {
		o.covers.Clear()
		o.window.Invalidate()
	}
}

func (o *Orchestrator) processEvents() {
	for resp := range o.store.ResponseChan {
		o.handleStoreResponse(resp)
	}
}

func (o *Orchestrator) handleStoreResponse(resp store.Response) {
	if resp.Err != nil {
		log.Printf("Store Error: %v", resp.Err)
		return
	}

	switch resp.Op {
	case store.FetchSettings:
		w, errW := strconv.Atoi(resp.Settings[store.KeyWindowWidth])
		h, errH := strconv.Atoi(resp.Settings[store.KeyWindowHeight])
		if errW != nil || errH != nil || w <= 0 || h <= 0 {
			return
		}
		debug.Log(debug.STORE, "restoring window size %dx%d", w, h)
		o.window.Option(app.Size(unit.Dp(w), unit.Dp(h)))
	case store.SaveSetting:
		debug.Log(debug.STORE, "setting saved")
	}
}

// Main runs the window on a goroutine while app.Main drives the platform
// event loop on the main thread.
func Main(debugMode bool, cfg config.Config) {
	go func() {
		o := NewOrchestrator(cfg, debugMode)
		if err := o.Run(); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
