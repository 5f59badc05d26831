// Package game runs the showcase page as an ebiten game: the loader, the
// scrolling sections, the particle background, the cursor trail and the
// product viewer, all driven from one frame loop.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/product-showcase/internal/audio"
	"github.com/iburimskiy/product-showcase/internal/catalog"
	"github.com/iburimskiy/product-showcase/internal/config"
	"github.com/iburimskiy/product-showcase/internal/form"
	"github.com/iburimskiy/product-showcase/internal/page"
	"github.com/iburimskiy/product-showcase/internal/particles"
	"github.com/iburimskiy/product-showcase/internal/reveal"
	"github.com/iburimskiy/product-showcase/internal/scene"
	"github.com/iburimskiy/product-showcase/internal/trail"
	"github.com/iburimskiy/product-showcase/internal/viewer"
)

const (
	cardImgW = 160
	cardImgH = 140

	// selectDelay lets the smooth scroll to the gallery settle before a
	// product card's selection is applied.
	selectDelay = 500 * time.Millisecond
	spinEasing  = 0.1
)

type productCard struct {
	name  string
	entry *catalog.Entry
	scene *scene.Scene
	group *scene.Group
	img   *ebiten.Image
	view  *button

	rotX, rotY         float64
	tiltX, tiltY, lift float64
}

type packageCard struct {
	info packageInfo
	view *button

	tiltX, tiltY, lift float64
}

type Game struct {
	cfg     config.Config
	log     *slog.Logger
	player  *audio.Player
	dialogs prompter

	w, h         int
	nextW, nextH int

	now     time.Time
	start   time.Time
	loader  page.Loader
	ready   bool
	elapsed float64

	layout   *page.Layout
	geo      geometry
	observer *reveal.Observer
	counters []*reveal.Counter
	titleAt  time.Time

	field *particles.Field
	links []particles.Link
	trail *trail.Trail
	marks []trail.Marker

	lastX, lastY float64
	touchID      ebiten.TouchID
	touching     bool
	touchIDs     []ebiten.TouchID

	catalog  *catalog.Catalog
	viewer   *viewer.Viewer
	surface  *surface
	frame    *previewPanel
	panel    *detailPanel
	renderer *scene.Renderer
	viewImg  *ebiten.Image
	hero     *viewer.Hero
	heroImg  *ebiten.Image
	cardCam  *scene.Camera

	cards    []*productCard
	packages []*packageCard
	navLinks []*button
	menu     *button
	cta      *button
	controls []*button
	submit   *button

	pending   string
	pendingAt time.Time

	form  *form.Form
	fonts *fonts

	lastErr error
}

// New builds the page for cfg. player may be silent; dialogs default to
// native zenity dialogs when nil.
func New(cfg config.Config, log *slog.Logger, player *audio.Player, dialogs prompter) (*Game, error) {
	if log == nil {
		log = slog.Default()
	}
	if player == nil {
		player = audio.NewPlayer(log, cfg.Audio.Volume, config.SmoothingFactor)
	}
	if dialogs == nil {
		dialogs = zenityDialogs{}
	}
	fnts, err := newFonts()
	if err != nil {
		return nil, err
	}
	cat, err := catalogFromConfig(catalog.Default(), cfg.Products)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	g := &Game{
		cfg:      cfg,
		log:      log,
		player:   player,
		dialogs:  dialogs,
		w:        cfg.Window.Width,
		h:        cfg.Window.Height,
		nextW:    cfg.Window.Width,
		nextH:    cfg.Window.Height,
		now:      now,
		loader:   page.NewLoader(now, config.LoaderDelay),
		observer: reveal.NewObserver(log.With("component", "reveal")),
		trail:    trail.New(cfg.Trail.Markers, cfg.Trail.Delay()),
		catalog:  cat,
		surface:  &surface{},
		frame:    &previewPanel{},
		panel:    &detailPanel{},
		renderer: scene.NewRenderer(),
		heroImg:  ebiten.NewImage(heroModel, heroModel),
		form:     form.New(),
		fonts:    fnts,
	}

	var rng *rand.Rand
	if cfg.Particles.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Particles.Seed, cfg.Particles.Seed^0x9e3779b97f4a7c15))
	}
	pc := cfg.Particles
	g.field = particles.New(particles.Config{
		Count:           pc.Count,
		PointerRadius:   pc.PointerRadius,
		ConnectRadius:   pc.ConnectRadius,
		BoundsMargin:    pc.BoundsMargin,
		MaxOpacity:      pc.MaxOpacity,
		PointerStrength: pc.PointerStrength,
		NoLinks:         pc.DisableLinks,
	}, g.w, g.h, rng)

	for _, s := range stats {
		g.counters = append(g.counters, reveal.NewCounter(s.Target))
	}
	g.hero = viewer.NewHero(catalog.Hero(orRandom(rng)), catalog.Lights)
	g.cardCam = scene.NewCamera(45, float64(cardImgW)/cardImgH)
	g.cardCam.Eye = mgl64.Vec3{0, 1.5, 8}

	for _, name := range productCards {
		id, err := cat.Resolve(name)
		if err != nil {
			return nil, err
		}
		e, _ := cat.Get(id)
		s := scene.New()
		grp := e.Build()
		s.Add(grp)
		catalog.Lights(s)
		g.cards = append(g.cards, &productCard{
			name: name, entry: e, scene: s, group: grp,
			img:  ebiten.NewImage(cardImgW, cardImgH),
			view: &button{label: "Ver en 3D", target: name},
		})
	}
	for _, p := range packages {
		g.packages = append(g.packages, &packageCard{info: p, view: &button{label: "Ver en 3D", target: "package"}})
	}
	for _, e := range cat.Entries() {
		g.controls = append(g.controls, &button{label: controlLabel(e), target: e.ID})
	}
	g.cta = &button{label: "Ver Galeria 3D", target: secGallery}
	g.menu = &button{label: "Menu"}
	g.submit = &button{}
	g.form.OnSubmit = g.onSubmit

	g.relayout(g.w, g.h)
	for _, s := range g.layout.Sections() {
		g.navLinks = append(g.navLinks, &button{label: s.Title, target: s.ID})
	}

	v, err := viewer.New(viewer.Deps{
		Surface: g.surface,
		Scene:   sceneWithLights(),
		Catalog: cat,
		Frame:   g.frame,
		Panel:   g.panel,
		Logger:  log,
	}, viewer.Options{
		Default:     cfg.Viewer.Default,
		Sensitivity: cfg.Viewer.Sensitivity,
		PitchLimit:  cfg.Viewer.PitchLimit,
		AutoRotate:  cfg.Viewer.AutoRotate,
		Easing:      cfg.Viewer.Easing,
		BobAmount:   cfg.Viewer.BobAmount,
		OnSelect:    g.onSelect,
	})
	switch {
	case errors.Is(err, viewer.ErrUnavailable):
		log.Debug("gallery viewer skipped", "err", err)
	case err != nil:
		return nil, fmt.Errorf("start viewer: %w", err)
	default:
		g.viewer = v
	}
	g.syncControls()
	return g, nil
}

func orRandom(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func sceneWithLights() *scene.Scene {
	s := scene.New()
	catalog.Lights(s)
	return s
}

// catalogFromConfig applies the preview overrides of the config file.
func catalogFromConfig(c *catalog.Catalog, overrides []config.ProductConfig) (*catalog.Catalog, error) {
	for _, o := range overrides {
		if o.PreviewURL == "" {
			continue
		}
		id, err := c.Resolve(o.ID)
		if err != nil {
			return nil, err
		}
		url := o.PreviewURL
		if url == "-" {
			url = ""
		}
		if c, err = c.WithPreview(id, url); err != nil {
			return nil, err
		}
	}
	return c, nil
}

var controlLabels = map[string]string{
	"album":  "Album",
	"box":    "Caja",
	"usb":    "USB",
	"usbbox": "Caja USB",
	"prints": "Fotos",
}

// controlLabel is the short name of a product in the gallery control row.
func controlLabel(e *catalog.Entry) string {
	if l, ok := controlLabels[e.ID]; ok {
		return l
	}
	return e.Title
}

// relayout rebuilds the page for a new window size, keeping the scroll
// position and every reveal that already played.
func (g *Game) relayout(w, h int) {
	scroll := 0.0
	if g.layout != nil {
		scroll = g.layout.ScrollY()
	}
	g.w, g.h = w, h
	g.layout = page.NewLayout(float64(h), sections(float64(h))...)
	g.layout.ScrollBy(scroll)
	g.geo = buildGeometry(float64(w), g.layout, len(g.cards), len(g.packages), len(stats), len(contacts))
	g.field.Resize(w, h)

	g.surface.rect = g.geo.surface
	sw, sh := g.surface.Size()
	if g.viewImg != nil && (g.surface.empty() || g.viewImg.Bounds().Dx() != sw || g.viewImg.Bounds().Dy() != sh) {
		g.viewImg.Deallocate()
		g.viewImg = nil
	}
	if g.viewImg == nil && !g.surface.empty() {
		g.viewImg = ebiten.NewImage(sw, sh)
	}
	if g.viewer != nil {
		g.viewer.Resize(sw, sh)
	}
	g.observeTargets()
}

func (g *Game) observeTargets() {
	o := g.observer
	o.Observe(reveal.Target{ID: "hero-title", Top: g.geo.heroTitle.Y, Height: g.geo.heroTitle.H},
		reveal.Threshold(0.5), reveal.Entrance{})
	for id, r := range g.geo.headers {
		o.Observe(reveal.Target{ID: "header-" + id, Top: r.Y, Height: r.H}, reveal.Start(0.8),
			reveal.Entrance{FromY: 40, Duration: 800 * time.Millisecond, Ease: reveal.Power2Out})
	}
	delays := reveal.Stagger(len(g.geo.cards), 100*time.Millisecond)
	for i, r := range g.geo.cards {
		o.Observe(reveal.Target{ID: cardID(i), Top: r.Y, Height: r.H}, reveal.Start(0.85),
			reveal.Entrance{FromY: 80, Duration: 800 * time.Millisecond, Delay: delays[i], Ease: reveal.Power3Out})
	}
	o.Observe(reveal.Target{ID: "viewer", Top: g.geo.surface.Y, Height: g.geo.surface.H}, reveal.Start(0.8),
		reveal.Entrance{FromScale: 0.9, Duration: time.Second, Ease: reveal.Power3Out})
	delays = reveal.Stagger(len(g.geo.packages), 150*time.Millisecond)
	for i, r := range g.geo.packages {
		o.Observe(reveal.Target{ID: packageID(i), Top: r.Y, Height: r.H}, reveal.Start(0.85),
			reveal.Entrance{FromY: 60, Duration: 600 * time.Millisecond, Delay: delays[i], Ease: reveal.Power2Out})
	}
	if len(g.geo.stats) > 0 {
		r := g.geo.stats[0]
		o.Observe(reveal.Target{ID: "stats", Top: r.Y, Height: r.H}, reveal.Threshold(0.5), reveal.Entrance{})
	}
	delays = reveal.Stagger(len(g.geo.contacts), 100*time.Millisecond)
	for i, r := range g.geo.contacts {
		o.Observe(reveal.Target{ID: contactID(i), Top: r.Y, Height: r.H}, reveal.Start(0.85),
			reveal.Entrance{FromX: -50, Duration: 600 * time.Millisecond, Delay: delays[i], Ease: reveal.Power2Out})
	}
}

func cardID(i int) string    { return fmt.Sprintf("card-%d", i) }
func packageID(i int) string { return fmt.Sprintf("package-%d", i) }
func contactID(i int) string { return fmt.Sprintf("contact-%d", i) }

func (g *Game) Update() error {
	g.now = time.Now()
	if g.nextW != g.w || g.nextH != g.h {
		g.relayout(g.nextW, g.nextH)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if !g.ready {
		if !g.loader.Done(g.now) {
			return nil
		}
		g.ready = true
		g.start = g.now
		cx, cy := ebiten.CursorPosition()
		g.lastX, g.lastY = float64(cx), float64(cy)
		g.log.Info("page ready", "products", g.catalog.IDs(), "viewer", g.viewer != nil)
	}
	g.elapsed = g.now.Sub(g.start).Seconds()

	cx, cy := ebiten.CursorPosition()
	mx, my := float64(cx), float64(cy)
	if mx != g.lastX || my != g.lastY {
		g.trail.Move(mx, my, g.now)
		g.field.SetPointer(mx, my)
		g.lastX, g.lastY = mx, my
	}

	if err := g.handleKeys(); err != nil {
		g.lastErr = err
	}
	g.handleScroll()
	g.layout.Step()
	g.handlePointer(mx, my)
	g.handleTouch()
	g.runPending()

	for _, id := range g.observer.Update(g.layout.ScrollY(), g.layout.ViewportHeight(), g.now) {
		switch id {
		case "stats":
			for _, c := range g.counters {
				c.Start(g.now)
			}
		case "hero-title":
			g.titleAt = g.now
		}
	}
	for _, c := range g.counters {
		c.Tick(g.now)
	}
	if g.form.Tick(g.now) {
		g.log.Debug("contact form reset")
	}

	g.field.SetBoost(g.player.Level())
	g.field.Step()
	if g.viewer != nil {
		g.viewer.Tick(g.elapsed)
	}
	g.hero.Tick(g.elapsed)
	for _, c := range g.cards {
		c.group.Rotation = mgl64.Vec3{c.rotX, c.rotY + g.elapsed*0.3, 0}
	}
	return nil
}

func (g *Game) handleKeys() error {
	vh := g.layout.ViewportHeight()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.layout.ScrollBy(vh * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.layout.ScrollBy(-vh * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		return g.layout.ScrollTo(secHero)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		return g.layout.ScrollTo(secContact)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.layout.ScrollBy(config.ScrollStep / 4)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.layout.ScrollBy(-config.ScrollStep / 4)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.player.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		return g.openSoundtrack()
	}
	for i, k := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
		if i < len(g.controls) && inpututil.IsKeyJustPressed(k) {
			return g.selectProduct(g.controls[i].target)
		}
	}
	return nil
}

func (g *Game) handleScroll() {
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.layout.ScrollBy(-dy * config.ScrollStep)
	}
}

// place moves the page-fixed buttons to their current screen position. Card
// buttons follow their card in handlePointer.
func (g *Game) place() {
	l := g.layout
	x := float64(g.w) - pad
	g.menu.rect = page.Rect{X: x - 70, Y: 10, W: 70, H: config.NavHeight - 20}
	if g.compactNav() {
		for i, b := range g.navLinks {
			b.rect = page.Rect{X: x - 200, Y: config.NavHeight + float64(i)*40, W: 200, H: 40}
		}
	} else {
		x -= 80
		for i := len(g.navLinks) - 1; i >= 0; i-- {
			b := g.navLinks[i]
			w := text.Advance(b.label, g.fonts.label) + 24
			x -= w
			b.rect = page.Rect{X: x, Y: 10, W: w, H: config.NavHeight - 20}
			x -= 4
		}
	}
	g.cta.rect = toScreen(l, g.geo.heroCTA)
	for i, b := range g.controls {
		b.rect = toScreen(l, g.geo.controls[i])
	}
	g.submit.rect = toScreen(l, g.geo.submit)
}

// compactNav collapses the navigation links behind the menu toggle on
// narrow windows.
func (g *Game) compactNav() bool { return g.w < 1100 }

func (g *Game) navVisible() bool { return !g.compactNav() || g.layout.MenuOpen() }

func (g *Game) handlePointer(mx, my float64) {
	g.place()
	down := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	up := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	hover := false

	inNav := my < config.NavHeight || (g.layout.MenuOpen() && g.compactNav() && mx >= float64(g.w)-pad-200)
	if g.compactNav() && g.menu.update(mx, my, down, up) {
		g.layout.ToggleMenu()
	}
	hover = hover || (g.compactNav() && g.menu.hovered)
	if g.navVisible() {
		for _, b := range g.navLinks {
			if b.update(mx, my, down, up) {
				if err := g.layout.ScrollTo(b.target); err != nil {
					g.lastErr = err
				}
			}
			b.active = b.target == g.layout.Active()
			hover = hover || b.hovered
		}
	}
	if inNav {
		// The nav bar covers the content below it.
		down = false
		mx, my = -1, -1
	}

	if g.cta.update(mx, my, down, up) {
		_ = g.layout.ScrollTo(g.cta.target)
	}
	hover = hover || g.cta.hovered

	for i, c := range g.cards {
		card := toScreen(g.layout, g.geo.cards[i])
		c.tiltX, c.tiltY, c.lift, _ = page.Tilt(card, mx, my)
		ry, rx, ok := page.CardSpin(card, mx, my)
		if !ok {
			ry, rx = 0, 0
		}
		c.rotY += (mgl64.DegToRad(ry) - c.rotY) * spinEasing
		c.rotX += (mgl64.DegToRad(rx) - c.rotX) * spinEasing
		c.view.follow(toScreen(g.layout, g.geo.cardButtons[i]), g.observer.State(cardID(i), g.now), c.lift)
		if c.view.update(mx, my, down, up) {
			g.viewInGallery(c.name)
		}
		hover = hover || ok
	}
	for i, p := range g.packages {
		var ok bool
		p.tiltX, p.tiltY, p.lift, ok = page.Tilt(toScreen(g.layout, g.geo.packages[i]), mx, my)
		p.view.follow(toScreen(g.layout, g.geo.packageButtons[i]), g.observer.State(packageID(i), g.now), p.lift)
		if p.view.update(mx, my, down, up) {
			g.viewInGallery(p.view.target)
		}
		hover = hover || ok
	}
	for _, b := range g.controls {
		if b.update(mx, my, down, up) {
			if err := g.selectProduct(b.target); err != nil {
				g.lastErr = err
			}
		}
		hover = hover || b.hovered
	}
	if g.submit.update(mx, my, down, up) {
		if err := g.openContactForm(); err != nil {
			g.lastErr = err
		}
	}
	hover = hover || g.submit.hovered
	g.trail.SetHover(hover)

	if g.viewer == nil {
		return
	}
	surf := toScreen(g.layout, g.surface.rect)
	rot := g.viewer.Rotation()
	switch {
	case down && g.surface.visible && surf.Contains(mx, my):
		g.viewer.PointerDown(mx, my)
	case up:
		g.viewer.PointerUp()
	case rot.Dragging():
		cx, cy := ebiten.CursorPosition()
		g.viewer.PointerMove(float64(cx), float64(cy))
	}
}

// handleTouch maps a single touch on the viewer surface to the same drag
// calls as the mouse.
func (g *Game) handleTouch() {
	if g.viewer == nil {
		return
	}
	if g.touching {
		if inpututil.IsTouchJustReleased(g.touchID) {
			g.touching = false
			g.viewer.PointerUp()
			return
		}
		x, y := ebiten.TouchPosition(g.touchID)
		g.viewer.PointerMove(float64(x), float64(y))
		return
	}
	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	surf := toScreen(g.layout, g.surface.rect)
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if g.surface.visible && surf.Contains(float64(x), float64(y)) {
			g.touchID, g.touching = id, true
			g.viewer.PointerDown(float64(x), float64(y))
			return
		}
	}
}

// viewInGallery scrolls to the gallery and selects name once the scroll
// has had time to settle.
func (g *Game) viewInGallery(name string) {
	id, err := g.catalog.Resolve(name)
	if err != nil {
		g.lastErr = err
		return
	}
	if err := g.layout.ScrollTo(secGallery); err != nil {
		g.lastErr = err
		return
	}
	g.pending = id
	g.pendingAt = g.now.Add(selectDelay)
}

func (g *Game) runPending() {
	if g.pending == "" || g.now.Before(g.pendingAt) {
		return
	}
	id := g.pending
	g.pending = ""
	if err := g.selectProduct(id); err != nil {
		g.lastErr = err
	}
}

func (g *Game) selectProduct(id string) error {
	if g.viewer == nil {
		g.log.Debug("select ignored, no viewer", "id", id)
		return nil
	}
	if err := g.viewer.Select(id); err != nil {
		return err
	}
	g.syncControls()
	return nil
}

func (g *Game) syncControls() {
	sel := ""
	if g.viewer != nil {
		sel = g.viewer.Selected()
	}
	for _, b := range g.controls {
		b.active = b.target == sel
	}
}

func (g *Game) onSelect(id string, preview bool) {
	if g.player == nil || !g.cfg.Audio.Cues || !g.ready {
		return
	}
	if preview {
		g.player.Cue(audio.CuePreview)
		return
	}
	g.player.Cue(audio.CueSelect)
}

func (g *Game) onSubmit(e form.Entry) {
	g.log.Info("contact form submitted", "name", e.Name, "email", e.Email, "product", e.Product)
	if g.cfg.Audio.Cues {
		g.player.Cue(audio.CueSubmit)
	}
}

func (g *Game) openContactForm() error {
	if g.form.State() == form.Submitted {
		return nil
	}
	titles := make([]string, 0, len(g.catalog.Entries()))
	for _, e := range g.catalog.Entries() {
		titles = append(titles, e.Title)
	}
	entry, err := collectEntry(g.dialogs, titles)
	if errors.Is(err, errCanceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("contact form: %w", err)
	}
	err = g.form.Submit(entry, g.now)
	if errors.Is(err, form.ErrIncomplete) {
		g.log.Warn("contact form rejected", "err", err)
		if derr := g.dialogs.Error("Contacto", "Por favor completa tu nombre y mensaje."); derr != nil && !errors.Is(derr, errCanceled) {
			return derr
		}
		return nil
	}
	return err
}

func (g *Game) openSoundtrack() error {
	path, err := pickSoundtrack(g.dialogs, audio.Patterns)
	if err != nil || path == "" {
		return err
	}
	if err := g.player.PlaySoundtrack(path); err != nil {
		return err
	}
	g.lastErr = nil
	return nil
}

// PlaySoundtrack starts the configured soundtrack, if any.
func (g *Game) PlaySoundtrack(path string) error {
	if path == "" {
		return nil
	}
	return g.player.PlaySoundtrack(path)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.nextW, g.nextH = outsideWidth, outsideHeight
	}
	return g.nextW, g.nextH
}

// Close drops the pending form revert and releases the audio device.
func (g *Game) Close() {
	g.form.Cancel()
	g.player.Close()
}
