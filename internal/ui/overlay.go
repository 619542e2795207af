// Package ui draws the HUD over the cube: the facing-face label, the info
// panel, navigation buttons and the startup loader.
package ui

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/venture-cube/internal/content"
	"github.com/Faultbox/venture-cube/internal/cube"
	"github.com/Faultbox/venture-cube/internal/engine/ui2d"
	"github.com/Faultbox/venture-cube/internal/logger"
	"github.com/Faultbox/venture-cube/internal/ui/layout"
)

// Action is a navigation request raised by the overlay.
type Action int

const (
	ActionNone Action = iota
	ActionAbout
	ActionContact
)

const (
	panelID    = "info"
	loaderFade = 0.5 // seconds
	labelFade  = 6.0 // alpha units per second
	statMinW   = 120
)

// Options configure the overlay.
type Options struct {
	LoaderDuration time.Duration
	ShowFPS        bool
}

// Overlay owns the 2D UI context and the state of every HUD element.
type Overlay struct {
	ctx   *ui2d.Context
	table *content.Table
	opts  Options
	log   *zap.Logger

	panel     content.Panel
	panelOpen bool

	elapsed    float32
	labelAlpha float32
	labelFace  cube.FaceID
}

// New creates the overlay for a window of the given size in points.
func New(width, height int, table *content.Table, opts Options) (*Overlay, error) {
	ctx, err := ui2d.NewContext(width, height)
	if err != nil {
		return nil, fmt.Errorf("create ui context: %w", err)
	}
	return &Overlay{
		ctx:   ctx,
		table: table,
		opts:  opts,
		log:   logger.Named("ui"),
	}, nil
}

// Close releases GL resources.
func (o *Overlay) Close() {
	o.ctx.Close()
}

// Resize updates the overlay projection.
func (o *Overlay) Resize(width, height int) {
	o.ctx.Resize(width, height)
}

// Captures reports whether the point is covered by the UI, in which case
// the pointer event must not reach the cube.
func (o *Overlay) Captures(x, y float32) bool {
	if o.loaderAlpha() >= 1 {
		return true
	}
	return o.ctx.Captures(x, y)
}

// PointerMove records the pointer position.
func (o *Overlay) PointerMove(x, y float32) {
	in := o.ctx.Input()
	in.MouseX, in.MouseY = x, y
}

// PointerDown records a press at the position.
func (o *Overlay) PointerDown(x, y float32) {
	in := o.ctx.Input()
	in.MouseX, in.MouseY = x, y
	in.MouseLeftDown = true
	in.MouseLeftClicked = true
}

// PointerUp records a release.
func (o *Overlay) PointerUp() {
	o.ctx.Input().MouseLeftDown = false
}

// OpenPanel shows the info panel for a face. It returns false when the face
// has no content.
func (o *Overlay) OpenPanel(face cube.FaceID) bool {
	p, ok := o.table.BuildPanel(face)
	if !ok {
		o.log.Warn("no content for face", zap.Stringer("face", face))
		return false
	}
	o.panel = p
	o.panelOpen = true
	o.ctx.SetWindowOpen(panelID, true)
	o.log.Debug("panel opened", zap.Stringer("face", face))
	return true
}

// ClosePanel hides the info panel.
func (o *Overlay) ClosePanel() {
	if !o.panelOpen {
		return
	}
	o.panelOpen = false
	o.ctx.SetWindowOpen(panelID, false)
	o.log.Debug("panel closed", zap.Stringer("face", o.panel.Face))
}

// PanelOpen returns the face of the open panel.
func (o *Overlay) PanelOpen() (cube.FaceID, bool) {
	return o.panel.Face, o.panelOpen
}

// Draw renders one UI frame. facing is the face currently toward the camera
// and ok reports whether any face is facing at all. fps is shown when
// enabled in the options.
func (o *Overlay) Draw(dt float32, facing cube.FaceID, ok bool, fps float64) Action {
	o.elapsed += dt
	o.ctx.Begin()
	defer o.ctx.End()

	w, h := o.ctx.GetScreenSize()
	o.drawLabel(dt, w, h, facing, ok)
	action := o.drawNav(w, h)
	if o.panelOpen {
		o.drawPanel(w, h)
	}
	if o.opts.ShowFPS {
		o.ctx.Renderer().DrawText(w-90, 8, fmt.Sprintf("%5.1f fps", fps), ui2d.BodyScale, ui2d.ColorTextDim)
	}
	o.drawLoader(w, h)
	return action
}

func (o *Overlay) drawLabel(dt, w, h float32, facing cube.FaceID, ok bool) {
	if ok {
		o.labelFace = facing
		o.labelAlpha = min(o.labelAlpha+labelFade*dt, 1)
	} else {
		o.labelAlpha = max(o.labelAlpha-labelFade*dt, 0)
	}
	if o.labelAlpha <= 0 {
		return
	}
	e, found := o.table.Entry(o.labelFace)
	if !found {
		return
	}

	r := layout.Label(w, h)
	cx := r.X + r.W/2
	name := ui2d.FromRGB(e.Color.Vec3().Arr()).Fade(o.labelAlpha)
	o.ctx.TextCentered(cx, r.Y+8, e.Name, ui2d.TitleScale*1.5, name)
	o.ctx.TextCentered(cx, r.Y+r.H-22, e.Tagline, ui2d.BodyScale, ui2d.ColorTextDim.Fade(o.labelAlpha))
}

func (o *Overlay) drawNav(w, h float32) Action {
	buttons := layout.NavButtons(w, h)
	action := ActionNone
	if o.ctx.ButtonAt("nav_about", toRect(buttons[0]), "About", ui2d.ColorHighlight) {
		action = ActionAbout
	}
	if o.ctx.ButtonAt("nav_contact", toRect(buttons[1]), "Contact", ui2d.ColorHighlight) {
		action = ActionContact
	}
	return action
}

func (o *Overlay) drawPanel(w, h float32) {
	r := layout.Panel(w, h)
	accent := ui2d.FromRGB(o.panel.Color.Vec3().Arr())
	if !o.ctx.BeginWindow(panelID, r.X, r.Y, r.W, r.H, o.panel.Title, accent) {
		// Closed by its button this frame.
		o.panelOpen = false
		return
	}
	defer o.ctx.EndWindow()

	if o.panel.Tagline != "" {
		o.ctx.Label(o.panel.Tagline, ui2d.BodyScale, ui2d.ColorTextDim)
		o.ctx.Separator()
	}
	for _, s := range o.panel.Sections {
		if s.Heading != "" {
			o.ctx.Label(s.Heading, ui2d.BodyScale, accent)
		}
		switch s.Kind {
		case content.SectionStats:
			colW, _ := layout.Columns(r.W-32, statMinW, len(s.Stats))
			for _, st := range s.Stats {
				o.ctx.Stat(st.Value, st.Label, colW, accent)
			}
			o.ctx.Spacer(o.ctx.StatRowHeight())
		case content.SectionParagraph:
			o.ctx.LabelWrapped(s.Text, ui2d.BodyScale, ui2d.ColorText)
		case content.SectionTags:
			o.ctx.Tags(s.Tags, accent)
		case content.SectionTimeline:
			for _, item := range s.Timeline {
				o.ctx.Label(item.When, ui2d.BodyScale, ui2d.ColorTextDim)
				o.ctx.Label(item.Title, ui2d.BodyScale, ui2d.ColorText)
				o.ctx.LabelWrapped(item.Detail, ui2d.BodyScale, ui2d.ColorTextDim)
			}
		case content.SectionLinks:
			for _, l := range s.Links {
				o.ctx.Label(l.Label, ui2d.BodyScale, accent)
				o.ctx.Label(l.URL, ui2d.BodyScale, ui2d.ColorTextDim)
				o.ctx.Spacer(6)
			}
		}
		o.ctx.Spacer(8)
	}
}

func (o *Overlay) loaderAlpha() float32 {
	return layout.LoaderAlpha(o.elapsed, float32(o.opts.LoaderDuration.Seconds()), loaderFade)
}

func (o *Overlay) drawLoader(w, h float32) {
	a := o.loaderAlpha()
	if a <= 0 {
		return
	}
	o.ctx.Block(ui2d.Rect{W: w, H: h})
	o.ctx.Renderer().DrawRect(0, 0, w, h, ui2d.ColorBackdrop.WithAlpha(a))
	o.ctx.TextCentered(w/2, h/2-20, "VENTURE CUBE", ui2d.TitleScale, ui2d.ColorText.Fade(a))

	hold := float32(o.opts.LoaderDuration.Seconds())
	progress := float32(1)
	if hold > 0 {
		progress = o.elapsed / hold
	}
	o.ctx.ProgressBar(ui2d.Rect{X: w/2 - 80, Y: h/2 + 10, W: 160, H: 4}, progress, ui2d.ColorHighlight.Fade(a))
}

func toRect(r layout.Rect) ui2d.Rect {
	return ui2d.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
