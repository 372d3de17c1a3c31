package stage

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/talkscene/internal/application/state"
	"github.com/younwookim/talkscene/internal/application/system"
	"github.com/younwookim/talkscene/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorSky       = color.RGBA{48, 56, 88, 255}
	colorGround    = color.RGBA{70, 90, 60, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorLeg       = color.RGBA{60, 140, 60, 255}
	colorNPC       = color.RGBA{200, 160, 90, 255}
	colorCloud     = color.RGBA{90, 90, 110, 255}
	colorBolt      = color.RGBA{255, 250, 180, 255}
	colorFlash     = color.RGBA{255, 255, 255, 60}
	colorButton    = color.RGBA{60, 60, 100, 255}
	colorButtonHot = color.RGBA{90, 90, 150, 255}
	colorText      = color.RGBA{240, 240, 240, 255}
	colorDialogBG  = color.RGBA{0, 0, 0, 200}
	colorCollider  = color.RGBA{255, 0, 0, 255}
)

// Draw renders the last frame (implements scene.Scene)
func (s *Stage) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	f := s.frame
	if f.Mode == state.ModeMenu {
		s.drawMenu(screen, f)
		return
	}

	s.drawWorld(screen, f)
	if f.ShowColliders {
		s.drawColliders(screen, f)
	}
	s.drawUI(screen, f)
}

func (s *Stage) drawMenu(screen *ebiten.Image, f system.Frame) {
	w := float64(s.cfg.Display.ScreenWidth)
	h := float64(s.cfg.Display.ScreenHeight)

	s.drawText(screen, f.MenuTitle, s.fonts.title, w/2, h/4, text.AlignCenter)

	b := f.PlayButton
	c := colorButton
	cx, cy := ebiten.CursorPosition()
	if b.Contains(entity.Vec2{X: float64(cx), Y: float64(cy)}) {
		c = colorButtonHot
	}
	ebitenutil.DrawRect(screen, b.X, b.Y, b.W, b.H, c)
	s.drawText(screen, f.ButtonLabel, s.fonts.body, b.X+b.W/2, b.Y+b.H/2-bodySize/2, text.AlignCenter)
}

func (s *Stage) drawWorld(screen *ebiten.Image, f system.Frame) {
	cam := f.Camera
	w := s.cfg.World.Width
	h := s.cfg.World.Height

	s.fillWorldRect(screen, cam, entity.Rect{X: 0, Y: 0, W: w, H: h}, colorSky)
	s.fillWorldRect(screen, cam, f.GroundCollider, colorGround)

	// Storm cloud over the lightning source
	src := f.EffectSource
	s.fillWorldRect(screen, cam, entity.Rect{X: src.X - 80, Y: h - 120, W: 160, H: 60}, colorCloud)
	if f.EffectVisible {
		ebitenutil.DrawRect(screen, 0, 0, float64(s.cfg.Display.ScreenWidth), float64(s.cfg.Display.ScreenHeight), colorFlash)
		s.drawBolt(screen, cam, entity.Vec2{X: src.X, Y: h - 120}, src)
	}

	s.fillWorldRect(screen, cam, entity.Rect{
		X: f.NPCPosition.X, Y: f.NPCPosition.Y, W: s.cfg.NPC.Width, H: s.cfg.NPC.Height,
	}, colorNPC)

	s.drawPlayer(screen, f)
}

func (s *Stage) drawPlayer(screen *ebiten.Image, f system.Frame) {
	body := f.PlayerCollider
	s.fillWorldRect(screen, f.Camera, body, colorPlayer)

	// Walk cycle: legs alternate with the animation column
	legW := body.W / 3
	stride := float64(f.Animation.Column%2) * legW / 2
	front := entity.Rect{X: body.X + stride, Y: body.Y, W: legW, H: body.H / 4}
	back := entity.Rect{X: body.X + body.W - legW - stride, Y: body.Y, W: legW, H: body.H / 4}
	s.fillWorldRect(screen, f.Camera, front, colorLeg)
	s.fillWorldRect(screen, f.Camera, back, colorLeg)

	// Facing marker
	eyeX := body.X + body.W - 12
	if f.FacingLeft {
		eyeX = body.X + 4
	}
	s.fillWorldRect(screen, f.Camera, entity.Rect{X: eyeX, Y: body.Y + body.H - 24, W: 8, H: 8}, colorText)
}

func (s *Stage) drawBolt(screen *ebiten.Image, cam entity.Camera, from, to entity.Vec2) {
	const segments = 5
	prevX, prevY := cam.WorldToScreen(from)
	for i := 1; i <= segments; i++ {
		t := float64(i) / segments
		p := entity.Vec2{X: from.X + (to.X-from.X)*t, Y: from.Y + (to.Y-from.Y)*t}
		if i < segments {
			p.X += float64((i%2)*2-1) * 15
		}
		x, y := cam.WorldToScreen(p)
		vector.StrokeLine(screen, float32(prevX), float32(prevY), float32(x), float32(y), 3, colorBolt, true)
		prevX, prevY = x, y
	}
}

func (s *Stage) drawColliders(screen *ebiten.Image, f system.Frame) {
	for _, r := range []entity.Rect{f.PlayerCollider, f.GroundCollider, f.NPCCollider} {
		x, y, w, h := screenRect(f.Camera, r)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, colorCollider, false)
	}
}

func (s *Stage) drawUI(screen *ebiten.Image, f system.Frame) {
	sw := float64(s.cfg.Display.ScreenWidth)
	sh := float64(s.cfg.Display.ScreenHeight)

	if f.ShowTalkPrompt {
		top := entity.Vec2{X: f.NPCCollider.X + f.NPCCollider.W/2, Y: f.NPCCollider.Y + f.NPCCollider.H + 30}
		x, y := f.Camera.WorldToScreen(top)
		s.drawText(screen, f.TalkPrompt, s.fonts.prompt, x, y, text.AlignCenter)
	}

	if f.DialogueVisible {
		boxH := sh / 4
		ebitenutil.DrawRect(screen, 20, sh-boxH-20, sw-40, boxH, colorDialogBG)
		s.drawText(screen, f.Speaker+": "+f.DialogueText, s.fonts.body, 40, sh-boxH, text.AlignStart)
	}
}

func (s *Stage) drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorText)
	op.PrimaryAlign = align
	text.Draw(screen, str, face, op)
}

func (s *Stage) fillWorldRect(screen *ebiten.Image, cam entity.Camera, r entity.Rect, c color.Color) {
	x, y, w, h := screenRect(cam, r)
	ebitenutil.DrawRect(screen, x, y, w, h, c)
}

// screenRect converts a world rectangle to a screen rectangle (top-left origin)
func screenRect(cam entity.Camera, r entity.Rect) (x, y, w, h float64) {
	x, y = cam.WorldToScreen(entity.Vec2{X: r.X, Y: r.Y + r.H})
	return x, y, r.W / cam.Zoom, r.H / cam.Zoom
}
