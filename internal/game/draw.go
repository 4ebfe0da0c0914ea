package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/boss"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/geom"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/world"
)

func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 18, 255})

	w := g.enc.World
	rd := g.enc.Controller.RenderData()

	// camera centered on player
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float32(sw)/2 - w.Player.Pos.X
	camY := float32(sh)/2 - w.Player.Pos.Y

	vector.FillRect(screen, camX, camY, w.W, w.H, color.RGBA{30, 30, 36, 255}, false)

	g.drawHazards(screen, w, rd, camX, camY)
	g.drawEntities(screen, w, rd, camX, camY)
	g.drawHUD(screen, w, rd)
	g.drawOverlays(screen, w, sw, sh)
}

func (g *Game) drawHazards(screen *ebiten.Image, w *world.World, rd boss.RenderData, camX, camY float32) {
	// floor grid under everything else
	if rd.GridCols > 0 {
		for i, st := range rd.Tiles {
			var clr color.RGBA
			switch st {
			case boss.TileWarning:
				clr = color.RGBA{120, 80, 20, 90}
			case boss.TileHot:
				clr = color.RGBA{200, 70, 20, 140}
			case boss.TileSafe:
				clr = color.RGBA{30, 110, 60, 110}
			default:
				continue
			}
			c := i % rd.GridCols
			r := i / rd.GridCols
			vector.FillRect(screen,
				camX+float32(c)*rd.TileSize, camY+float32(r)*rd.TileSize,
				rd.TileSize-1, rd.TileSize-1, clr, false)
		}
	}

	if rd.SafeRadius > 0 {
		vector.StrokeCircle(screen, camX+w.ArenaCenter.X, camY+w.ArenaCenter.Y,
			rd.SafeRadius, 3, color.RGBA{90, 160, 220, 200}, false)
	}

	for _, z := range rd.Zones {
		clr := color.RGBA{170, 60, 60, 70}
		if z.Active() {
			clr = color.RGBA{220, 60, 60, 130}
		}
		vector.FillCircle(screen, camX+z.Pos.X, camY+z.Pos.Y, z.R, clr, false)
	}
	for _, v := range rd.Voids {
		clr := color.RGBA{90, 40, 140, 70}
		if v.Active() {
			clr = color.RGBA{140, 50, 200, 140}
		}
		vector.FillCircle(screen, camX+v.Pos.X, camY+v.Pos.Y, v.R, clr, false)
	}
	for _, t := range rd.Trail {
		vector.FillCircle(screen, camX+t.Pos.X, camY+t.Pos.Y, t.R, color.RGBA{60, 160, 60, 110}, false)
	}
	for _, f := range rd.Fields {
		clr := color.RGBA{70, 130, 200, 60}
		if f.Strength < 0 {
			clr = color.RGBA{200, 130, 70, 60}
		}
		vector.StrokeCircle(screen, camX+f.Pos.X, camY+f.Pos.Y, f.R, 2, clr, false)
	}
	for _, gw := range rd.Wells {
		vector.StrokeCircle(screen, camX+gw.Pos.X, camY+gw.Pos.Y, gw.R, 2, color.RGBA{140, 90, 220, 120}, false)
		vector.FillCircle(screen, camX+gw.Pos.X, camY+gw.Pos.Y, 8, color.RGBA{140, 90, 220, 220}, false)
	}

	for _, b := range rd.Beams {
		clr := color.RGBA{230, 210, 80, 70}
		if b.Active() {
			clr = color.RGBA{240, 220, 60, 220}
		}
		tip := rd.BossPos.Add(geom.FromAngle(b.Angle).Mul(b.Length))
		vector.StrokeLine(screen, camX+rd.BossPos.X, camY+rd.BossPos.Y,
			camX+tip.X, camY+tip.Y, b.HalfWidth*2, clr, false)
	}
	for _, r := range rd.Rifts {
		clr := color.RGBA{90, 200, 230, 60}
		if r.Active() {
			clr = color.RGBA{90, 200, 230, 180}
		}
		a := w.ArenaCenter.Add(geom.FromAngle(r.Angle).Mul(r.Length))
		b := w.ArenaCenter.Sub(geom.FromAngle(r.Angle).Mul(r.Length))
		vector.StrokeLine(screen, camX+a.X, camY+a.Y, camX+b.X, camY+b.Y,
			r.HalfWidth*2, clr, false)
	}
	if rd.Ring != nil {
		for n := 0; n < rd.Ring.Blades; n++ {
			ang := rd.Ring.Angle + float32(n)*2*3.14159265/float32(rd.Ring.Blades)
			pos := rd.BossPos.Add(geom.FromAngle(ang).Mul(rd.Ring.Radius))
			vector.FillCircle(screen, camX+pos.X, camY+pos.Y, rd.Ring.BladeR, color.RGBA{230, 90, 40, 220}, false)
		}
	}
}

func (g *Game) drawEntities(screen *ebiten.Image, w *world.World, rd boss.RenderData, camX, camY float32) {
	for _, o := range w.Obstacles {
		vector.FillRect(screen, camX+o.Pos.X, camY+o.Pos.Y, o.W, o.H, color.RGBA{90, 85, 70, 255}, false)
	}

	for _, seg := range rd.Segments {
		vector.FillCircle(screen, camX+seg.X, camY+seg.Y, 14, color.RGBA{150, 60, 130, 255}, false)
	}
	for _, sub := range rd.SubWorms {
		for _, seg := range sub.Segments {
			vector.FillCircle(screen, camX+seg.X, camY+seg.Y, 12, color.RGBA{150, 60, 130, 255}, false)
		}
		vector.FillCircle(screen, camX+sub.Head.X, camY+sub.Head.Y, 14, color.RGBA{190, 80, 160, 255}, false)
	}

	for _, e := range w.Enemies {
		clr := enemyColor(e)
		if e.HitT > 0 {
			clr = color.RGBA{255, 220, 220, 255}
		}
		if sprite := g.assets.Get("boss_" + g.kind.String()); sprite != nil && e.Kind.IsBoss() {
			op := &ebiten.DrawImageOptions{}
			bw := float32(sprite.Bounds().Dx())
			op.GeoM.Scale(float64(e.R*2/bw), float64(e.R*2/bw))
			op.GeoM.Translate(float64(camX+e.Pos.X-e.R), float64(camY+e.Pos.Y-e.R))
			screen.DrawImage(sprite, op)
			continue
		}
		vector.FillCircle(screen, camX+e.Pos.X, camY+e.Pos.Y, e.R, clr, false)
	}

	for _, p := range w.Projectiles {
		clr := color.RGBA{240, 160, 60, 255}
		if !p.FromEnemy {
			clr = color.RGBA{120, 220, 240, 255}
		}
		vector.FillCircle(screen, camX+p.Pos.X, camY+p.Pos.Y, p.R, clr, false)
	}

	for _, b := range w.Bursts {
		vector.StrokeCircle(screen, camX+b.Pos.X, camY+b.Pos.Y, float32(b.Count), 2, color.RGBA{250, 240, 180, 200}, false)
	}

	pclr := color.RGBA{80, 200, 120, 255}
	if w.Player.HurtTimer > 0 {
		pclr = color.RGBA{200, 240, 200, 255}
	}
	if sprite := g.assets.Get("player"); sprite != nil {
		op := &ebiten.DrawImageOptions{}
		pw := float32(sprite.Bounds().Dx())
		op.GeoM.Scale(float64(w.Player.R*2/pw), float64(w.Player.R*2/pw))
		op.GeoM.Translate(float64(camX+w.Player.Pos.X-w.Player.R), float64(camY+w.Player.Pos.Y-w.Player.R))
		screen.DrawImage(sprite, op)
	} else {
		vector.FillCircle(screen, camX+w.Player.Pos.X, camY+w.Player.Pos.Y, w.Player.R, pclr, false)
	}
}

func enemyColor(e world.Enemy) color.RGBA {
	switch {
	case e.Kind == world.EnemyPylon:
		return color.RGBA{100, 180, 230, 255}
	case e.Kind.IsBoss() && e.Invulnerable:
		return color.RGBA{120, 120, 200, 255}
	case e.Kind.IsBoss():
		return color.RGBA{200, 60, 200, 255}
	case e.Kind == world.EnemyStinger:
		return color.RGBA{230, 150, 60, 255}
	default:
		return color.RGBA{220, 80, 80, 255}
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, w *world.World, rd boss.RenderData) {
	bossHP := float32(0)
	if b := w.FindEnemy(g.enc.Controller.BossID()); b != nil {
		bossHP = 100 * b.HP / b.MaxHP
	}
	hud := fmt.Sprintf(
		"HP: %.0f/%.0f\nBoss: %s  %.0f%%  phase %d %s\nTime: %.1fs",
		w.Player.HP, w.Player.MaxHP,
		rd.Kind, bossHP, rd.Phase, rd.Mode,
		w.TimeSurvived,
	)
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
}

func (g *Game) drawOverlays(screen *ebiten.Image, w *world.World, sw, sh int) {
	if w.GameOver || w.Victory {
		vector.FillRect(screen, 0, 0, float32(sw), float32(sh), color.RGBA{0, 0, 0, 180}, false)
		msg := "DEFEATED"
		if w.Victory {
			msg = "BOSS DOWN"
		}
		ebitenutil.DebugPrintAt(screen, msg, 8, 90)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", 8, 110)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time: %.1fs", w.TimeSurvived), 8, 130)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Damage Taken: %.0f", w.Stats.DamageTaken), 8, 150)
		return
	}

	if w.Paused {
		vector.FillRect(screen, 0, 0, float32(sw), float32(sh), color.RGBA{0, 0, 0, 140}, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED", 8, 90)
		ebitenutil.DebugPrintAt(screen, "Press the space bar to resume", 8, 110)
	}
}
