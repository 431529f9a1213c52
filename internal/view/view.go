// Package view renders an interactive map of a procedural world. Scanlines
// are sampled through the batch query API and painted into an offscreen
// image, which is re-rendered only when the view, mode, or world changes.
package view

import (
	"fmt"
	"image/color"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/daver64/rworld/pkg/world"
)

// Mode selects which field the map colors by.
type Mode uint8

const (
	ModeBiomes Mode = iota
	ModeElevation
	ModeTemperature
	ModePrecipitation
	ModeClouds
	ModeRivers
	ModeCoal
	ModeIron
	ModeOil
	ModeInsolation
	ModeVegetation
	ModeSoilFertility
	ModePressure
)

func (m Mode) String() string {
	switch m {
	case ModeBiomes:
		return "Biomes"
	case ModeElevation:
		return "Elevation"
	case ModeTemperature:
		return "Temperature"
	case ModePrecipitation:
		return "Annual Precipitation"
	case ModeClouds:
		return "Cloud Cover"
	case ModeRivers:
		return "Rivers"
	case ModeCoal:
		return "Coal"
	case ModeIron:
		return "Iron"
	case ModeOil:
		return "Oil"
	case ModeInsolation:
		return "Insolation"
	case ModeVegetation:
		return "Vegetation"
	case ModeSoilFertility:
		return "Soil Fertility"
	case ModePressure:
		return "Pressure"
	default:
		return "Unknown"
	}
}

// fields needed from a batch query per mode. Modes that paint water
// separately also request height.
func (m Mode) fields() []world.Field {
	switch m {
	case ModeBiomes:
		return []world.Field{world.FieldBiome}
	case ModeElevation:
		return []world.Field{world.FieldHeight}
	case ModeTemperature:
		return []world.Field{world.FieldTemperature}
	case ModePrecipitation:
		return []world.Field{world.FieldPrecipitation}
	case ModeClouds:
		return []world.Field{world.FieldCloudDensity}
	case ModeRivers:
		return []world.Field{world.FieldHeight, world.FieldFlowAccumulation, world.FieldRiverWidth}
	case ModeCoal:
		return []world.Field{world.FieldHeight, world.FieldCoal}
	case ModeIron:
		return []world.Field{world.FieldHeight, world.FieldIron}
	case ModeOil:
		return []world.Field{world.FieldHeight, world.FieldOil}
	case ModeInsolation:
		return []world.Field{world.FieldInsolation}
	case ModeVegetation:
		return []world.Field{world.FieldHeight, world.FieldVegetation}
	case ModeSoilFertility:
		return []world.Field{world.FieldHeight, world.FieldSoilFertility}
	case ModePressure:
		return []world.Field{world.FieldHeight, world.FieldPressure}
	default:
		return nil
	}
}

// timeDependent reports whether the mode's colors change with the hour and
// therefore need periodic re-rendering while time runs.
func (m Mode) timeDependent() bool {
	return m == ModeInsolation || m == ModePressure
}

var modeBindings = []struct {
	key  ebiten.Key
	mode Mode
}{
	{ebiten.KeyDigit1, ModeBiomes},
	{ebiten.KeyDigit2, ModeElevation},
	{ebiten.KeyDigit3, ModeTemperature},
	{ebiten.KeyDigit4, ModePrecipitation},
	{ebiten.KeyDigit5, ModeClouds},
	{ebiten.KeyDigit6, ModeRivers},
	{ebiten.KeyDigit7, ModeCoal},
	{ebiten.KeyDigit8, ModeIron},
	{ebiten.KeyDigit9, ModeOil},
	{ebiten.KeyDigit0, ModeInsolation},
	{ebiten.KeyV, ModeVegetation},
	{ebiten.KeyF, ModeSoilFertility},
	{ebiten.KeyP, ModePressure},
}

const (
	minTimeSpeed = 0.1
	maxTimeSpeed = 100.0

	panelX      = 8
	panelY      = 8
	panelWidth  = 344
	lineHeight  = 14
	textPadding = 10
)

// Game is the ebiten front end over a world.
type Game struct {
	world *world.World

	mode     Mode
	view     viewport
	hour     float64
	speed    float64
	paused   bool
	showInfo bool

	width  int
	height int
	img    *ebiten.Image
	buf    []byte
	pixel  *ebiten.Image

	dirty        bool
	renderedHour float64

	dragging bool
	dragX    int
	dragY    int
}

// NewGame sets up a viewer over w with a logical resolution of width by
// height pixels, starting on the biome map at noon.
func NewGame(w *world.World, width, height int) *Game {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)

	return &Game{
		world:    w,
		mode:     ModeBiomes,
		view:     viewport{centerLon: 0, centerLat: 0, zoom: 1},
		hour:     12,
		speed:    1,
		showInfo: true,
		width:    width,
		height:   height,
		img:      ebiten.NewImage(width, height),
		buf:      make([]byte, 4*width*height),
		pixel:    pixel,
		dirty:    true,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, b := range modeBindings {
		if inpututil.IsKeyJustPressed(b.key) && g.mode != b.mode {
			g.mode = b.mode
			g.dirty = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.showInfo = !g.showInfo
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.speed = math.Min(g.speed*2, maxTimeSpeed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.speed = math.Max(g.speed/2, minTimeSpeed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.shiftHour(-0.5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.shiftHour(0.5)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyComma) {
		g.shiftDay(-30)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.shiftDay(30)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		cfg := g.world.Config()
		cfg.Seed = time.Now().UnixNano()
		g.world.SetConfig(cfg)
		g.dirty = true
	}

	g.handlePanKeys()
	g.handleMouse()

	if !g.paused {
		g.hour = math.Mod(g.hour+g.speed/float64(ebiten.TPS()), 24)
	}

	if g.dirty || (g.mode.timeDependent() && math.Abs(g.hour-g.renderedHour) >= 0.1) {
		g.render()
		g.dirty = false
	}
	return nil
}

func (g *Game) shiftHour(delta float64) {
	g.hour = math.Mod(math.Mod(g.hour+delta, 24)+24, 24)
	if g.mode.timeDependent() {
		g.dirty = true
	}
}

func (g *Game) shiftDay(delta int) {
	cfg := g.world.Config()
	cfg.DayOfYear = ((cfg.DayOfYear+delta)%365 + 365) % 365
	g.world.SetConfig(cfg)
	g.dirty = true
}

func (g *Game) handlePanKeys() {
	stepLon := 36 / g.view.zoom
	stepLat := 18 / g.view.zoom
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.view = g.view.pan(-stepLon, 0)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.view = g.view.pan(stepLon, 0)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.view = g.view.pan(0, stepLat)
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.view = g.view.pan(0, -stepLat)
		g.dirty = true
	}
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.view = g.view.zoomAt(mx, my, g.width, g.height, math.Pow(1.2, dy))
		g.dirty = true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragging = true
		g.dragX, g.dragY = mx, my
	}
	if g.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if mx != g.dragX || my != g.dragY {
			dLon := -float64(mx-g.dragX) * 360 / g.view.zoom / float64(g.width)
			dLat := float64(my-g.dragY) * 180 / g.view.zoom / float64(g.height)
			g.view = g.view.pan(dLon, dLat)
			g.dragX, g.dragY = mx, my
			g.dirty = true
		}
	} else {
		g.dragging = false
	}
}

// render repaints the offscreen map. Rows are independent, so they are
// striped across the available cores; the world is safe for concurrent
// reads.
func (g *Game) render() {
	fields := g.mode.fields()
	workers := runtime.GOMAXPROCS(0)
	if workers > g.height {
		workers = g.height
	}

	var wg sync.WaitGroup
	for wkr := 0; wkr < workers; wkr++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			points := make([]world.Point, g.width)
			for y := start; y < g.height; y += workers {
				g.renderRow(y, points, fields)
			}
		}(wkr)
	}
	wg.Wait()

	g.img.WritePixels(g.buf)
	g.renderedHour = g.hour
}

func (g *Game) renderRow(y int, points []world.Point, fields []world.Field) {
	for x := 0; x < g.width; x++ {
		points[x].Lon, points[x].Lat = g.view.screenToWorld(x, y, g.width, g.height)
	}
	res := g.world.Batch(points, g.hour, fields...)

	row := g.buf[y*g.width*4 : (y+1)*g.width*4]
	for x := 0; x < g.width; x++ {
		c := g.colorFor(res, x)
		row[x*4+0] = c.R
		row[x*4+1] = c.G
		row[x*4+2] = c.B
		row[x*4+3] = c.A
	}
}

var oceanColor = color.RGBA{0, 105, 148, 255}

func (g *Game) colorFor(res world.BatchResult, i int) color.RGBA {
	switch g.mode {
	case ModeBiomes:
		return biomeColor(res.Biomes[i])
	case ModeElevation:
		return heightColor(res.Heights[i])
	case ModeTemperature:
		return temperatureColor(res.Temperatures[i])
	case ModePrecipitation:
		return precipitationColor(res.Precipitations[i])
	case ModeClouds:
		return cloudColor(res.CloudDensities[i])
	case ModeRivers:
		return riverColor(res.Heights[i], res.FlowAccumulations[i], res.RiverWidths[i])
	case ModeCoal:
		if res.Heights[i] < 0 {
			return oceanColor
		}
		return coalColor(res.CoalDeposits[i])
	case ModeIron:
		if res.Heights[i] < 0 {
			return oceanColor
		}
		return ironColor(res.IronDeposits[i])
	case ModeOil:
		if res.Heights[i] < 0 {
			return oceanColor
		}
		return oilColor(res.OilDeposits[i])
	case ModeInsolation:
		return insolationColor(res.Insolations[i])
	case ModeVegetation:
		if res.Heights[i] < 0 {
			return oceanColor
		}
		return vegetationColor(res.VegetationDensities[i])
	case ModeSoilFertility:
		if res.Heights[i] < 0 {
			return oceanColor
		}
		return fertilityColor(res.SoilFertilities[i])
	case ModePressure:
		baseline := g.world.AirPressure(math.Max(res.Heights[i], 0))
		return pressureAnomalyColor(res.Pressures[i] - baseline)
	default:
		return color.RGBA{128, 128, 128, 255}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)

	if g.showInfo {
		mx, my := ebiten.CursorPosition()
		lon, lat := g.view.screenToWorld(mx, my, g.width, g.height)
		g.drawPanel(screen, g.infoLines(lon, lat))
	}

	help := "1-0/V/F/P modes  I info  Space pause  +/- speed  [/] hour  </> day  R reseed  drag/wheel navigate  Q quit"
	text.Draw(screen, help, basicfont.Face7x13, panelX, g.height-6, color.RGBA{220, 220, 220, 255})
}

func (g *Game) drawPanel(screen *ebiten.Image, lines []string) {
	panelH := len(lines)*lineHeight + 2*textPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(panelWidth, float64(panelH))
	op.GeoM.Translate(panelX, panelY)
	op.ColorM.Scale(0.06, 0.06, 0.08, 0.82)
	screen.DrawImage(g.pixel, op)

	y := panelY + textPadding + 11
	for _, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, panelX+textPadding, y, color.RGBA{235, 235, 235, 255})
		y += lineHeight
	}
}

// infoLines samples the full environment profile under the cursor.
func (g *Game) infoLines(lon, lat float64) []string {
	w := g.world
	cfg := w.Config()

	height := w.TerrainHeight(lon, lat)
	alt := math.Max(height, 0)

	biome := w.BiomeAt(lon, lat, alt)
	temp := w.TemperatureAtTime(lon, lat, alt, g.hour)
	humidity := w.Humidity(lon, lat, alt)
	annual := w.Precipitation(lon, lat, alt)
	kind := w.PrecipitationKind(lon, lat, alt)
	current := w.CurrentPrecipitation(lon, lat, alt, g.hour)
	clouds := w.CloudDensity(lon, lat, alt)
	pressure := w.PressureAt(lon, lat, alt, g.hour)
	windSpeed := w.CurrentWindSpeed(lon, lat, alt, g.hour)
	windDir := w.CurrentWindDirection(lon, lat, alt, g.hour)
	insolation := w.Insolation(lon, lat, g.hour)

	paused := ""
	if g.paused {
		paused = " paused"
	}

	lines := []string{
		fmt.Sprintf("Mode: %s", g.mode),
		fmt.Sprintf("Lon %.2f  Lat %.2f", lon, lat),
		fmt.Sprintf("Day %d (%s)  Time %s x%.1f%s", cfg.DayOfYear, world.SeasonForDay(cfg.DayOfYear), formatHour(g.hour), g.speed, paused),
		fmt.Sprintf("Elevation: %.0f m", height),
		fmt.Sprintf("Biome: %s", biome),
		fmt.Sprintf("Temp: %.1f C  Humidity: %.0f%%", temp, humidity*100),
		fmt.Sprintf("Annual precip: %.0f mm (%s)", annual, kind),
		fmt.Sprintf("Now: %.1f mm/h  Clouds: %.0f%%", current, clouds*100),
		fmt.Sprintf("Pressure: %.1f hPa", pressure),
		fmt.Sprintf("Wind: %.1f m/s %s (%.0f)", windSpeed, compassPoint(windDir), windDir),
		fmt.Sprintf("Sun: %.0f W/m2", insolation),
	}

	if height >= 0 {
		soil := w.SoilType(lon, lat, alt)
		lines = append(lines,
			fmt.Sprintf("River width: %.0f m", w.RiverWidth(lon, lat)),
			fmt.Sprintf("Veg: %.0f%%  Soil: %s (pH %.1f)", w.VegetationDensity(lon, lat, alt)*100, soil, w.SoilPH(lon, lat, alt)),
			fmt.Sprintf("Fertility: %.0f%%  Coal %.0f%% Iron %.0f%% Oil %.0f%%",
				w.SoilFertility(lon, lat, alt)*100,
				w.CoalDeposit(lon, lat)*100,
				w.IronDeposit(lon, lat)*100,
				w.OilDeposit(lon, lat)*100),
		)
		if w.IsVolcano(lon, lat) {
			lines = append(lines, "Volcano")
		}
	}
	return lines
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

var compassNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// compassPoint names the nearest eight-point compass direction for a
// meteorological bearing in [0, 360).
func compassPoint(deg float64) string {
	idx := int(math.Mod(deg+22.5, 360) / 45)
	return compassNames[idx]
}

func formatHour(h float64) string {
	hh := int(h)
	mm := int((h - float64(hh)) * 60)
	return fmt.Sprintf("%02d:%02d", hh, mm)
}
