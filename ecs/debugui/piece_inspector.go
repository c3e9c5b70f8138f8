package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/termtris/coords"
	"github.com/plus3/termtris/ecs"
	"github.com/plus3/termtris/shade"
	"github.com/plus3/termtris/tetromino"
)

// PieceInfo is what the inspector shows about a piece.
type PieceInfo struct {
	Kind     tetromino.Kind
	Rotation tetromino.Rotation
	Anchor   coords.Block
	Color    shade.Color
}

// PieceInspector shows the components of one entity, the occupancy mask of
// its piece and the four facet shades a block of it is drawn with.
type PieceInspector struct {
	Storage *ecs.Storage
	Entity  ecs.EntityId
	Piece   func() (PieceInfo, bool)
}

// Render draws the inspector window for the current frame.
func (pi *PieceInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(380, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 360), imgui.CondOnce)
	if !imgui.BeginV("Piece Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	info, ok := pi.Piece()
	if !ok {
		imgui.Text("No piece")
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("%v %v at (%d, %d)", info.Kind, info.Rotation, info.Anchor.X, info.Anchor.Y))
	imgui.Separator()
	for _, row := range MaskRows(info.Kind, info.Rotation) {
		imgui.Text(row)
	}

	imgui.Separator()
	quad := shade.Facets(info.Color)
	swatch("base", info.Color)
	swatch("top left", quad.TopLeft)
	swatch("top right", quad.TopRight)
	swatch("bottom left", quad.BottomLeft)
	swatch("bottom right", quad.BottomRight)

	if pi.Storage != nil && pi.Storage.Alive(pi.Entity) {
		imgui.Separator()
		archetype := pi.Storage.GetArchetypeById(pi.Entity.ArchetypeId())
		for _, compType := range archetype.Types() {
			component := pi.Storage.GetComponent(pi.Entity, compType)
			if component == nil || !imgui.TreeNodeStr(compType.String()) {
				continue
			}
			for _, line := range globalReflectionCache.Describe(component) {
				if line.Depth > 0 {
					imgui.Indent()
				}
				imgui.Text(line.Text)
				if line.Depth > 0 {
					imgui.Unindent()
				}
			}
			imgui.TreePop()
		}
	}

	imgui.End()
}

// MaskRows renders the occupancy mask with one character per cell.
func MaskRows(kind tetromino.Kind, rot tetromino.Rotation) [tetromino.Side]string {
	rows := tetromino.Occupancy(kind, rot).Glyph()
	for i, row := range rows {
		out := []rune(row)
		for j, r := range out {
			if r == tetromino.GlyphFilled {
				out[j] = '■'
			} else {
				out[j] = '·'
			}
		}
		rows[i] = string(out)
	}
	return rows
}

func swatch(label string, c shade.Color) {
	imgui.PushStyleColorVec4(imgui.ColText, colorVec4(c))
	imgui.Text("■■")
	imgui.PopStyleColor()
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("%-12s %v", label, c))
}

func colorVec4(c shade.Color) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}
