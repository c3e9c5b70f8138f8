package tetromino

// shapeGlyphs is the source of truth for every piece layout: SRS orientations
// inside a 4x4 frame, listed North, East, South, West. O repeats one grid on
// purpose so its symmetry is stated rather than derived.
var shapeGlyphs = [NumKinds][NumRotations][Side]string{
	I: {
		{"----", "XXXX", "----", "----"},
		{"--X-", "--X-", "--X-", "--X-"},
		{"----", "----", "XXXX", "----"},
		{"-X--", "-X--", "-X--", "-X--"},
	},
	O: {
		{"-XX-", "-XX-", "----", "----"},
		{"-XX-", "-XX-", "----", "----"},
		{"-XX-", "-XX-", "----", "----"},
		{"-XX-", "-XX-", "----", "----"},
	},
	T: {
		{"-X--", "XXX-", "----", "----"},
		{"-X--", "-XX-", "-X--", "----"},
		{"----", "XXX-", "-X--", "----"},
		{"-X--", "XX--", "-X--", "----"},
	},
	J: {
		{"X---", "XXX-", "----", "----"},
		{"-XX-", "-X--", "-X--", "----"},
		{"----", "XXX-", "--X-", "----"},
		{"-X--", "-X--", "XX--", "----"},
	},
	L: {
		{"--X-", "XXX-", "----", "----"},
		{"-X--", "-X--", "-XX-", "----"},
		{"----", "XXX-", "X---", "----"},
		{"XX--", "-X--", "-X--", "----"},
	},
	S: {
		{"-XX-", "XX--", "----", "----"},
		{"-X--", "-XX-", "--X-", "----"},
		{"----", "-XX-", "XX--", "----"},
		{"X---", "XX--", "-X--", "----"},
	},
	Z: {
		{"XX--", "-XX-", "----", "----"},
		{"--X-", "-XX-", "-X--", "----"},
		{"----", "XX--", "-XX-", "----"},
		{"-X--", "XX--", "X---", "----"},
	},
}

var shapes = compileShapes()

func compileShapes() [NumKinds][NumRotations]Mask {
	var table [NumKinds][NumRotations]Mask
	for kind, rotations := range shapeGlyphs {
		for rot, rows := range rotations {
			table[kind][rot] = MustGlyph(rows[:]...)
		}
	}
	return table
}

// Occupancy returns the cells of kind in orientation rot. Values outside the
// seven kinds or four rotations yield an empty mask.
func Occupancy(kind Kind, rot Rotation) Mask {
	if kind >= NumKinds || rot >= NumRotations {
		return 0
	}
	return shapes[kind][rot]
}

// Rotations returns all four masks of kind, North first.
func Rotations(kind Kind) [NumRotations]Mask {
	if kind >= NumKinds {
		return [NumRotations]Mask{}
	}
	return shapes[kind]
}
