// Package blend composites glyph patches onto raster surfaces.
//
// All arithmetic is done on 8-bit premultiplied channels. Division by 255
// uses the rounding shift formula from Alvy Ray Smith's memos, which is
// exact for every product of two bytes.
//
// References:
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// div255 returns x / 255 rounded to nearest, exact for x in [0, 65025].
//
// Formula: ((x + 128) + ((x + 128) >> 8)) >> 8
func div255(x uint32) uint32 {
	t := x + 128
	return (t + (t >> 8)) >> 8
}

// mulDiv255 returns round(a * b / 255).
func mulDiv255(a, b byte) byte {
	return byte(div255(uint32(a) * uint32(b)))
}

// addClamp adds two channel values, saturating at 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// sourceOver composites a premultiplied source pixel over a premultiplied
// destination pixel.
//
// Formula: S + D * (1 - Sa)
func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return addClamp(sr, mulDiv255(dr, inv)),
		addClamp(sg, mulDiv255(dg, inv)),
		addClamp(sb, mulDiv255(db, inv)),
		addClamp(sa, mulDiv255(da, inv))
}

// premultiply converts a straight-alpha pixel to premultiplied form.
func premultiply(r, g, b, a byte) (byte, byte, byte, byte) {
	switch a {
	case 255:
		return r, g, b, a
	case 0:
		return 0, 0, 0, 0
	}
	return mulDiv255(r, a), mulDiv255(g, a), mulDiv255(b, a), a
}
