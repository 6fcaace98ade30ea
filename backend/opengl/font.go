package opengl

import (
	"encoding/hex"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// The atlas is a 16x6 grid of 8x8 glyphs for ASCII 32-127, matching the
// texture coordinates vgui.DrawList.AddText emits.
const (
	atlasWidth  = 16 * 8
	atlasHeight = 6 * 8
)

// glyphRows holds eight rows per glyph, most significant bit leftmost.
// Missing glyphs stay blank.
var glyphRows = map[rune]string{
	' ':  "0000000000000000",
	'!':  "1818181818001800",
	'"':  "6666000000000000",
	'#':  "247e24247e240000",
	'$':  "183e603c067c1800",
	'%':  "6264081026460000",
	'&':  "386c3876dccc7600",
	'\'': "1818300000000000",
	'(':  "0c18303030180c00",
	')':  "30180c0c0c183000",
	'*':  "00663cff3c660000",
	'+':  "0018187e18180000",
	',':  "0000000000181830",
	'-':  "0000007e00000000",
	'.':  "0000000000181800",
	'/':  "02060c1830604000",
	'0':  "3c666e7666663c00",
	'1':  "1838181818187e00",
	'2':  "3c66061c30607e00",
	'3':  "3c66061c06663c00",
	'4':  "0c1c3c6c7e0c0c00",
	'5':  "7e607c0606663c00",
	'6':  "1c30607c66663c00",
	'7':  "7e060c1830303000",
	'8':  "3c66663c66663c00",
	'9':  "3c66663e060c3800",
	':':  "0000181800181800",
	';':  "0000181800181830",
	'<':  "060c1830180c0600",
	'=':  "00007e007e000000",
	'>':  "6030180c18306000",
	'?':  "3c66061c18001800",
	'@':  "3c666e6a6e603c00",
	'A':  "183c66667e666600",
	'B':  "7c66667c66667c00",
	'C':  "3c66606060663c00",
	'D':  "786c6666666c7800",
	'E':  "7e60607c60607e00",
	'F':  "7e60607c60606000",
	'G':  "3c66606e66663e00",
	'H':  "6666667e66666600",
	'I':  "7e18181818187e00",
	'J':  "3e0c0c0c0c6c3800",
	'K':  "666c7870786c6600",
	'L':  "6060606060607e00",
	'M':  "63777f6b63636300",
	'N':  "66767e7e6e666600",
	'O':  "3c66666666663c00",
	'P':  "7c66667c60606000",
	'Q':  "3c6666666a6c3600",
	'R':  "7c66667c6c666600",
	'S':  "3c66603c06663c00",
	'T':  "7e18181818181800",
	'U':  "6666666666663c00",
	'V':  "66666666663c1800",
	'W':  "6363636b7f776300",
	'X':  "66663c183c666600",
	'Y':  "6666663c18181800",
	'Z':  "7e060c1830607e00",
	'[':  "1c18181818181c00",
	'\\': "406030180c060200",
	']':  "3818181818183800",
	'^':  "183c660000000000",
	'_':  "0000000000007e00",
	'`':  "30180c0000000000",
	'a':  "00003c063e663e00",
	'b':  "60607c6666667c00",
	'c':  "00003c6660663c00",
	'd':  "06063e6666663e00",
	'e':  "00003c667e603c00",
	'f':  "1c30307c30303000",
	'g':  "00003e66663e063c",
	'h':  "60607c6666666600",
	'i':  "1800381818183c00",
	'j':  "0c001c0c0c0c6c38",
	'k':  "6060666c786c6600",
	'l':  "3818181818183c00",
	'm':  "0000767f6b6b6300",
	'n':  "00007c6666666600",
	'o':  "00003c6666663c00",
	'p':  "00007c66667c6060",
	'q':  "00003e66663e0606",
	'r':  "00006c7660606000",
	's':  "00003e603c067c00",
	't':  "30307c3030301c00",
	'u':  "0000666666663e00",
	'v':  "00006666663c1800",
	'w':  "0000636b6b7f3600",
	'x':  "0000663c183c6600",
	'y':  "00006666663e063c",
	'z':  "00007e0c18307e00",
	'{':  "0e18187018180e00",
	'|':  "1818181818181800",
	'}':  "7018180e18187000",
	'~':  "000076dc00000000",
}

// fontAtlas rasterizes glyphRows into a one-channel coverage bitmap.
func fontAtlas() []byte {
	data := make([]byte, atlasWidth*atlasHeight)
	for ch, rows := range glyphRows {
		bits, err := hex.DecodeString(rows)
		if err != nil || len(bits) != 8 || ch < 32 || ch > 127 {
			continue
		}
		cell := int(ch - 32)
		ox, oy := cell%16*8, cell/16*8
		for y, row := range bits {
			for x := range 8 {
				if row&(0x80>>x) != 0 {
					data[(oy+y)*atlasWidth+ox+x] = 0xFF
				}
			}
		}
	}
	return data
}

func uploadAtlas(data []byte) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, atlasWidth, atlasHeight, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}
