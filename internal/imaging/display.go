package imaging

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Display writes a human-readable dump of every pixel to w. It never
// modifies the buffer.
//
// The dump has two parts. The first lists one pixel per line as a nested
// list with its hex color:
//
//	[  [  (255,0,0,255) #ff0000,
//	      (0,255,0,255) #00ff00 ],
//	   [  (0,0,255,255) #0000ff,
//	      (255,255,0,255) #ffff00 ]  ]
//
// The second shows each row as four aligned channel lines:
//
//	R255 R0
//	G0   G255
//	B0   B0
//	A255 A255
func Display(w io.Writer, b *Buffer) error {
	bw := bufio.NewWriter(w)
	height, width := b.Height(), b.Width()

	maxsize := 0
	for _, row := range b.Rows {
		for _, p := range row {
			maxsize = max(maxsize, len(pixelLabel(p)))
		}
	}

	fmt.Fprintln(bw)
	for r, row := range b.Rows {
		for c, p := range row {
			label := pixelLabel(p)
			padding := strings.Repeat(" ", maxsize-len(label))

			prefix := "      "
			switch {
			case r == 0 && c == 0:
				prefix = "[  [  "
			case c == 0:
				prefix = "   [  "
			}

			suffix := ","
			switch {
			case r == height-1 && c == width-1:
				suffix = padding + " ]  ]"
			case c == width-1:
				suffix = padding + " ],"
			}
			fmt.Fprintln(bw, prefix+label+suffix)
		}
	}

	fmt.Fprintln(bw)
	for _, row := range b.Rows {
		channels := [4][]string{}
		for _, p := range row {
			channels[0] = append(channels[0], channelCell('R', p.R))
			channels[1] = append(channels[1], channelCell('G', p.G))
			channels[2] = append(channels[2], channelCell('B', p.B))
			channels[3] = append(channels[3], channelCell('A', p.A))
		}
		for _, line := range channels {
			fmt.Fprintln(bw, strings.TrimRight(strings.Join(line, " "), " "))
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}

func pixelLabel(p Pixel) string {
	return p.String() + " " + p.Hex()
}

func channelCell(name byte, v uint8) string {
	return fmt.Sprintf("%c%-3d", name, v)
}
