package imagegen

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// IconSizeLarge and IconSizeSmall are the PNG favicon dimensions the
// page links to.
const (
	IconSizeLarge = 180 // apple-touch-icon
	IconSizeSmall = 32  // favicon-32x32
)

// icoSizes are the resolutions embedded in the multi-size favicon.ico.
var icoSizes = []int{16, 32, 48, 64, 128, 256}

// Icons holds the pre-rendered favicon assets served by the API.
type Icons struct {
	AppleTouch []byte // 180x180 PNG
	Favicon32  []byte // 32x32 PNG
	FaviconICO []byte // multi-size ICO
}

// RenderIcons draws the landscape motif once at full resolution and
// derives every favicon variant from it.
func RenderIcons() (*Icons, error) {
	base := drawLandscape(256)

	appleTouch, err := encodePNG(scaleIcon(base, IconSizeLarge))
	if err != nil {
		return nil, fmt.Errorf("apple-touch icon: %w", err)
	}

	favicon32, err := encodePNG(scaleIcon(base, IconSizeSmall))
	if err != nil {
		return nil, fmt.Errorf("favicon-32x32: %w", err)
	}

	frames := make([][]byte, 0, len(icoSizes))
	for _, size := range icoSizes {
		frame, err := encodePNG(scaleIcon(base, size))
		if err != nil {
			return nil, fmt.Errorf("ico frame %d: %w", size, err)
		}
		frames = append(frames, frame)
	}
	ico, err := encodeICO(icoSizes, frames)
	if err != nil {
		return nil, fmt.Errorf("favicon.ico: %w", err)
	}

	return &Icons{
		AppleTouch: appleTouch,
		Favicon32:  favicon32,
		FaviconICO: ico,
	}, nil
}

// drawLandscape renders the icon artwork: gradient sky over green
// ground, a sun high on the right, and two mountains on the horizon
// partly covering it.
func drawLandscape(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	s := float64(size)
	horizon := int(s * 0.6)

	skyTop := color.RGBA{135, 206, 235, 255}
	skyBottom := color.RGBA{70, 130, 180, 255}
	for y := 0; y < horizon; y++ {
		t := float64(y) / float64(horizon)
		c := color.RGBA{
			R: uint8(float64(skyTop.R) + t*(float64(skyBottom.R)-float64(skyTop.R))),
			G: uint8(float64(skyTop.G) + t*(float64(skyBottom.G)-float64(skyTop.G))),
			B: uint8(float64(skyTop.B) + t*(float64(skyBottom.B)-float64(skyTop.B))),
			A: 255,
		}
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, c)
		}
	}

	ground := color.RGBA{76, 187, 23, 255}
	draw.Draw(img, image.Rect(0, horizon, size, size), image.NewUniform(ground), image.Point{}, draw.Src)

	fillCircle(img, s*0.75, s*0.25, s*0.12, color.RGBA{255, 220, 100, 255})

	mountain := color.RGBA{100, 100, 120, 255}
	hy := float32(horizon)
	fillTriangle(img, [3][2]float32{{0, hy}, {float32(s * 0.35), float32(s * 0.35)}, {float32(s * 0.55), hy}}, mountain)
	fillTriangle(img, [3][2]float32{{float32(s * 0.45), hy}, {float32(s * 0.70), float32(s * 0.25)}, {float32(s), hy}}, mountain)

	return img
}

// circleK is the cubic Bezier control offset approximating a quarter
// circle.
const circleK = 0.5522848

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	z := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())

	x, y := float32(cx), float32(cy)
	rad, k := float32(r), float32(r*circleK)
	z.MoveTo(x+rad, y)
	z.CubeTo(x+rad, y+k, x+k, y+rad, x, y+rad)
	z.CubeTo(x-k, y+rad, x-rad, y+k, x-rad, y)
	z.CubeTo(x-rad, y-k, x-k, y-rad, x, y-rad)
	z.CubeTo(x+k, y-rad, x+rad, y-k, x+rad, y)
	z.ClosePath()

	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

func fillTriangle(img *image.RGBA, pts [3][2]float32, c color.RGBA) {
	z := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	z.MoveTo(pts[0][0], pts[0][1])
	z.LineTo(pts[1][0], pts[1][1])
	z.LineTo(pts[2][0], pts[2][1])
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

func scaleIcon(src *image.RGBA, size int) *image.RGBA {
	if src.Bounds().Dx() == size {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeICO packs PNG frames into the ICO container: a 6-byte header,
// one 16-byte directory entry per frame, then the frame data.
func encodeICO(sizes []int, frames [][]byte) ([]byte, error) {
	if len(sizes) != len(frames) {
		return nil, fmt.Errorf("ico: %d sizes for %d frames", len(sizes), len(frames))
	}

	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint16(0)) // reserved
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // type: icon
	binary.Write(&buf, binary.LittleEndian, uint16(len(frames)))

	offset := 6 + 16*len(frames)
	for i, frame := range frames {
		dim := uint8(sizes[i])
		if sizes[i] >= 256 {
			dim = 0 // 256 is stored as 0
		}
		buf.WriteByte(dim)
		buf.WriteByte(dim)
		buf.WriteByte(0) // palette size
		buf.WriteByte(0) // reserved
		binary.Write(&buf, binary.LittleEndian, uint16(1))  // color planes
		binary.Write(&buf, binary.LittleEndian, uint16(32)) // bits per pixel
		binary.Write(&buf, binary.LittleEndian, uint32(len(frame)))
		binary.Write(&buf, binary.LittleEndian, uint32(offset))
		offset += len(frame)
	}
	for _, frame := range frames {
		buf.Write(frame)
	}
	return buf.Bytes(), nil
}
