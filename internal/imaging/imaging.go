package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	// registered decoders for screenshots coming from phones and desktops
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	MaxWidth    = 1000
	MaxPixels   = 50_000_000
	JPEGQuality = 80
	MIMEJPEG    = "image/jpeg"
)

var ErrUnsupportedImage = errors.New("unsupported image")

// Image is an encoded image ready to be sent to the model or stored.
type Image struct {
	Data     []byte
	MIMEType string
	Width    int
	Height   int
}

func (i *Image) Base64() string {
	return base64.StdEncoding.EncodeToString(i.Data)
}

func (i *Image) DataURL() string {
	return "data:" + i.MIMEType + ";base64," + i.Base64()
}

// Downscale decodes raw image bytes and re-encodes them as JPEG, shrinking the
// image proportionally when it is wider than MaxWidth. Smaller images keep
// their dimensions but are still re-encoded.
func Downscale(raw []byte) (*Image, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, fmt.Errorf("%w: %s image of %dx%d is too large", ErrUnsupportedImage, format, cfg.Width, cfg.Height)
	}

	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: empty %s image", ErrUnsupportedImage, format)
	}

	if width > MaxWidth {
		height = height * MaxWidth / width
		if height < 1 {
			height = 1
		}
		width = MaxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	// JPEG has no alpha; paint transparent regions white like a canvas export would
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return &Image{
		Data:     buf.Bytes(),
		MIMEType: MIMEJPEG,
		Width:    width,
		Height:   height,
	}, nil
}

// DecodeDataURL parses a "data:<mime>;base64,<payload>" string.
func DecodeDataURL(dataURL string) (*Image, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return nil, fmt.Errorf("%w: not a data url", ErrUnsupportedImage)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("%w: malformed data url", ErrUnsupportedImage)
	}
	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, fmt.Errorf("%w: data url is not base64 encoded", ErrUnsupportedImage)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, err)
	}

	img := &Image{Data: data, MIMEType: mimeType}
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		img.Width, img.Height = cfg.Width, cfg.Height
	}
	return img, nil
}
