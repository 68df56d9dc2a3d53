package sapling

import (
	"image"
	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding
	_ "image/png"  // register PNG decoding
	"os"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp" // register BMP decoding
)

// decodeImageFile reads and decodes the image at path.
func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "sapling: open image %q", path)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "sapling: decode image %q", path)
	}
	glog.V(2).Infof("sapling: decoded %s image %q (%dx%d)", format, path, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// scaleImage resizes img to size. A zero size leaves img untouched; a zero
// width or height keeps the aspect ratio.
func scaleImage(img image.Image, size image.Point) (image.Image, error) {
	if size.X < 0 || size.Y < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d", size.X, size.Y)
	}
	if size.X == 0 && size.Y == 0 {
		return img, nil
	}
	scaled := resize.Resize(uint(size.X), uint(size.Y), img, resize.Bilinear)
	glog.V(1).Infof("sapling: scaled image from %v to %v", img.Bounds().Size(), scaled.Bounds().Size())
	return scaled, nil
}

// loadImage decodes path, scales it to size and uploads it to the host.
func loadImage(path string, size image.Point) (*ebiten.Image, error) {
	src, err := decodeImageFile(path)
	if err != nil {
		return nil, err
	}
	scaled, err := scaleImage(src, size)
	if err != nil {
		return nil, errors.Wrapf(err, "sapling: scale image %q", path)
	}
	return ebiten.NewImageFromImage(scaled), nil
}
