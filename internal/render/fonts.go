package render

import (
	"sync"

	"github.com/rotisserie/eris"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	fontOnce    sync.Once
	fontErr     error
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func loadFonts() error {
	fontOnce.Do(func() {
		regularFont, fontErr = opentype.Parse(goregular.TTF)
		if fontErr != nil {
			fontErr = eris.Wrap(fontErr, "render: parse regular font")
			return
		}
		boldFont, fontErr = opentype.Parse(gobold.TTF)
		if fontErr != nil {
			fontErr = eris.Wrap(fontErr, "render: parse bold font")
		}
	})
	return fontErr
}

// regularFace returns a regular-weight face at the given pixel size.
func regularFace(size float64) (font.Face, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(regularFont, &opentype.FaceOptions{
		Size: size, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, eris.Wrap(err, "render: build regular face")
	}
	return face, nil
}

// boldFace returns a bold-weight face at the given pixel size.
func boldFace(size float64) (font.Face, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(boldFont, &opentype.FaceOptions{
		Size: size, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, eris.Wrap(err, "render: build bold face")
	}
	return face, nil
}
