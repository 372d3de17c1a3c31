package stage

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	titleSize  = 48
	bodySize   = 22
	promptSize = 18
)

type fonts struct {
	title  *text.GoTextFace
	body   *text.GoTextFace
	prompt *text.GoTextFace
}

func loadFonts() (*fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &fonts{
		title:  &text.GoTextFace{Source: src, Size: titleSize},
		body:   &text.GoTextFace{Source: src, Size: bodySize},
		prompt: &text.GoTextFace{Source: src, Size: promptSize},
	}, nil
}
