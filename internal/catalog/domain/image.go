package domain

import (
	"fmt"
	"io"
	"path"
	"strings"
)

// ImageUpload is an image file submitted with a product form
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageKey is the object key of a product image: products/<id>-<filename>
func ImageKey(productID uint, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '+'
		case r < 0x20 || r == 0x7f:
			return '_'
		}
		return r
	}, name)
	if name == "." || name == "/" || name == "" {
		name = "image"
	}
	return fmt.Sprintf("products/%d-%s", productID, name)
}
