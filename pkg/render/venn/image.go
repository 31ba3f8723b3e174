package venn

import "encoding/base64"

// FormatPNG is the only output format.
const FormatPNG = "png"

// Image is an encoded diagram.
type Image struct {
	Data   []byte `json:"-"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// MIME returns the media type of the encoded data.
func (img *Image) MIME() string { return "image/" + img.Format }

// Base64 returns the data in standard base64 encoding.
func (img *Image) Base64() string {
	return base64.StdEncoding.EncodeToString(img.Data)
}

// DataURI returns the image as a data: URI suitable for an <img> src.
func (img *Image) DataURI() string {
	return "data:" + img.MIME() + ";base64," + img.Base64()
}
