package inventory

import (
	"strings"
	"unicode"

	"github.com/cloudinary/cloudinary-go/v2"
)

// ImageURLs builds the image link attached to a hotel offer.
type ImageURLs interface {
	HotelImage(name string) string
}

// PlaceholderImages links to a generated placeholder showing the hotel name.
type PlaceholderImages struct{}

func (PlaceholderImages) HotelImage(name string) string {
	return placeholderImage + strings.ReplaceAll(name, " ", "+")
}

// CloudinaryImages serves hotel photos from a Cloudinary folder, one asset
// per hotel keyed by a slug of its name. Building a URL makes no network
// call.
type CloudinaryImages struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryImages(cld *cloudinary.Cloudinary, folder string) *CloudinaryImages {
	return &CloudinaryImages{cld: cld, folder: strings.Trim(folder, "/")}
}

func (c *CloudinaryImages) HotelImage(name string) string {
	publicID := Slug(name)
	if c.folder != "" {
		publicID = c.folder + "/" + publicID
	}
	img, err := c.cld.Image(publicID)
	if err != nil {
		return PlaceholderImages{}.HotelImage(name)
	}
	img.Transformation = "c_fill,h_200,w_300"
	url, err := img.String()
	if err != nil || url == "" {
		return PlaceholderImages{}.HotelImage(name)
	}
	return url
}

// Slug lower-cases s and joins its alphanumeric runs with dashes.
func Slug(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, "-")
}
