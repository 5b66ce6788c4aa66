package llm

import (
	"regexp"
	"strings"
)

var dataURIPattern = regexp.MustCompile(`^data:([^;]+);base64,(.+)$`)

// ParseImageData splits an optional data-URI prefix from a base64 image
// string. Bare base64 input is assumed to be JPEG.
func ParseImageData(image string) (mediaType, data string) {
	if strings.HasPrefix(image, "data:") {
		if m := dataURIPattern.FindStringSubmatch(image); m != nil {
			return m[1], m[2]
		}
	}
	return "image/jpeg", image
}
