package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURL(t *testing.T) {
	path := "/abc123.jpg"
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc123.jpg", ImageURL(&path, ""))
	assert.Equal(t, "https://image.tmdb.org/t/p/w1280/abc123.jpg", ImageURL(&path, "w1280"))
	assert.Contains(t, ImageURL(nil, "w500"), "placeholder")
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "4.4", FormatRating(8.8))
	assert.Equal(t, "0.0", FormatRating(0))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$160,000,000", FormatCurrency(160000000))
	assert.Equal(t, "$1,000", FormatCurrency(1000))
	assert.Equal(t, "$999", FormatCurrency(999))
	assert.Equal(t, "$0", FormatCurrency(0))
	assert.Equal(t, "-$5,000", FormatCurrency(-5000))
}

func TestFormatRuntime(t *testing.T) {
	runtime := 142
	assert.Equal(t, "2h 22m", FormatRuntime(&runtime))
	assert.Equal(t, "N/A", FormatRuntime(nil))
	zero := 0
	assert.Equal(t, "N/A", FormatRuntime(&zero))
}
