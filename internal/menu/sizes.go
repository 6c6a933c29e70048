package menu

import "fmt"

// Size tokens as submitted by the order form.
const (
	SizeSmall  = "klein"
	SizeMedium = "mittel"
	SizeLarge  = "gross"
)

var ErrUnknownSize = fmt.Errorf("unknown size token")

// PriceForSize maps a size token to the matching price field. The mapping is
// an explicit enumeration that fails loudly on unrecognized tokens; "groß"
// is accepted as an alias for "gross".
func PriceForSize(item *Item, size string) (string, error) {
	switch size {
	case SizeSmall:
		return item.PriceSmall, nil
	case SizeMedium:
		return item.PriceMedium, nil
	case SizeLarge, "groß":
		return item.PriceLarge, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSize, size)
	}
}
