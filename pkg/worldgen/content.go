package worldgen

// ContentKind enumerates the closed set of content items a tile may carry.
type ContentKind int

const (
	ContentNone ContentKind = iota
	ContentRock
	ContentTree
	ContentGarbage
	ContentFire
	ContentCoin
	ContentBin
	ContentCrate
	ContentBank
	ContentWater
	ContentMarket
	ContentFish
	ContentBuilding
	ContentBush
	ContentJollyBlock
	ContentScarecrow
)

// String returns a human-readable name for the content kind.
func (k ContentKind) String() string {
	switch k {
	case ContentNone:
		return "None"
	case ContentRock:
		return "Rock"
	case ContentTree:
		return "Tree"
	case ContentGarbage:
		return "Garbage"
	case ContentFire:
		return "Fire"
	case ContentCoin:
		return "Coin"
	case ContentBin:
		return "Bin"
	case ContentCrate:
		return "Crate"
	case ContentBank:
		return "Bank"
	case ContentWater:
		return "Water"
	case ContentMarket:
		return "Market"
	case ContentFish:
		return "Fish"
	case ContentBuilding:
		return "Building"
	case ContentBush:
		return "Bush"
	case ContentJollyBlock:
		return "JollyBlock"
	case ContentScarecrow:
		return "Scarecrow"
	default:
		return "Unknown"
	}
}

// contentMaxValue is the static upper bound on each content kind's scalar
// payload. Kinds that take no scalar (None, Fire, Building, Scarecrow) map
// to zero.
var contentMaxValue = map[ContentKind]int{
	ContentNone:       0,
	ContentRock:       20,
	ContentTree:       5,
	ContentGarbage:    10,
	ContentFire:       0,
	ContentCoin:       10,
	ContentBin:        20,
	ContentCrate:      20,
	ContentBank:       60,
	ContentWater:      20,
	ContentMarket:     20,
	ContentFish:       3,
	ContentBuilding:   0,
	ContentBush:       2,
	ContentJollyBlock: 1,
	ContentScarecrow:  0,
}

// MaxValue returns the static upper bound on this content kind's scalar
// payload, or 0 for kinds that carry no scalar.
func (k ContentKind) MaxValue() int {
	return contentMaxValue[k]
}

// isRangeKind reports whether this content kind is constructed from an
// integer range (Bin, Crate, Bank) rather than a single scalar.
func (k ContentKind) isRangeKind() bool {
	return k == ContentBin || k == ContentCrate || k == ContentBank
}

// ValueRange is an inclusive integer range, used by the three content
// kinds whose constructors take a range instead of a scalar.
type ValueRange struct {
	Min, Max int
}

// Content is a placed (or pending-placement) content item. Value holds the
// scalar payload for scalar kinds; Range holds the payload for the three
// range-constructed kinds (Bin, Crate, Bank). Kinds with MaxValue() == 0
// use neither field.
type Content struct {
	Kind  ContentKind
	Value int
	Range ValueRange
}

// rangeSpread bounds how wide a Bin/Crate/Bank's sampled range is. Content
// placement draws a single scalar per placement (the random/batched
// spawner algorithms are scalar-based); range-constructed kinds widen that
// scalar into a small range around it so the field is always populated.
const rangeSpread = 4

// NewContent builds a Content of the given kind from a drawn scalar value,
// clamped to [0, kind.MaxValue()]. For range-constructed kinds the scalar
// becomes the lower bound of a [v, v+rangeSpread] range clamped to MaxValue.
func NewContent(kind ContentKind, value int) Content {
	max := kind.MaxValue()
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	c := Content{Kind: kind, Value: value}
	if kind.isRangeKind() {
		hi := value + rangeSpread
		if hi > max {
			hi = max
		}
		c.Range = ValueRange{Min: value, Max: hi}
	}
	return c
}

// NewContentRange builds a Bin/Crate/Bank content directly from an
// explicit integer range.
func NewContentRange(kind ContentKind, r ValueRange) Content {
	max := kind.MaxValue()
	if r.Min < 0 {
		r.Min = 0
	}
	if r.Max > max {
		r.Max = max
	}
	if r.Max < r.Min {
		r.Max = r.Min
	}
	return Content{Kind: kind, Range: r}
}

// NewEmptyContent builds the zero-valued constructor for a content kind
// that carries no scalar (None, Fire, Building, Scarecrow).
func NewEmptyContent(kind ContentKind) Content {
	return Content{Kind: kind}
}
