package automaton

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Dict maps the letters of a source alphabet onto the letters of a target alphabet.
// A source letter may be unmapped. Several source letters may share an image.
type Dict struct {
	// image of each source letter, -1 when unmapped
	images []int
}

// NewDict returns a dictionary over n source letters, all unmapped.
func NewDict(n int) *Dict {
	d := &Dict{images: make([]int, n)}
	for i := range d.images {
		d.images[i] = -1
	}
	return d
}

// IdentityDict maps every letter of an alphabet of size n to itself.
func IdentityDict(n int) *Dict {
	d := &Dict{images: make([]int, n)}
	for i := range d.images {
		d.images[i] = i
	}
	return d
}

// NewDictFrom builds a dictionary from a slice of images. Negative values mean unmapped.
func NewDictFrom(images []int) *Dict {
	d := &Dict{images: make([]int, len(images))}
	for i, v := range images {
		if v < 0 {
			v = -1
		}
		d.images[i] = v
	}
	return d
}

// Len Size of the source alphabet.
func (d *Dict) Len() int {
	return len(d.images)
}

// Image Returns the image of the source letter, ok is false when the letter is unmapped or out of range.
func (d *Dict) Image(letter int) (int, bool) {
	if letter < 0 || letter >= len(d.images) || d.images[letter] < 0 {
		return 0, false
	}
	return d.images[letter], true
}

func (d *Dict) Set(letter, image int) error {
	if letter < 0 || letter >= len(d.images) {
		return fmt.Errorf("dict set %d: %w", letter, ErrLetterOutOfRange)
	}
	if image < 0 {
		return fmt.Errorf("dict set %d -> %d: %w", letter, image, ErrLetterOutOfRange)
	}
	d.images[letter] = image
	return nil
}

func (d *Dict) Unset(letter int) error {
	if letter < 0 || letter >= len(d.images) {
		return fmt.Errorf("dict unset %d: %w", letter, ErrLetterOutOfRange)
	}
	d.images[letter] = -1
	return nil
}

// Add appends a new source letter mapped to image, even if image is already used.
func (d *Dict) Add(image int) {
	if image < 0 {
		image = -1
	}
	d.images = append(d.images, image)
}

// TargetSize Smallest target alphabet containing every image.
func (d *Dict) TargetSize() int {
	size := 0
	for _, v := range d.images {
		if v+1 > size {
			size = v + 1
		}
	}
	return size
}

// IsInvertible Returns true if no two source letters share an image.
func (d *Dict) IsInvertible() bool {
	seen := bitset.New(uint(d.TargetSize()))
	for _, v := range d.images {
		if v < 0 {
			continue
		}
		if seen.Test(uint(v)) {
			return false
		}
		seen.Set(uint(v))
	}
	return true
}

// Invert Returns the inverse relation over a target alphabet of size TargetSize.
func (d *Dict) Invert() *InvertDict {
	return d.invertN(d.TargetSize())
}

func (d *Dict) invertN(n int) *InvertDict {
	id := NewInvertDict(n)
	for i, v := range d.images {
		if v >= 0 && v < n {
			id.preimages[v] = append(id.preimages[v], i)
		}
	}
	return id
}

func (d *Dict) String() string {
	b := new(strings.Builder)
	b.WriteByte('[')
	for i, v := range d.images {
		if i > 0 {
			b.WriteString(", ")
		}
		if v < 0 {
			b.WriteString("_")
		} else {
			fmt.Fprintf(b, "%d", v)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// InvertDict maps each target letter back to the source letters whose image it is.
type InvertDict struct {
	preimages [][]int
}

// NewInvertDict returns an inverse dictionary over n target letters with no preimages.
func NewInvertDict(n int) *InvertDict {
	return &InvertDict{preimages: make([][]int, n)}
}

// Len Size of the target alphabet.
func (id *InvertDict) Len() int {
	return len(id.preimages)
}

// Preimages Source letters mapped to the target letter, ascending. Nil if there are none.
func (id *InvertDict) Preimages(letter int) []int {
	if letter < 0 || letter >= len(id.preimages) {
		return nil
	}
	return id.preimages[letter]
}

// Add records source as a preimage of target.
func (id *InvertDict) Add(target, source int) error {
	if target < 0 || target >= len(id.preimages) || source < 0 {
		return fmt.Errorf("invert dict add %d <- %d: %w", target, source, ErrLetterOutOfRange)
	}
	pre := id.preimages[target]
	i := 0
	for i < len(pre) && pre[i] < source {
		i++
	}
	if i < len(pre) && pre[i] == source {
		return nil
	}
	pre = append(pre, 0)
	copy(pre[i+1:], pre[i:])
	pre[i] = source
	id.preimages[target] = pre
	return nil
}

func (id *InvertDict) String() string {
	b := new(strings.Builder)
	for t, pre := range id.preimages {
		fmt.Fprintf(b, "%d <- %v\n", t, pre)
	}
	return b.String()
}
