// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package element

import "hash/maphash"

//nolint:gochecknoglobals
var transformationSeed = maphash.MakeSeed()

// Transformation is a full transformation of {0, ..., n-1}: Images[i] is
// the image of point i. Degree is len(Images).
type Transformation struct {
	Images []uint16
}

// NewTransformation copies images into a new Transformation.
func NewTransformation(images []uint16) *Transformation {
	cp := make([]uint16, len(images))
	copy(cp, images)
	return &Transformation{Images: cp}
}

func (t *Transformation) Equal(other *Transformation) bool {
	if len(t.Images) != len(other.Images) {
		return false
	}
	for i, v := range t.Images {
		if other.Images[i] != v {
			return false
		}
	}
	return true
}

func (t *Transformation) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(transformationSeed)
	buf := make([]byte, 2*len(t.Images))
	for i, v := range t.Images {
		buf[2*i] = byte(v)
		buf[2*i+1] = byte(v >> 8)
	}
	_, _ = h.Write(buf)
	return h.Sum64()
}

func (t *Transformation) Degree() int { return len(t.Images) }

// Complexity of composing two transformations is linear in the degree.
func (t *Transformation) Complexity() int { return len(t.Images) }

func (t *Transformation) Identity() Transformation {
	id := make([]uint16, len(t.Images))
	for i := range id {
		id[i] = uint16(i)
	}
	return Transformation{Images: id}
}

func (t *Transformation) Clone() Transformation {
	cp := make([]uint16, len(t.Images))
	copy(cp, t.Images)
	return Transformation{Images: cp}
}

// CloneWidened extends the domain by delta points, each mapped to itself.
func (t *Transformation) CloneWidened(delta int) Transformation {
	cp := make([]uint16, len(t.Images)+delta)
	copy(cp, t.Images)
	for i := len(t.Images); i < len(cp); i++ {
		cp[i] = uint16(i)
	}
	return Transformation{Images: cp}
}

// Product writes a*b (apply a, then b) into the receiver.
func (t *Transformation) Product(a, b *Transformation, _ int) {
	if len(t.Images) != len(a.Images) {
		t.Images = make([]uint16, len(a.Images))
	}
	for i, ai := range a.Images {
		t.Images[i] = b.Images[ai]
	}
}
