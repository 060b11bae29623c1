// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package element

import "hash/maphash"

//nolint:gochecknoglobals
var partialPermSeed = maphash.MakeSeed()

// undefinedPoint marks a point outside the domain of a partial permutation.
const undefinedPoint = -1

// PartialPerm is an injective partial map of {0, ..., n-1} to itself.
// Images[i] is the image of i, or undefinedPoint if i is not in the domain.
type PartialPerm struct {
	Images []int32
}

// NewPartialPerm builds a partial permutation of the given degree from a
// domain/image pair: dom[i] maps to img[i], every other point is undefined.
func NewPartialPerm(degree int, dom, img []int) *PartialPerm {
	images := make([]int32, degree)
	for i := range images {
		images[i] = undefinedPoint
	}
	for i, d := range dom {
		images[d] = int32(img[i])
	}
	return &PartialPerm{Images: images}
}

func (p *PartialPerm) Equal(other *PartialPerm) bool {
	if len(p.Images) != len(other.Images) {
		return false
	}
	for i, v := range p.Images {
		if other.Images[i] != v {
			return false
		}
	}
	return true
}

func (p *PartialPerm) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(partialPermSeed)
	buf := make([]byte, 4*len(p.Images))
	for i, v := range p.Images {
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v >> 16)
		buf[4*i+3] = byte(v >> 24)
	}
	_, _ = h.Write(buf)
	return h.Sum64()
}

func (p *PartialPerm) Degree() int { return len(p.Images) }

func (p *PartialPerm) Complexity() int { return len(p.Images) }

func (p *PartialPerm) Identity() PartialPerm {
	id := make([]int32, len(p.Images))
	for i := range id {
		id[i] = int32(i)
	}
	return PartialPerm{Images: id}
}

func (p *PartialPerm) Clone() PartialPerm {
	cp := make([]int32, len(p.Images))
	copy(cp, p.Images)
	return PartialPerm{Images: cp}
}

func (p *PartialPerm) CloneWidened(delta int) PartialPerm {
	cp := make([]int32, len(p.Images)+delta)
	copy(cp, p.Images)
	for i := len(p.Images); i < len(cp); i++ {
		cp[i] = undefinedPoint
	}
	return PartialPerm{Images: cp}
}

// Product writes a*b into the receiver: (a*b)(i) = b(a(i)) when both sides
// are defined, undefinedPoint otherwise.
func (p *PartialPerm) Product(a, b *PartialPerm, _ int) {
	if len(p.Images) != len(a.Images) {
		p.Images = make([]int32, len(a.Images))
	}
	for i, ai := range a.Images {
		if ai == undefinedPoint {
			p.Images[i] = undefinedPoint
			continue
		}
		p.Images[i] = b.Images[ai]
	}
}
