package planarmath

import (
	"math"

	"github.com/routelab/boardmath/utils"
)

// MTV is a minimum translation vector: translating the FIRST operand of a
// collision query by Vector is expected to restore at least the requested
// clearance. Valid is false when the colliding pair of shape variants has no
// translation-vector support; callers must not read Vector in that case.
// The vector is conservative and locally valid, not globally optimal.
type MTV struct {
	Vector Vec
	Valid  bool
}

func (m *MTV) set(v Vec) {
	m.Vector = v
	m.Valid = true
}

func (m *MTV) negate() {
	if m != nil && m.Valid {
		m.Vector = m.Vector.Neg()
	}
}

// Collide reports whether the two shapes are closer than clearance. This is
// the cheapest query form: it stops at the first hit.
func Collide(a, b Shape, clearance int) (bool, error) {
	return collideShapes(a, b, clearance, nil, nil, nil)
}

// CollideWithDistance additionally reports the actual separation distance
// (0 when overlapping) and a witness point on or near the contact region.
// Either output may be nil; work feeding only nil outputs is skipped.
func CollideWithDistance(a, b Shape, clearance int, actual *int, location *Vec) (bool, error) {
	return collideShapes(a, b, clearance, actual, location, nil)
}

// CollideWithMTV additionally computes a translation vector for the first
// shape, omitting distance and location work.
func CollideWithMTV(a, b Shape, clearance int, mtv *MTV) (bool, error) {
	return collideShapes(a, b, clearance, nil, nil, mtv)
}

// CollideDetailed is the full four-output query. Any output may be nil.
func CollideDetailed(a, b Shape, clearance int, actual *int, location *Vec, mtv *MTV) (bool, error) {
	return collideShapes(a, b, clearance, actual, location, mtv)
}

func collideCircleCircle(a, b *Circle, clearance int, actual *int, location *Vec, mtv *MTV) bool {
	minDist := int64(clearance) + int64(a.radius) + int64(b.radius)
	minDistSq := minDist * minDist

	delta := b.center.Sub(a.center)
	distSq := delta.SquaredNorm()

	if distSq >= minDistSq {
		return false
	}

	if actual != nil {
		*actual = utils.MaxInt(0, int(math.Sqrt(float64(distSq)))-a.radius-b.radius)
	}
	if location != nil {
		*location = Vec{(a.center.X + b.center.X) / 2, (a.center.Y + b.center.Y) / 2}
	}
	if mtv != nil {
		// The +3 margin counteracts integer rounding of the resized vector
		// so the translated shape clears the threshold.
		dist := int(math.Sqrt(float64(distSq)))
		mtv.set(delta.Resize(int(minDist) - dist + 3).Neg())
	}
	return true
}

func collideRectCircle(a *Rect, b *Circle, clearance int, actual *int, location *Vec, mtv *MTV) bool {
	c := b.center
	p0 := a.pos
	size := a.size
	r := b.radius
	minDist := clearance + r
	minDistSq := sq(minDist)

	vts := [5]Vec{
		{p0.X, p0.Y},
		{p0.X, p0.Y + size.Y},
		{p0.X + size.X, p0.Y + size.Y},
		{p0.X + size.X, p0.Y},
		{p0.X, p0.Y},
	}

	nearestSideDistSq := ecoordMax
	var nearest Vec

	inside := c.X >= p0.X && c.X <= p0.X+size.X &&
		c.Y >= p0.Y && c.Y <= p0.Y+size.Y

	// A boolean-only query can stop at a hard hit.
	if inside && actual == nil && location == nil && mtv == nil {
		return true
	}

	for i := 0; i < 4; i++ {
		side := Seg{A: vts[i], B: vts[i+1]}
		pn := side.NearestPoint(c)
		sideDistSq := pn.Sub(c).SquaredNorm()

		if sideDistSq < nearestSideDistSq {
			nearest = pn
			nearestSideDistSq = sideDistSq

			// Only a side already within the threshold settles the query
			// early; a mere improvement may still be a miss.
			if (nearestSideDistSq == 0 || (actual == nil && nearestSideDistSq < minDistSq)) && mtv == nil {
				break
			}
		}
	}

	if !inside && nearestSideDistSq >= minDistSq {
		return false
	}

	if location != nil {
		*location = nearest
	}
	if actual != nil {
		if inside {
			*actual = 0
		} else {
			*actual = utils.MaxInt(0, int(math.Sqrt(float64(nearestSideDistSq)))-r)
		}
	}
	if mtv != nil {
		delta := c.Sub(nearest)
		dist := int(math.Sqrt(float64(nearestSideDistSq)))
		if inside {
			// Push the rectangle so the circle exits through its nearest
			// edge: the deeper the center sits, the larger the vector.
			mtv.set(delta.Resize(utils.AbsInt(minDist+1+dist) + 1))
		} else {
			mtv.set(delta.Resize(utils.AbsInt(minDist+1-dist) + 1).Neg())
		}
	}
	return true
}

// pushoutForce nudges the circle off the segment, retrying with a growing
// margin until the pushed copy actually clears the threshold. Rounding of the
// resized vector can otherwise leave it a unit short.
func pushoutForce(c *Circle, seg Seg, clearance int) Vec {
	var f Vec

	nearest := seg.NearestPoint(c.center)
	dist := nearest.Sub(c.center).Norm()
	minDist := clearance + c.radius

	if dist < minDist {
		for corr := 0; corr < 5; corr++ {
			f = c.center.Sub(nearest).Resize(minDist - dist + corr)
			if seg.Distance(c.center.Add(f)) >= minDist {
				break
			}
		}
	}
	return f
}

func collideCircleChain(a *Circle, b chainLike, clearance int, actual *int, location *Vec, mtv *MTV) bool {
	closestDist := math.MaxInt
	var nearest Vec
	colliding := false

	for s := 0; s < b.SegmentCount(); s++ {
		collisionDist := 0
		var pn Vec

		var collisionDistPtr *int
		if actual != nil || location != nil {
			collisionDistPtr = &collisionDist
		}
		var pnPtr *Vec
		if location != nil {
			pnPtr = &pn
		}

		if a.CollideSeg(b.Segment(s), clearance, collisionDistPtr, pnPtr) {
			colliding = true
			if collisionDist < closestDist {
				nearest = pn
				closestDist = collisionDist

				if closestDist == 0 || actual == nil {
					break
				}
			}
		}
	}

	if !colliding {
		return false
	}

	if location != nil {
		*location = nearest
	}
	if actual != nil {
		*actual = closestDist
	}
	if mtv != nil {
		// Iteratively push a scratch copy of the circle off each segment in
		// turn; the summed forces approximate an escape vector that is robust
		// at corners. This is a heuristic, not an exact Minkowski result.
		cmoved := Circle{center: a.center, radius: a.radius}
		var fTotal Vec

		for s := 0; s < b.SegmentCount(); s++ {
			f := pushoutForce(&cmoved, b.Segment(s), clearance)
			cmoved.center = cmoved.center.Add(f)
			fTotal = fTotal.Add(f)
		}
		mtv.set(fTotal)
	}
	return true
}

func collideCircleSegment(a *Circle, b *Segment, clearance int, actual *int, location *Vec, mtv *MTV) bool {
	inflated := clearance + b.width/2

	if !a.CollideSeg(b.seg, inflated, actual, location) {
		return false
	}
	if actual != nil {
		*actual = utils.MaxInt(0, *actual-b.width/2)
	}
	if mtv != nil {
		mtv.set(pushoutForce(a, b.seg, inflated))
	}
	return true
}

// collideChainChain sweeps the Cartesian product of boundary segments. It
// yields no translation vector.
func collideChainChain(a, b chainLike, clearance int, actual *int, location *Vec) bool {
	if a.SegmentCount() == 0 || b.SegmentCount() == 0 {
		return false
	}

	// The segment sweep only sees boundary contact; an operand fully
	// enclosed by a closed chain is caught here. The sweep below covers the
	// mirrored case through a's per-segment containment check.
	if b.IsClosed() && b.PointInside(a.Segment(0).A) {
		if location != nil {
			*location = a.Segment(0).A
		}
		if actual != nil {
			*actual = 0
		}
		return true
	}

	closestDist := math.MaxInt
	var nearest Vec
	colliding := false

	for i := 0; i < b.SegmentCount(); i++ {
		collisionDist := 0
		var pn Vec

		var collisionDistPtr *int
		if actual != nil || location != nil {
			collisionDistPtr = &collisionDist
		}
		var pnPtr *Vec
		if location != nil {
			pnPtr = &pn
		}

		if a.CollideSeg(b.Segment(i), clearance, collisionDistPtr, pnPtr) {
			colliding = true
			if collisionDist < closestDist {
				nearest = pn
				closestDist = collisionDist

				if closestDist == 0 || actual == nil {
					break
				}
			}
		}
	}

	if !colliding {
		return false
	}

	if location != nil {
		*location = nearest
	}
	if actual != nil {
		*actual = closestDist
	}
	return true
}

func collideRectChain(a *Rect, b chainLike, clearance int, actual *int, location *Vec) bool {
	if b.SegmentCount() == 0 {
		return false
	}

	if b.IsClosed() && b.PointInside(a.Centre()) {
		if location != nil {
			*location = a.Centre()
		}
		if actual != nil {
			*actual = 0
		}
		return true
	}

	closestDist := math.MaxInt
	var nearest Vec
	colliding := false

	for s := 0; s < b.SegmentCount(); s++ {
		collisionDist := 0
		var pn Vec

		var collisionDistPtr *int
		if actual != nil || location != nil {
			collisionDistPtr = &collisionDist
		}
		var pnPtr *Vec
		if location != nil {
			pnPtr = &pn
		}

		if a.CollideSeg(b.Segment(s), clearance, collisionDistPtr, pnPtr) {
			colliding = true
			if collisionDist < closestDist {
				nearest = pn
				closestDist = collisionDist

				if closestDist == 0 || actual == nil {
					break
				}
			}
		}
	}

	if !colliding {
		return false
	}

	if location != nil {
		*location = nearest
	}
	if actual != nil {
		*actual = closestDist
	}
	return true
}

func collideRectSegment(a *Rect, b *Segment, clearance int, actual *int, location *Vec) bool {
	if !a.CollideSeg(b.seg, clearance+b.width/2, actual, location) {
		return false
	}
	if actual != nil {
		*actual = utils.MaxInt(0, *actual-b.width/2)
	}
	return true
}

func collideSegmentSegment(a, b *Segment, clearance int, actual *int, location *Vec) bool {
	if !a.CollideSeg(b.seg, clearance+b.width/2, actual, location) {
		return false
	}
	if actual != nil {
		*actual = utils.MaxInt(0, *actual-b.width/2)
	}
	return true
}

func collideChainSegment(a chainLike, b *Segment, clearance int, actual *int, location *Vec) bool {
	if !a.CollideSeg(b.seg, clearance+b.width/2, actual, location) {
		return false
	}
	if actual != nil {
		*actual = utils.MaxInt(0, *actual-b.width/2)
	}
	return true
}

// reversed adapts a routine called with swapped operands back to the caller's
// order by flipping the translation vector's sign.
func reversed(ok bool, mtv *MTV) bool {
	if ok {
		mtv.negate()
	}
	return ok
}

// collideSingleShapes resolves the variant tags of two non-compound shapes to
// the pairwise routine implementing them. Each unordered pair is implemented
// once; the adapter swaps operands and negates the translation vector when
// the caller's order does not match. An uncovered pair is a programming
// defect and surfaces as an error, never as "no collision".
func collideSingleShapes(a, b Shape, clearance int, actual *int, location *Vec, mtv *MTV) (bool, error) {
	if a.Type() == TypeEmpty || b.Type() == TypeEmpty {
		return false, nil
	}

	// Broad phase: bounding boxes further apart than the clearance cannot
	// hold a hit. Box contact is inclusive, so exact touches still dispatch.
	if !a.BBox().Inflate(clearance).Intersects(b.BBox()) {
		return false, nil
	}

	switch aa := a.(type) {
	case *Rect:
		switch bb := b.(type) {
		case *Rect:
			return collideChainChain(aa.Outline(), bb.Outline(), clearance, actual, location), nil
		case *Circle:
			return collideRectCircle(aa, bb, clearance, actual, location, mtv), nil
		case *Segment:
			return collideRectSegment(aa, bb, clearance, actual, location), nil
		case *Arc:
			return collideChainChain(bb.Polyline(), aa.Outline(), clearance, actual, location), nil
		default:
			if cb, ok := asChain(b); ok {
				return collideRectChain(aa, cb, clearance, actual, location), nil
			}
		}

	case *Circle:
		switch bb := b.(type) {
		case *Rect:
			return reversed(collideRectCircle(bb, aa, clearance, actual, location, mtv), mtv), nil
		case *Circle:
			return collideCircleCircle(aa, bb, clearance, actual, location, mtv), nil
		case *Segment:
			return collideCircleSegment(aa, bb, clearance, actual, location, mtv), nil
		case *Arc:
			return collideCircleChain(aa, bb.Polyline(), clearance, actual, location, mtv), nil
		default:
			if cb, ok := asChain(b); ok {
				return collideCircleChain(aa, cb, clearance, actual, location, mtv), nil
			}
		}

	case *Segment:
		switch bb := b.(type) {
		case *Rect:
			return collideRectSegment(bb, aa, clearance, actual, location), nil
		case *Circle:
			return reversed(collideCircleSegment(bb, aa, clearance, actual, location, mtv), mtv), nil
		case *Segment:
			return collideSegmentSegment(aa, bb, clearance, actual, location), nil
		case *Arc:
			return collideChainSegment(bb.Polyline(), aa, clearance, actual, location), nil
		default:
			if cb, ok := asChain(b); ok {
				return collideChainSegment(cb, aa, clearance, actual, location), nil
			}
		}

	case *Arc:
		switch bb := b.(type) {
		case *Rect:
			return collideChainChain(aa.Polyline(), bb.Outline(), clearance, actual, location), nil
		case *Circle:
			return reversed(collideCircleChain(bb, aa.Polyline(), clearance, actual, location, mtv), mtv), nil
		case *Segment:
			return collideChainSegment(aa.Polyline(), bb, clearance, actual, location), nil
		case *Arc:
			return collideChainChain(aa.Polyline(), bb.Polyline(), clearance, actual, location), nil
		default:
			if cb, ok := asChain(b); ok {
				return collideChainChain(aa.Polyline(), cb, clearance, actual, location), nil
			}
		}

	default:
		if ca, ok := asChain(a); ok {
			switch bb := b.(type) {
			case *Rect:
				return collideRectChain(bb, ca, clearance, actual, location), nil
			case *Circle:
				return reversed(collideCircleChain(bb, ca, clearance, actual, location, mtv), mtv), nil
			case *Segment:
				return collideChainSegment(ca, bb, clearance, actual, location), nil
			case *Arc:
				return collideChainChain(bb.Polyline(), ca, clearance, actual, location), nil
			default:
				if cb, ok := asChain(b); ok {
					return collideChainChain(ca, cb, clearance, actual, location), nil
				}
			}
		}
	}

	return false, newCollisionTypeUnsupportedError(a, b)
}

// collideShapes is the top-level dispatch. When either operand is a compound
// it merges per-sub-shape results: the smallest actual distance and its
// location win, while the translation vector with the LARGEST magnitude among
// colliding sub-pairs is kept. Boolean-only queries stop scanning at the
// first hit.
func collideShapes(a, b Shape, clearance int, actual *int, location *Vec, mtv *MTV) (bool, error) {
	currentActual := math.MaxInt
	var currentLocation Vec
	var currentMTV MTV
	colliding := false

	canExit := func() bool {
		if !colliding {
			return false
		}
		if actual != nil && currentActual > 0 {
			return false
		}
		if mtv != nil {
			return false
		}
		return true
	}

	collideCompoundSubshapes := func(elemA, elemB Shape) (bool, error) {
		subActual := 0
		var subLocation Vec
		var subMTV MTV

		var subActualPtr *int
		if actual != nil || location != nil {
			subActualPtr = &subActual
		}
		var subLocationPtr *Vec
		if location != nil {
			subLocationPtr = &subLocation
		}
		var subMTVPtr *MTV
		if mtv != nil {
			subMTVPtr = &subMTV
		}

		ok, err := collideSingleShapes(elemA, elemB, clearance, subActualPtr, subLocationPtr, subMTVPtr)
		if err != nil || !ok {
			return false, err
		}

		if subActual < currentActual {
			currentActual = subActual
			currentLocation = subLocation
		}
		if mtv != nil && subMTV.Valid {
			if !currentMTV.Valid || subMTV.Vector.SquaredNorm() > currentMTV.Vector.SquaredNorm() {
				currentMTV = subMTV
			}
		}
		return true, nil
	}

	cmpA, aCompound := a.(*Compound)
	cmpB, bCompound := b.(*Compound)

	switch {
	case aCompound && bCompound:
	outerBoth:
		for _, elemA := range cmpA.Shapes() {
			for _, elemB := range cmpB.Shapes() {
				ok, err := collideCompoundSubshapes(elemA, elemB)
				if err != nil {
					return false, err
				}
				if ok {
					colliding = true
					if canExit() {
						break outerBoth
					}
				}
			}
		}

	case aCompound:
		for _, elemA := range cmpA.Shapes() {
			ok, err := collideCompoundSubshapes(elemA, b)
			if err != nil {
				return false, err
			}
			if ok {
				colliding = true
				if canExit() {
					break
				}
			}
		}

	case bCompound:
		for _, elemB := range cmpB.Shapes() {
			ok, err := collideCompoundSubshapes(a, elemB)
			if err != nil {
				return false, err
			}
			if ok {
				colliding = true
				if canExit() {
					break
				}
			}
		}

	default:
		return collideSingleShapes(a, b, clearance, actual, location, mtv)
	}

	if colliding {
		if location != nil {
			*location = currentLocation
		}
		if actual != nil {
			*actual = currentActual
		}
		if mtv != nil {
			*mtv = currentMTV
		}
	}
	return colliding, nil
}
