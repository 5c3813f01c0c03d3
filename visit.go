package depot

// Query visitors lock the world for the duration of the pass. Blocks are captured when the pass
// reaches them, so entities created by a visitor may or may not be visited in the same pass. Other structural changes requested from a visitor must go
// through the Enqueue* methods or DestroyEntity, which defer until the pass ends.

// Each calls fn for every entity matched by filter.
func (w *World) Each(filter Filter, fn Visitor) {
	w.Lock()
	defer w.Unlock()
	for _, arch := range w.index.matching(filter) {
		for _, block := range arch.entities.blocks() {
			for _, e := range block {
				fn(e)
			}
		}
	}
}

// Query1 calls fn for every entity holding A, with a pointer into A's column.
func Query1[A any](w *World, fn func(Entity, *A)) {
	ca := FactoryNewComponent[A]()
	w.Lock()
	defer w.Unlock()
	for _, arch := range w.index.matching(newFilter().And(ca)) {
		as := columnOf[A](arch, bitFor(ca)).blocks()
		for i, block := range arch.entities.blocks() {
			a := as[i]
			for j := range min(len(block), len(a)) {
				fn(block[j], &a[j])
			}
		}
	}
}

// Query2 calls fn for every entity holding A and B.
func Query2[A, B any](w *World, fn func(Entity, *A, *B)) {
	ca := FactoryNewComponent[A]()
	cb := FactoryNewComponent[B]()
	w.Lock()
	defer w.Unlock()
	for _, arch := range w.index.matching(newFilter().And(ca, cb)) {
		as := columnOf[A](arch, bitFor(ca)).blocks()
		bs := columnOf[B](arch, bitFor(cb)).blocks()
		for i, block := range arch.entities.blocks() {
			a, b := as[i], bs[i]
			for j := range min(len(block), len(a), len(b)) {
				fn(block[j], &a[j], &b[j])
			}
		}
	}
}

// Query3 calls fn for every entity holding A, B and C.
func Query3[A, B, C any](w *World, fn func(Entity, *A, *B, *C)) {
	ca := FactoryNewComponent[A]()
	cb := FactoryNewComponent[B]()
	cc := FactoryNewComponent[C]()
	w.Lock()
	defer w.Unlock()
	for _, arch := range w.index.matching(newFilter().And(ca, cb, cc)) {
		as := columnOf[A](arch, bitFor(ca)).blocks()
		bs := columnOf[B](arch, bitFor(cb)).blocks()
		cs := columnOf[C](arch, bitFor(cc)).blocks()
		for i, block := range arch.entities.blocks() {
			a, b, c := as[i], bs[i], cs[i]
			for j := range min(len(block), len(a), len(b), len(c)) {
				fn(block[j], &a[j], &b[j], &c[j])
			}
		}
	}
}

// Query4 calls fn for every entity holding A, B, C and D.
func Query4[A, B, C, D any](w *World, fn func(Entity, *A, *B, *C, *D)) {
	ca := FactoryNewComponent[A]()
	cb := FactoryNewComponent[B]()
	cc := FactoryNewComponent[C]()
	cd := FactoryNewComponent[D]()
	w.Lock()
	defer w.Unlock()
	for _, arch := range w.index.matching(newFilter().And(ca, cb, cc, cd)) {
		as := columnOf[A](arch, bitFor(ca)).blocks()
		bs := columnOf[B](arch, bitFor(cb)).blocks()
		cs := columnOf[C](arch, bitFor(cc)).blocks()
		ds := columnOf[D](arch, bitFor(cd)).blocks()
		for i, block := range arch.entities.blocks() {
			a, b, c, d := as[i], bs[i], cs[i], ds[i]
			for j := range min(len(block), len(a), len(b), len(c), len(d)) {
				fn(block[j], &a[j], &b[j], &c[j], &d[j])
			}
		}
	}
}
