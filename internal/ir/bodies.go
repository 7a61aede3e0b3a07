package ir

// Body names one of the intra-procedural units the driver iterates
// over: the program's own top-level body, a function, or a class
// method. Optimization never crosses a Body boundary (§1's
// intra-procedural non-goal).
type Body[A any] struct {
	// Qualifier is "<program>" for the top level, "fn <name>" for a
	// function, or "<class>.<method>" for a method — used only for
	// diagnostics.
	Qualifier string
	Inits     []VarInit[A]
	Blocks    []BasicBlock[A]
}

// Bodies returns every independently-optimized unit in p, in a stable
// order: the top-level body, then each function, then each class
// method.
func Bodies[A any](p *Program[A]) []Body[A] {
	bodies := make([]Body[A], 0, 1+len(p.Funs)+len(p.Classes))
	bodies = append(bodies, Body[A]{Qualifier: "<program>", Inits: p.Inits, Blocks: p.Body})
	for _, fn := range p.Funs {
		bodies = append(bodies, Body[A]{Qualifier: "fn " + fn.Name, Inits: fn.Inits, Blocks: fn.Body})
	}
	for _, cls := range p.Classes {
		for _, m := range cls.Methods {
			bodies = append(bodies, Body[A]{
				Qualifier: cls.Name + "." + m.Name,
				Inits:     m.Inits,
				Blocks:    m.Body,
			})
		}
	}
	return bodies
}

// SetBlocks writes back an optimized block list for the body at index
// i (in the order Bodies returned) into p.
func SetBlocks[A any](p *Program[A], i int, blocks []BasicBlock[A]) {
	if i == 0 {
		p.Body = blocks
		return
	}
	i--
	if i < len(p.Funs) {
		p.Funs[i].Body = blocks
		return
	}
	i -= len(p.Funs)
	for ci := range p.Classes {
		cls := &p.Classes[ci]
		if i < len(cls.Methods) {
			cls.Methods[i].Body = blocks
			return
		}
		i -= len(cls.Methods)
	}
}

// BlockByLabel looks up a block by label within blocks; ok is false if
// no such block exists (e.g. a jump to an undeclared label — malformed
// IR per §7).
func BlockByLabel[A any](blocks []BasicBlock[A], label string) (BasicBlock[A], bool) {
	for _, b := range blocks {
		if b.Label == label {
			return b, true
		}
	}
	return BasicBlock[A]{}, false
}
