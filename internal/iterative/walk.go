package iterative

import (
	"bigoh/internal/ast"
	"bigoh/internal/costir"
)

// walker threads no package-level state; every method receiver carries
// exactly the accumulators a single Analyze call needs, so concurrent
// analyses of different programs never share memory (spec.md §9 "no
// global state").
type walker struct {
	lines []LineCost
	notes []string
}

func (w *walker) recordLine(line int, kind string, mult []costir.Value, worst, best, avg costir.Value) {
	w.lines = append(w.lines, LineCost{
		Line:       line,
		Kind:       kind,
		Multiplier: costir.Simplify(productOf(mult)),
		Worst:      costir.Simplify(worst),
		Best:       costir.Simplify(best),
		Avg:        costir.Simplify(avg),
	})
}

func productOf(mult []costir.Value) costir.Value {
	if len(mult) == 0 {
		return costir.One()
	}
	factors := make([]costir.Value, len(mult))
	copy(factors, mult)
	return costir.Prod{Factors: factors}
}

// costBlock sums the cost of every statement in a block. It is the
// "Block" case of spec.md §4.4's cost walk: term-wise sum of children's
// costs. origin tracks, for each variable assigned a bare alias of
// another symbol (`i<-n`), the symbol it was seeded from, so a later
// while/repeat governed by that variable can report its trip count in
// terms of the original size parameter rather than the local alias.
func (w *walker) costBlock(b *ast.Block, mult []costir.Value, origin map[string]string) (worst, best, avg costir.Value) {
	worst, best, avg = costir.Zero(), costir.Zero(), costir.Zero()
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		if a, ok := s.(*ast.Assign); ok {
			if target, ok := a.Target.(*ast.VarExpr); ok {
				if src, ok := a.Value.(*ast.VarExpr); ok && src.Name != target.Name {
					origin[target.Name] = src.Name
				} else {
					delete(origin, target.Name)
				}
			}
		}
		sw, sb, sa := w.costStmt(s, mult, origin)
		worst = costir.Add(worst, sw)
		best = costir.Add(best, sb)
		avg = costir.Add(avg, sa)
	}
	return
}

// costStmt is the per-statement dispatch of spec.md §4.4's cost walk.
// mult is the ordered list of enclosing loops' IR trip counts; it is
// never mutated in place, only extended via append on recursion into a
// new loop body, so siblings never see each other's pushes.
func (w *walker) costStmt(stmt ast.Stmt, mult []costir.Value, origin map[string]string) (worst, best, avg costir.Value) {
	switch s := stmt.(type) {
	case *ast.Assign:
		w.recordLine(s.Pos.Line, "assign", mult, costir.One(), costir.One(), costir.One())
		return costir.One(), costir.One(), costir.One()

	case *ast.CallStmt:
		w.recordLine(s.Pos.Line, "call", mult, costir.One(), costir.One(), costir.One())
		return costir.One(), costir.One(), costir.One()

	case *ast.Return:
		w.recordLine(s.Pos.Line, "return", mult, costir.One(), costir.One(), costir.One())
		return costir.One(), costir.One(), costir.One()

	case *ast.ExprStmt:
		w.recordLine(s.Pos.Line, "declaration", mult, costir.Zero(), costir.Zero(), costir.Zero())
		return costir.Zero(), costir.Zero(), costir.Zero()

	case *ast.ObjectDecl:
		w.recordLine(s.Pos.Line, "declaration", mult, costir.Zero(), costir.Zero(), costir.Zero())
		return costir.Zero(), costir.Zero(), costir.Zero()

	case *ast.If:
		return w.costIf(s, mult, origin)

	case *ast.For:
		return w.costFor(s, mult, origin)

	case *ast.While:
		return w.costWhile(s, mult, origin)

	case *ast.Repeat:
		return w.costRepeat(s, mult, origin)

	default:
		return costir.Zero(), costir.Zero(), costir.Zero()
	}
}

func (w *walker) costIf(s *ast.If, mult []costir.Value, origin map[string]string) (worst, best, avg costir.Value) {
	thenW, thenB, thenA := w.costBlock(s.Then, mult, cloneOrigin(origin))
	var elseW, elseB, elseA costir.Value = costir.Zero(), costir.Zero(), costir.Zero()
	if s.Else != nil {
		elseW, elseB, elseA = w.costBlock(s.Else, mult, cloneOrigin(origin))
	}

	condCost := costir.One()
	worst = costir.Add(condCost, costir.Max{Alts: []costir.Value{thenW, elseW}})
	best = costir.Add(condCost, costir.Min{Alts: []costir.Value{thenB, elseB}})
	avg = costir.Add(condCost, costir.Div(costir.Add(thenA, elseA), costir.KInt(2)))

	w.recordLine(s.Pos.Line, "if", mult, worst, best, avg)
	return
}

func (w *walker) costFor(s *ast.For, mult []costir.Value, origin map[string]string) (worst, best, avg costir.Value) {
	n := ForTripCount(s)

	w.recordLine(s.Pos.Line, "for", mult, costir.One(), costir.One(), costir.One())

	bodyMult := append(append([]costir.Value{}, mult...), n)
	bw, bb, ba := w.costBlock(s.Body, bodyMult, cloneOrigin(origin))

	// Header init cost + N iterations of the body, keeping the emitted
	// line records and the aggregate in exact agreement.
	worst = costir.Add(costir.One(), costir.Mul(n, bw))
	best = costir.Add(costir.One(), costir.Mul(n, bb))
	avg = costir.Add(costir.One(), costir.Mul(n, ba))
	return
}

func (w *walker) costWhile(s *ast.While, mult []costir.Value, origin map[string]string) (worst, best, avg costir.Value) {
	tc := tripCountWhileLike(s.Cond, s.Body, origin)
	if tc.Note != "" {
		w.notes = append(w.notes, tc.Note)
	}

	w.recordLine(s.Pos.Line, "while", mult, costir.One(), costir.One(), costir.One())

	bodyMult := append(append([]costir.Value{}, mult...), tc.Worst)
	bw, bb, ba := w.costBlock(s.Body, bodyMult, cloneOrigin(origin))

	worst = costir.Add(costir.One(), costir.Mul(tc.Worst, bw))
	best = costir.Add(costir.One(), costir.Mul(tc.Best, bb))
	avg = costir.Add(costir.One(), costir.Mul(tc.Avg, ba))
	return
}

func (w *walker) costRepeat(s *ast.Repeat, mult []costir.Value, origin map[string]string) (worst, best, avg costir.Value) {
	tc := tripCountRepeat(s.Until, s.Stmts, origin)
	if tc.Note != "" {
		w.notes = append(w.notes, tc.Note)
	}

	w.recordLine(s.Pos.Line, "repeat", mult, costir.One(), costir.One(), costir.One())

	bodyMult := append(append([]costir.Value{}, mult...), tc.Worst)
	body := &ast.Block{Pos: s.Pos, EndPos: s.EndPos, Stmts: s.Stmts}
	bw, bb, ba := w.costBlock(body, bodyMult, cloneOrigin(origin))

	worst = costir.Add(costir.One(), costir.Mul(tc.Worst, bw))
	best = costir.Add(costir.One(), costir.Mul(tc.Best, bb))
	avg = costir.Add(costir.One(), costir.Mul(tc.Avg, ba))
	return
}

// cloneOrigin copies the alias-tracking map before descending into a
// branch or loop body, so updates made inside don't leak back out to
// sibling statements that never actually ran after it.
func cloneOrigin(origin map[string]string) map[string]string {
	out := make(map[string]string, len(origin))
	for k, v := range origin {
		out[k] = v
	}
	return out
}
