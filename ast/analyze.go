package ast

// CaptureGroupCount returns the number of capturing groups in expr,
// matching the indices the parser assigned to Group.Index. Used to
// implement the engine's CaptureGroupCount() and to validate
// backreferences at compile time.
func CaptureGroupCount(expr *Expression) int {
	max := 0
	walkExpression(expr, func(item *ExpressionItem) {
		if item.Group != nil && item.Group.Capturing && item.Group.Index > max {
			max = item.Group.Index
		}
	})
	return max
}

// MaxBackreferenceIndex returns the largest group index referenced by any
// Backreference in expr, or 0 if there are none.
func MaxBackreferenceIndex(expr *Expression) int {
	max := 0
	walkExpression(expr, func(item *ExpressionItem) {
		if item.Backreference != nil && item.Backreference.Index > max {
			max = item.Backreference.Index
		}
	})
	return max
}

// walkExpression visits every ExpressionItem reachable from expr,
// including those nested inside groups and both branches of alternations.
func walkExpression(expr *Expression, visit func(*ExpressionItem)) {
	if expr == nil {
		return
	}
	for i := range expr.Items {
		item := &expr.Items[i]
		visit(item)
		switch {
		case item.Group != nil:
			walkExpression(&item.Group.Inner, visit)
		case item.Alternation != nil:
			walkExpression(&item.Alternation.Left, visit)
			walkExpression(&item.Alternation.Right, visit)
		}
	}
}
