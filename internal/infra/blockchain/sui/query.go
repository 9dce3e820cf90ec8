package sui

import "fmt"

// discoveryQuery selects the last n checkpoints. $before is never bound, so the
// window ends at the tip and its startCursor sits n checkpoints behind it.
func discoveryQuery(n int) string {
	return fmt.Sprintf(
		"query ($before: String) { checkpoints(last: %d, before: $before) { pageInfo { startCursor } nodes { digest timestamp } }}",
		n,
	)
}

// pageQuery selects up to pageSize checkpoints after $after along with the
// balance changes of every transaction block they contain.
func pageQuery(pageSize int) string {
	return fmt.Sprintf(
		"query ($after: String) { checkpoints(first: %d, after: $after) { pageInfo { hasNextPage endCursor } nodes { timestamp transactionBlocks { edges { node { effects { balanceChanges { nodes { owner { address } amount }}}}}}} }}",
		pageSize,
	)
}

// pageVariables binds the cursor of a forward page. The cursor travels as a JSON
// value, so it is escaped by the encoder whatever it contains.
func pageVariables(after string) map[string]any {
	return map[string]any{"after": after}
}
