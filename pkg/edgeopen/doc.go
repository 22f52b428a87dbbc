// Package edgeopen applies requested perimeter openings to a generated
// tile grid: it carves the outer-wall segment and its single inward cell
// to Floor, assigns each opening a stable insertion-order id, and records
// entrance/exit role bookkeeping. Component ids are deferred to the
// derived-metadata pass, which is the only stage with connectivity
// information. With no specs given, the planner carves nothing: the
// baseline contract is a fully walled border.
package edgeopen
