// Package network models the constraint matrix of a network linear program:
// one row per node, one column per arc plus one slack column per row.
//
// Column layout:
//
//	arc j = (From, To)      −1 at row From, +1 at row To
//	slack of row r          +1 at row r
//
// An endpoint of -1 denotes the virtual root and contributes no entry, so an
// arc into or out of the root has a single coefficient. Sequence numbers run
// over the arcs first (0..Columns()-1) and then the slacks
// (Columns()..Columns()+Rows()-1).
//
// Basic couples a Matrix with the position → sequence list of the current
// basis and is the column source consumed by netbasis.
//
// Complexity: Unpack and Column are O(1); Dense is O(rows·(columns+rows));
// MulVec and TransMulVec are O(columns+rows).
package network
