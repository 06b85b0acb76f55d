// Package sparse implements the semi-dense vectors used as the column I/O
// format of the network basis kernel.
//
// What:
//
//   - Indexed: full-storage ("unpacked") vector. The value of position i lives
//     in Dense()[i]; Indices() lists the tracked positions in insertion order.
//     Every untracked slot is exactly 0.0.
//   - Packed: the k-th tracked value lives in Dense()[k] and its position in
//     Indices()[k]. Slots past NumElements() are exactly 0.0.
//   - Vector: the sealed capability interface shared by both variants.
//
// Why two types:
//
//	Elementwise arithmetic, Scan and direct slot access only make sense on
//	full storage; bulk scratch population and adjusted appends are the packed
//	workload. Splitting the variants turns the "must not be packed" checks into
//	compile-time errors. Conversion is explicit: ScanAndPack / CleanAndPack
//	move an Indexed buffer into a Packed one, Expand moves it back. The source
//	of a conversion is left empty with zero capacity.
//
// Tiny values:
//
//	Values below TinyElement in magnitude are never inserted by the checked
//	entry points (Add, Append, SetVector...). A tracked value that cancels
//	below TinyElement is snapped to ReallyTinyElement so it stays tracked and
//	nonzero; Clean removes it later. This keeps index churn down while never
//	leaving a true zero marked as nonzero.
//
// Errors:
//
//	Precondition violations return *Error (operation, parameter and one of the
//	sentinels ErrNegativeIndex, ErrIndexOutOfRange, ErrIndexExists,
//	ErrDuplicateIndex, ErrZeroDivisor, ErrNegativeCapacity, ErrLengthMismatch).
//	Match with errors.Is. They signal caller bugs and are not recovered from.
//
// Complexity:
//
//	Insert/Add are O(1) amortized; Clear is O(nnz) when sparse and O(capacity)
//	otherwise; Scan* are O(range); elementwise operations are
//	O(nnz(a)+nnz(b)+capacity) because the result is a fresh copy.
//
// Vectors are not safe for concurrent use.
package sparse
