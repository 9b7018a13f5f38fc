// Package text provides String, a UTF-8 text container over the module's
// backend-selected byte storage. It layers a validity gate on top of the
// sequence container: the byte content is valid UTF-8 after every exported
// operation, successful or not, under either storage engine.
//
// Key Features:
//   - Construction from Go strings, byte slices, owned byte containers and
//     integers, each applying the UTF-8 gate before any storage is touched
//   - Rune-aware editing: push/pop, positional removal and truncation that
//     refuse to split an encoded rune
//   - Atomic failure: an operation that returns an error has appended nothing
//   - io.Writer, io.StringWriter and fmt.Stringer integration, so fmt.Fprintf
//     renders straight into bounded storage
//   - JSON and text encoding of the content only; capacity and engine leave
//     no trace on the wire
//
// Failure Model:
//
//	Two failures exist and they are checked in a fixed order: input that is
//	not valid UTF-8 reports mayheap.ErrInvalidUTF8, then input that does not
//	fit bounded storage reports mayheap.ErrBufferOverflow. Byte offsets that
//	land inside an encoded rune are caller bugs and panic, like slicing a Go
//	string out of range.
//
// Thread Safety:
//
//	A String is a single-owner value with no internal synchronization. Callers
//	that share one across goroutines must provide their own.
package text
