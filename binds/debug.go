//go:build !taibind_release

package binds

// DebugEnabled reports whether bindings carry a text label.
// Build with the taibind_release tag to drop labels.
const DebugEnabled = true
