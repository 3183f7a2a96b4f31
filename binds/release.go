//go:build taibind_release

package binds

const DebugEnabled = false
