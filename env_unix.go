//go:build !windows

package libopts

const pathListSeparator = ":"
