// Package formats reads and writes mesh interchange formats for trail output.
package formats
