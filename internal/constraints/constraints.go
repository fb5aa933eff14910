// Package constraints provides constraints for various types.
package constraints

// Byteseq represents a generic byte string, either string or byte slice.
type Byteseq interface {
	~string | ~[]byte
}
