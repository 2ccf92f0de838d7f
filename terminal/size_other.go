//go:build !unix

package terminal

func QueryGeometry() Geometry {
	return FallbackGeometry()
}
