package reference

import "fmt"

// Matrix is a row-major 3x3 transform applied to column vectors.
type Matrix [3][3]float64

// Apply returns m * (x, y, z).
func (m Matrix) Apply(x, y, z float64) (a, b, c float64) {
	a = m[0][0]*x + m[0][1]*y + m[0][2]*z
	b = m[1][0]*x + m[1][1]*y + m[1][2]*z
	c = m[2][0]*x + m[2][1]*y + m[2][2]*z
	return a, b, c
}

// Mul returns the product m * n, i.e. the transform that applies n first.
func (m Matrix) Mul(n Matrix) Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return out
}

// Det returns the determinant of m.
func (m Matrix) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of m using the adjugate.
// ok is false when m is singular.
func (m Matrix) Inverse() (inv Matrix, ok bool) {
	det := m.Det()
	if det == 0 {
		return Matrix{}, false
	}
	d := 1 / det
	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * d
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * d
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * d
	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * d
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * d
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * d
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * d
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * d
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * d
	return inv, true
}

// Identity is the 3x3 identity matrix.
var Identity = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// MatrixID names a catalog matrix.
type MatrixID int

const (
	// XYZToSRGB converts XYZ to linear sRGB primaries (D65 white).
	XYZToSRGB MatrixID = iota
	// SRGBToXYZ converts linear sRGB (D65) to XYZ.
	SRGBToXYZ
	// XYZToWideGamut converts XYZ to linear Adobe wide-gamut primaries (D50 white).
	XYZToWideGamut
	// WideGamutToXYZ converts linear wide-gamut RGB (D50) to XYZ.
	WideGamutToXYZ

	matrixCount
)

var matrixNames = [...]string{
	XYZToSRGB:      "XYZ->sRGB(D65)",
	SRGBToXYZ:      "sRGB(D65)->XYZ",
	XYZToWideGamut: "XYZ->WideGamut(D50)",
	WideGamutToXYZ: "WideGamut(D50)->XYZ",
}

func (id MatrixID) String() string {
	if id < 0 || id >= matrixCount {
		return fmt.Sprintf("MatrixID(%d)", int(id))
	}
	return matrixNames[id]
}

// Matrix coefficients as published by the ICC (sRGB) and Bruce Lindbloom
// (Adobe wide gamut, D50).
var matrices = [...]Matrix{
	XYZToSRGB: {
		{3.2406255, -1.537208, -0.4986286},
		{-0.9689307, 1.8757561, 0.0415175},
		{0.0557101, -0.2040211, 1.0569959},
	},
	SRGBToXYZ: {
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	},
	XYZToWideGamut: {
		{1.4628067, -0.1840623, -0.2743606},
		{-0.5217933, 1.4472381, 0.0677227},
		{0.0349342, -0.0968930, 1.2884099},
	},
	WideGamutToXYZ: {
		{0.7161046, 0.1009296, 0.1471858},
		{0.2581874, 0.7249378, 0.0168748},
		{0.0, 0.0517813, 0.7734287},
	},
}

// MatrixFor returns a copy of the catalog matrix id.
func MatrixFor(id MatrixID) (Matrix, error) {
	if id < 0 || id >= matrixCount {
		return Matrix{}, fmt.Errorf("%w: %v", ErrUnknownMatrix, id)
	}
	return matrices[id], nil
}

// DisplayMatrixID returns the XYZ to RGB matrix used to display colours
// under illuminant t. D50 whites use the wide-gamut primaries; every other
// illuminant uses sRGB.
func DisplayMatrixID(t RefType) (MatrixID, error) {
	switch t {
	case D50Deg2, D50Deg10:
		return XYZToWideGamut, nil
	case D65Deg2, D65Deg10, D55Deg2, ICC, IllumA, IllumC, IllumE:
		return XYZToSRGB, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownIlluminant, t)
	}
}

// DisplayMatrix returns the XYZ to RGB matrix for illuminant t.
func DisplayMatrix(t RefType) (Matrix, error) {
	id, err := DisplayMatrixID(t)
	if err != nil {
		return Matrix{}, err
	}
	return MatrixFor(id)
}
