package filter

import "github.com/xhgen/reticle/internal/mask"

// Blur returns a gaussian-blurred copy of src. Edges extend by clamping.
// A non-positive radius returns an unmodified copy.
func Blur(src *mask.Coverage, radius float64) *mask.Coverage {
	dst := mask.NewCoverage(src.Width, src.Height)
	if radius <= 0 || src.Width == 0 || src.Height == 0 {
		copy(dst.Alpha, src.Alpha)
		return dst
	}

	kernel := GaussianKernel(radius)
	w, h := src.Width, src.Height
	temp := make([]float32, w*h)
	blurHorizontal(src.Alpha, temp, w, h, kernel)
	blurVertical(temp, dst.Alpha, w, h, kernel)
	return dst
}

// Glow screens a blurred halo of src over src itself:
//
//	out = 255 - (255-src)*(255-blur)/255
func Glow(src *mask.Coverage, radius float64) *mask.Coverage {
	halo := Blur(src, radius)
	for i, a := range src.Alpha {
		inv := (255 - int(a)) * (255 - int(halo.Alpha[i]))
		halo.Alpha[i] = uint8(255 - (inv+127)/255)
	}
	return halo
}

// blurHorizontal convolves each row of src into temp.
func blurHorizontal(src []uint8, temp []float32, w, h int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		row := src[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			var acc float32
			for k, weight := range kernel {
				kx := clamp(x+k-half, w)
				acc += float32(row[kx]) * weight
			}
			temp[y*w+x] = acc
		}
	}
}

// blurVertical convolves each column of temp into dst.
func blurVertical(temp []float32, dst []uint8, w, h int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc float32
			for k, weight := range kernel {
				ky := clamp(y+k-half, h)
				acc += temp[ky*w+x] * weight
			}
			dst[y*w+x] = clampUint8(acc)
		}
	}
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
