package pick

import (
	"errors"
	"fmt"

	"dicedemo/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

var ErrUnproject = errors.New("pick: cannot unproject")

// Viewport is the window rectangle the projection maps onto, in pixels.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// toMat4 copies a raylib matrix into mathgl's column-major layout.
func toMat4(m rl.Matrix) mgl64.Mat4 {
	return mgl64.Mat4{
		float64(m.M0), float64(m.M1), float64(m.M2), float64(m.M3),
		float64(m.M4), float64(m.M5), float64(m.M6), float64(m.M7),
		float64(m.M8), float64(m.M9), float64(m.M10), float64(m.M11),
		float64(m.M12), float64(m.M13), float64(m.M14), float64(m.M15),
	}
}

// Unproject maps a window point at the given depth (0 near plane, 1 far plane)
// back into world space. Window y grows downward as raylib reports it.
func Unproject(screen rl.Vector2, depth float64, view, proj rl.Matrix, vp Viewport) (rl.Vector3, error) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return rl.Vector3{}, fmt.Errorf("%w: viewport %dx%d", ErrUnproject, vp.Width, vp.Height)
	}

	win := mgl64.Vec3{
		float64(screen.X),
		float64(vp.Height) - float64(screen.Y),
		depth,
	}
	obj, err := mgl64.UnProject(win, toMat4(view), toMat4(proj), vp.X, vp.Y, vp.Width, vp.Height)
	if err != nil {
		return rl.Vector3{}, fmt.Errorf("%w: %v", ErrUnproject, err)
	}
	return rl.Vector3{X: float32(obj[0]), Y: float32(obj[1]), Z: float32(obj[2])}, nil
}

// ScreenRay builds the pick ray under a window point: origin on the near plane,
// direction from the near point to the far point (not normalized).
func ScreenRay(screen rl.Vector2, view, proj rl.Matrix, vp Viewport) (physics.Ray, error) {
	near, err := Unproject(screen, 0, view, proj, vp)
	if err != nil {
		return physics.Ray{}, err
	}
	far, err := Unproject(screen, 1, view, proj, vp)
	if err != nil {
		return physics.Ray{}, err
	}
	return physics.Ray{Origin: near, Direction: rl.Vector3Subtract(far, near)}, nil
}
