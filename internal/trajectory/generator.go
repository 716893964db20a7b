package trajectory

import "math"

// DefaultTrajectory generates the deterministic S-curve used as the initial
// and reset trajectory: a closed-form yaw-rate profile over normalized
// progress t = i/n (a left arc, a right arc, then straight) with a gently
// oscillating forward speed. Orientation is integrated from the yaw rate,
// velocity follows the heading, position is integrated from velocity, all at
// the same dt as the rest of the system.
func DefaultTrajectory(n int, dt float64) MotionState {
	out := NewMotionState(n)
	var x, y, theta float64
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)

		var wz float64
		switch {
		case t < 0.3:
			wz = 0.3 * math.Sin(t*math.Pi/0.3)
		case t < 0.7:
			wz = -0.3 * math.Sin((t-0.3)*math.Pi/0.4)
		}
		speed := 10 + 3*math.Sin(2*math.Pi*t)

		out.Wz[i] = wz
		out.Oz[i] = theta
		out.Vx[i] = speed * math.Cos(theta)
		out.Vy[i] = speed * math.Sin(theta)
		out.Px[i], out.Py[i] = x, y

		x += out.Vx[i] * dt
		y += out.Vy[i] * dt
		theta = WrapAngle(theta + wz*dt)
	}
	return out
}
