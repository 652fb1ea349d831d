// Package export renders saved trajectories to SVG.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/swimz/internal/trajectory"
)

// TrajectorySVG draws the x-vs-z projection of a trajectory as an SVG
// path, autoscaled with 10% padding.
func TrajectorySVG(traj *trajectory.Trajectory, width, height int, strokeColor string) string {
	if traj == nil || traj.Len() < 2 {
		return ""
	}

	minZ, maxZ := traj.Zs[0], traj.Zs[0]
	minX, maxX := traj.States[0][0], traj.States[0][0]
	for i := range traj.Zs {
		z := traj.Zs[i]
		x := traj.States[i][0]
		if z < minZ {
			minZ = z
		}
		if z > maxZ {
			maxZ = z
		}
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}

	rangeZ := maxZ - minZ
	rangeX := maxX - minX
	if rangeZ == 0 {
		rangeZ = 1
	}
	if rangeX == 0 {
		rangeX = 1
	}
	minZ -= rangeZ * 0.1
	maxZ += rangeZ * 0.1
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	rangeZ = maxZ - minZ
	rangeX = maxX - minX

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i := range traj.Zs {
		px := (traj.Zs[i] - minZ) / rangeZ * float64(width)
		py := float64(height) - (traj.States[i][0]-minX)/rangeX*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
