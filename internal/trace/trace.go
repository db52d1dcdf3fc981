// Package trace records engine ticks and writes them out for offline study.
package trace

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/cubespin/internal/engine"
	"github.com/san-kum/cubespin/internal/geom"
)

type Sample struct {
	Frame    int                `json:"frame"`
	Time     float64            `json:"time"`
	Velocity geom.AngleVelocity `json:"velocity"`
	Vertices []geom.Point3D     `json:"vertices"`
}

// Recorder keeps every stride-th tick. It satisfies engine.Observer.
type Recorder struct {
	stride  int
	samples []Sample
}

func NewRecorder(stride int) *Recorder {
	if stride < 1 {
		stride = 1
	}
	return &Recorder{stride: stride, samples: make([]Sample, 0)}
}

func (r *Recorder) OnTick(s engine.Snapshot) {
	if s.Frame%r.stride != 0 {
		return
	}
	r.samples = append(r.samples, Sample{
		Frame:    s.Frame,
		Time:     float64(s.Frame) / engine.FrameRate,
		Velocity: s.Velocity,
		Vertices: s.Vertices,
	})
}

func (r *Recorder) Samples() []Sample { return r.samples }

// Speeds returns the angular speed magnitude of each sample.
func (r *Recorder) Speeds() []float64 {
	out := make([]float64, len(r.samples))
	for i, s := range r.samples {
		out[i] = s.Velocity.Norm()
	}
	return out
}

// Drift returns how far each sample's first vertex sits from the ideal
// corner radius, exposing the error accumulated by in-place rotation.
func (r *Recorder) Drift() []float64 {
	ideal := geom.Point3D{X: engine.HalfSide, Y: engine.HalfSide, Z: engine.HalfSide}.Length()
	out := make([]float64, len(r.samples))
	for i, s := range r.samples {
		if len(s.Vertices) > 0 {
			out[i] = s.Vertices[0].Length() - ideal
		}
	}
	return out
}

func (r *Recorder) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := []string{"frame", "time", "xa", "ya", "za", "drift"}
	if len(r.samples) > 0 {
		for i := range r.samples[0].Vertices {
			header = append(header, fmt.Sprintf("v%d_x", i), fmt.Sprintf("v%d_y", i), fmt.Sprintf("v%d_z", i))
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	drift := r.Drift()
	for i, s := range r.samples {
		row := []string{
			strconv.Itoa(s.Frame),
			formatFloat(s.Time),
			formatFloat(s.Velocity.XA),
			formatFloat(s.Velocity.YA),
			formatFloat(s.Velocity.ZA),
			strconv.FormatFloat(drift[i], 'g', -1, 64),
		}
		for _, v := range s.Vertices {
			row = append(row, formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type export struct {
	FrameRate float64   `json:"frame_rate"`
	Stride    int       `json:"stride"`
	Samples   []Sample  `json:"samples"`
	Drift     []float64 `json:"drift"`
}

func (r *Recorder) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(export{FrameRate: engine.FrameRate, Stride: r.stride, Samples: r.samples, Drift: r.Drift()})
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}
