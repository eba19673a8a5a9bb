package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/mersenne/internal/analysis"
)

// SweepData is the JSON form of a sweep. Values are SI.
type SweepData struct {
	Vary   string       `json:"vary"`
	Solve  string       `json:"solve"`
	XUnit  string       `json:"x_unit"`
	YUnit  string       `json:"y_unit"`
	Steps  int          `json:"steps"`
	Points [][2]float64 `json:"points"`
}

func NewSweepData(vary, solve, xUnit, yUnit string, points []analysis.SweepPoint) SweepData {
	data := SweepData{
		Vary:   vary,
		Solve:  solve,
		XUnit:  xUnit,
		YUnit:  yUnit,
		Steps:  len(points),
		Points: make([][2]float64, len(points)),
	}
	for i, p := range points {
		data.Points[i] = [2]float64{p.X, p.Y}
	}
	return data
}

func WriteJSON(w io.Writer, data SweepData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// SaveFile writes content produced by write to path.
func SaveFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
