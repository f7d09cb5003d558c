package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/textboxes/config"
)

// csvFile is an output CSV that writes its header once.
type csvFile struct {
	file          *os.File
	headerWritten bool
}

// write appends records (a slice of csv-tagged structs).
func (c *csvFile) write(records any) error {
	if !c.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, c.file); err != nil {
			return err
		}
		c.headerWritten = true
		return nil
	}
	// Subsequent writes skip headers
	return gocsv.MarshalWithoutHeaders(records, c.file)
}

// OutputManager handles trace output with CSV logging.
type OutputManager struct {
	dir       string
	boxes     *csvFile
	telemetry *csvFile
	perf      *csvFile
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	files := []struct {
		name string
		dst  **csvFile
	}{
		{"boxes.csv", &om.boxes},
		{"telemetry.csv", &om.telemetry},
		{"perf.csv", &om.perf},
	}
	for _, f := range files {
		fh, err := os.Create(filepath.Join(dir, f.name))
		if err != nil {
			om.Close()
			return nil, fmt.Errorf("creating %s: %w", f.name, err)
		}
		*f.dst = &csvFile{file: fh}
	}

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteBoxes appends one tick of box samples to boxes.csv.
func (om *OutputManager) WriteBoxes(samples []BoxSample) error {
	if om == nil || len(samples) == 0 {
		return nil
	}
	if err := om.boxes.write(samples); err != nil {
		return fmt.Errorf("writing boxes: %w", err)
	}
	return nil
}

// WriteTelemetry writes a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := om.telemetry.write([]WindowStats{stats}); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}
	if err := om.perf.write([]PerfStatsCSV{stats.ToCSV(windowEnd)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, c := range []*csvFile{om.boxes, om.telemetry, om.perf} {
		if c == nil || c.file == nil {
			continue
		}
		if err := c.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
