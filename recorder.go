package naklo

import (
	"fmt"
	"io"
	"slices"
)

// Recorder is an in-memory Track. It stands in for audio files in dry
// runs and tests.
type Recorder struct {
	// Label names the recorder in WriteTo output, usually a file path.
	Label string

	fields []Field
}

// NewRecorder returns an empty Recorder.
func NewRecorder(label string) *Recorder {
	return &Recorder{Label: label}
}

// AddTag records a tag.
func (r *Recorder) AddTag(name, value string) {
	r.fields = append(r.fields, Field{Name: name, Value: value})
}

// Fields returns the recorded tags in order.
func (r *Recorder) Fields() []Field {
	return slices.Clone(r.fields)
}

// WriteTo writes the label followed by one indented name=value line per
// tag.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := fmt.Fprintf(w, "%s\n", r.Label)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, f := range r.fields {
		n, err := fmt.Fprintf(w, "    %s\n", f)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
