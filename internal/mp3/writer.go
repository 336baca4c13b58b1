// Package mp3 writes naklo tags into ID3v2.4 tags.
package mp3

import (
	"fmt"
	"strings"

	"github.com/bogem/id3v2/v2"

	"github.com/j39m/naklo/internal/registry"
	"github.com/j39m/naklo/internal/types"
)

// valueSeparator joins multiple values of one text frame (ID3v2.4 §4.2).
const valueSeparator = "\x00"

const frameUserText = "TXXX"

// writer implements registry.FormatWriter for MP3 files.
type writer struct{}

// Write stores fields as ID3v2.4 frames. Repeated tags become one frame
// with NUL-separated values, in field order. Number tags are folded into
// TRCK and TPOS as "n/total".
func (w *writer) Write(path string, fields []types.Field, opts registry.WriteOptions) error { //nolint:gocyclo // One pass over three frame families
	tag, err := id3v2.Open(path, id3v2.Options{Parse: opts.KeepExisting})
	if err != nil {
		return fmt.Errorf("open ID3v2 tag: %w", err)
	}
	defer tag.Close() //nolint:errcheck // Save reports write errors

	tag.SetVersion(4)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	var (
		texts     = make(map[string][]string)
		textOrder []string
		users     = make(map[string][]string)
		userOrder []string
		pairs     = numberPairs()
	)

	for _, f := range fields {
		if id, ok := textFrames[f.Name]; ok {
			if _, seen := texts[id]; !seen {
				textOrder = append(textOrder, id)
			}
			texts[id] = append(texts[id], f.Value)
			continue
		}
		if desc, ok := userFrames[f.Name]; ok {
			if _, seen := users[desc]; !seen {
				userOrder = append(userOrder, desc)
			}
			users[desc] = append(users[desc], f.Value)
			continue
		}

		slot := pairSlot(pairs, f.Name)
		if slot == nil {
			return fmt.Errorf("no ID3v2 frame for tag %q", f.Name)
		}
		if *slot != "" {
			return fmt.Errorf("tag %q takes a single value in ID3v2, got %q and %q", f.Name, *slot, f.Value)
		}
		*slot = f.Value
	}

	for _, id := range textOrder {
		values := texts[id]
		if opts.KeepExisting {
			values = append(splitValues(tag.GetTextFrame(id).Text), values...)
		}
		tag.AddTextFrame(id, id3v2.EncodingUTF8, strings.Join(values, valueSeparator))
	}

	for _, desc := range userOrder {
		values := users[desc]
		if opts.KeepExisting {
			values = append(splitValues(userText(tag, desc)), values...)
		}
		tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
			Encoding:    id3v2.EncodingUTF8,
			Description: desc,
			Value:       strings.Join(values, valueSeparator),
		})
	}

	for _, p := range pairs {
		if text := p.text(); text != "" {
			tag.AddTextFrame(p.frame, id3v2.EncodingUTF8, text)
		}
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save ID3v2 tag: %w", err)
	}
	return nil
}

// Read returns the naklo fields stored in the file's ID3v2 tag, grouped
// by tag in vocabulary order.
func (w *writer) Read(path string) ([]types.Field, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("open ID3v2 tag: %w", err)
	}
	defer tag.Close() //nolint:errcheck // Read-only

	var out []types.Field
	for name := range types.TagNames() {
		var text string
		if id, ok := textFrames[name]; ok {
			text = tag.GetTextFrame(id).Text
		} else if desc, ok := userFrames[name]; ok {
			text = userText(tag, desc)
		}
		for _, v := range splitValues(text) {
			out = append(out, types.Field{Name: name, Value: v})
		}
	}

	for _, p := range numberPairs() {
		number, total, _ := strings.Cut(tag.GetTextFrame(p.frame).Text, "/")
		number = strings.TrimRight(number, valueSeparator)
		total = strings.TrimRight(total, valueSeparator)
		if number != "" {
			out = append(out, types.Field{Name: p.numberField, Value: number})
		}
		if total != "" {
			out = append(out, types.Field{Name: p.totalField, Value: total})
		}
	}

	return out, nil
}

// userText returns the value of the TXXX frame with the given description.
func userText(tag *id3v2.Tag, desc string) string {
	for _, f := range tag.GetFrames(frameUserText) {
		udtf, ok := f.(id3v2.UserDefinedTextFrame)
		if ok && udtf.Description == desc {
			return udtf.Value
		}
	}
	return ""
}

func splitValues(text string) []string {
	text = strings.TrimRight(text, valueSeparator)
	if text == "" {
		return nil
	}
	return strings.Split(text, valueSeparator)
}

func init() {
	registry.RegisterWriter(types.FormatMP3, &writer{})
}
