package mp3

import "github.com/j39m/naklo/internal/types"

// textFrames maps naklo tags to ID3v2.4 text frames.
var textFrames = map[string]string{
	"artist":       "TPE1",
	"album":        "TALB",
	"albumartist":  "TPE2",
	"albumsort":    "TSOA",
	"conductor":    "TPE3",
	"composer":     "TCOM",
	"lyricist":     "TEXT",
	types.TagTitle: "TIT2",
	"date":         "TDRC",
	"genre":        "TCON",
	"discsubtitle": "TSST",
}

// userFrames maps naklo tags without a dedicated frame to TXXX
// descriptions.
var userFrames = map[string]string{
	"performer": "PERFORMER",
	"arranger":  "ARRANGER",
	"location":  "LOCATION",
}

// Number pairs share a single "n/total" frame.
const (
	frameTrack = "TRCK"
	frameDisc  = "TPOS"
)

type numberPair struct {
	frame       string
	number      string
	total       string
	numberField string
	totalField  string
}

func numberPairs() []*numberPair {
	return []*numberPair{
		{frame: frameTrack, numberField: types.TagTrackNumber, totalField: types.TagTrackTotal},
		{frame: frameDisc, numberField: "discnumber", totalField: "disctotal"},
	}
}

// pairSlot returns the field of pairs that holds tag, or nil.
func pairSlot(pairs []*numberPair, tag string) *string {
	for _, p := range pairs {
		switch tag {
		case p.numberField:
			return &p.number
		case p.totalField:
			return &p.total
		}
	}
	return nil
}

func (p *numberPair) text() string {
	switch {
	case p.number == "" && p.total == "":
		return ""
	case p.total == "":
		return p.number
	default:
		return p.number + "/" + p.total
	}
}
