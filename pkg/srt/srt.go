// Package srt converts between YouTube timedtext caption tracks and
// the SubRip (srt) format, and parses srt text into caption cues.
package srt

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/windwords/windwords/pkg/model"
)

// timedText mirrors the srv3 XML caption payload served by YouTube.
// Start and duration attributes are in milliseconds. Word-level tracks
// nest their text inside s elements.
type timedText struct {
	XMLName xml.Name `xml:"timedtext"`
	Body    struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Start    int64    `xml:"t,attr"`
	Duration int64    `xml:"d,attr"`
	Text     string   `xml:",chardata"`
	Segments []string `xml:"s"`
}

func (p paragraph) text() string {
	text := p.Text
	if strings.TrimSpace(text) == "" {
		text = strings.Join(p.Segments, "")
	}
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "  ", " ")
	return strings.TrimSpace(text)
}

// FromTimedText renders a timedtext caption track as srt text.
// Paragraphs without any text are skipped but keep their sequence
// number, matching how YouTube's own exports number frames.
func FromTimedText(data []byte) (string, error) {
	var track timedText
	if err := xml.Unmarshal(data, &track); err != nil {
		return "", fmt.Errorf("srt: failed to parse timedtext: %w", err)
	}

	var blocks []string
	for i, p := range track.Body.Paragraphs {
		text := p.text()
		if text == "" {
			continue
		}
		start := time.Duration(p.Start) * time.Millisecond
		end := start + time.Duration(p.Duration)*time.Millisecond
		blocks = append(blocks, fmt.Sprintf(
			"%d\n%s --> %s\n%s\n", i+1, timestamp(start), timestamp(end), text,
		))
	}
	return strings.TrimSpace(strings.Join(blocks, "\n")), nil
}

// Parse decodes srt text into caption cues. Each cue is a four line
// frame: sequence number, timecode line, caption, blank separator. A
// missing trailing separator on the final frame is tolerated.
func Parse(text string) ([]model.Cue, error) {
	lines := strings.Split(text, "\n")
	var cues []model.Cue
	for i := 0; i+2 < len(lines); i += 4 {
		if i+3 < len(lines) && lines[i+3] != "" {
			return nil, fmt.Errorf("srt: expected blank separator at line %d", i+4)
		}
		frame, err := strconv.Atoi(strings.TrimSpace(lines[i]))
		if err != nil {
			return nil, fmt.Errorf("srt: bad frame number at line %d: %w", i+1, err)
		}
		start, end, found := strings.Cut(lines[i+1], "-->")
		if !found {
			return nil, fmt.Errorf("srt: bad timecode line at line %d", i+2)
		}
		cues = append(cues, model.Cue{
			Frame:   frame,
			Caption: lines[i+2],
			Timecodes: model.Timecodes{
				Start: strings.TrimSpace(start),
				End:   strings.TrimSpace(end),
			},
		})
	}
	return cues, nil
}

func timestamp(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d",
		int(d.Hours()),
		int(d.Minutes())%60,
		int(d.Seconds())%60,
		d.Milliseconds()%1000,
	)
}
