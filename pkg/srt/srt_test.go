package srt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windwords/windwords/pkg/model"
	"github.com/windwords/windwords/pkg/srt"
)

const sampleSRT = `1
00:00:00,780 --> 00:00:03,100
turn with me to mark chapter 8

2
00:00:03,100 --> 00:00:05,240
and verse 34`

func TestParse(t *testing.T) {
	cues, err := srt.Parse(sampleSRT)
	require.NoError(t, err)
	require.Len(t, cues, 2)

	assert.Equal(t, model.Cue{
		Frame:   1,
		Caption: "turn with me to mark chapter 8",
		Timecodes: model.Timecodes{
			Start: "00:00:00,780",
			End:   "00:00:03,100",
		},
	}, cues[0])
	assert.Equal(t, 2, cues[1].Frame)
	assert.Equal(t, "and verse 34", cues[1].Caption)
}

func TestParseEmpty(t *testing.T) {
	cues, err := srt.Parse("")
	require.NoError(t, err)
	assert.Empty(t, cues)
}

func TestParseErrors(t *testing.T) {
	t.Run("missing separator", func(t *testing.T) {
		_, err := srt.Parse("1\n00:00:00,000 --> 00:00:01,000\nhello\nnot blank\n2")
		assert.Error(t, err)
	})
	t.Run("bad frame number", func(t *testing.T) {
		_, err := srt.Parse("x\n00:00:00,000 --> 00:00:01,000\nhello")
		assert.Error(t, err)
	})
	t.Run("bad timecodes", func(t *testing.T) {
		_, err := srt.Parse("1\n00:00:00,000 00:00:01,000\nhello")
		assert.Error(t, err)
	})
}

func TestFromTimedText(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="utf-8"?>
<timedtext format="3">
  <body>
    <p t="780" d="2320">turn with me to mark chapter 8</p>
    <p t="3100" d="2140"></p>
    <p t="3100" d="2140">and verse 34</p>
  </body>
</timedtext>`)

	text, err := srt.FromTimedText(data)
	require.NoError(t, err)

	expected := "1\n" +
		"00:00:00,780 --> 00:00:03,100\n" +
		"turn with me to mark chapter 8\n" +
		"\n" +
		"3\n" +
		"00:00:03,100 --> 00:00:05,240\n" +
		"and verse 34"
	assert.Equal(t, expected, text)
}

func TestFromTimedTextWordLevelTrack(t *testing.T) {
	data := []byte(`<timedtext format="3"><body>` +
		`<p t="0" d="1000"><s>go </s><s>to </s><s>mark</s></p>` +
		`</body></timedtext>`)

	text, err := srt.FromTimedText(data)
	require.NoError(t, err)
	assert.Contains(t, text, "go to mark")
}

func TestFromTimedTextRoundTrip(t *testing.T) {
	data := []byte(`<timedtext format="3"><body>` +
		`<p t="780" d="2320">turn with me to mark chapter 8</p>` +
		`<p t="3100" d="2140">and verse 34</p>` +
		`</body></timedtext>`)

	text, err := srt.FromTimedText(data)
	require.NoError(t, err)

	cues, err := srt.Parse(text)
	require.NoError(t, err)
	require.Len(t, cues, 2)
	assert.Equal(t, "00:00:00,780", cues[0].Timecodes.Start)
	assert.Equal(t, "00:00:05,240", cues[1].Timecodes.End)
}

func TestFromTimedTextBadXML(t *testing.T) {
	_, err := srt.FromTimedText([]byte("{not xml}"))
	assert.Error(t, err)
}
