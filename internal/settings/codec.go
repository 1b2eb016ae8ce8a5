package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// wireSettings uses pointers so a missing key is distinguishable from a
// zero value. A record missing any key is rejected, never merged.
type wireSettings struct {
	HighContrast       *bool       `json:"highContrast"`
	ReduceMotion       *bool       `json:"reduceMotion"`
	FontSize           *int        `json:"fontSize"`
	ColorTheme         *ColorTheme `json:"colorTheme"`
	SoundFeedback      *bool       `json:"soundFeedback"`
	KeyboardNavigation *bool       `json:"keyboardNavigation"`
}

// Marshal encodes s in the persisted JSON form.
func Marshal(s Settings) ([]byte, error) {
	return json.Marshal(s)
}

// Unmarshal decodes a persisted record. Unknown keys, missing keys, wrong
// types, trailing data and out-of-domain values are all rejected.
func Unmarshal(data []byte) (Settings, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var w wireSettings
	if err := dec.Decode(&w); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Settings{}, fmt.Errorf("decoding settings: trailing data after record")
	}

	if w.HighContrast == nil || w.ReduceMotion == nil || w.FontSize == nil ||
		w.ColorTheme == nil || w.SoundFeedback == nil || w.KeyboardNavigation == nil {
		return Settings{}, fmt.Errorf("decoding settings: incomplete record")
	}

	s := Settings{
		HighContrast:       *w.HighContrast,
		ReduceMotion:       *w.ReduceMotion,
		FontSize:           *w.FontSize,
		ColorTheme:         *w.ColorTheme,
		SoundFeedback:      *w.SoundFeedback,
		KeyboardNavigation: *w.KeyboardNavigation,
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
